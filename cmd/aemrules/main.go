package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/viant/aemrules/cli"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
