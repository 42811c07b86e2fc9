// Package cli implements the aemrules command line
package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/aemrules/config"
	"github.com/viant/aemrules/logging"
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aemrules",
		Short: "Static analysis rules for AEM Java code",
		Long: `aemrules checks Java sources of AEM projects for common mistakes,
such as reading Slice injected properties in constructors or leaking
ResourceResolvers.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringP("config", "c", "", "Path or URL of configuration file (optional)")
	cmd.AddCommand(newScanCommand(), newRulesCommand())
	return cmd
}

// setup loads configuration and creates the logger
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	configURL, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(commandContext(cmd), nil, location(configURL))
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.Logging.Format, cfg.Logging.Level)
	return cfg, logger, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// location turns local paths into absolute ones, URLs are kept
func location(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
