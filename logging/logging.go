// Package logging configures the structured logger
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON or text logger writing to w
func New(w io.Writer, format, level string) *slog.Logger {
	options := &slog.HandlerOptions{Level: Level(level)}
	var handler slog.Handler
	if strings.ToLower(strings.TrimSpace(format)) == "json" {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	return slog.New(handler)
}

// Init creates a stderr logger and makes it the default one
func Init(format, level string) *slog.Logger {
	logger := New(os.Stderr, format, level)
	slog.SetDefault(logger)
	return logger
}

// Level parses a level name, unknown names are info
func Level(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
