package scanner

import (
	"log/slog"
	"os"
	"strings"

	"github.com/viant/afs"
)

// Option customizes a Scanner
type Option func(*Scanner)

// WithConcurrency sets the number of files scanned in parallel
func WithConcurrency(concurrency int) Option {
	return func(s *Scanner) {
		s.concurrency = concurrency
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithFS sets the file system used to discover and read sources
func WithFS(fs afs.Service) Option {
	return func(s *Scanner) {
		s.fs = fs
	}
}

// WithDisabled disables rules by key
func WithDisabled(keys ...string) Option {
	return func(s *Scanner) {
		for _, key := range keys {
			s.disabled[normalizeKey(key)] = true
		}
	}
}

// WithParams sets rule parameter values by rule key
func WithParams(params map[string]map[string]string) Option {
	return func(s *Scanner) {
		for key, values := range params {
			s.params[normalizeKey(key)] = values
		}
	}
}

// WithExclusions replaces the directory names skipped during discovery
func WithExclusions(names ...string) Option {
	return func(s *Scanner) {
		s.exclusions = names
	}
}

// sourceFiles matches supported source files and skips excluded directories
func (s *Scanner) sourceFiles(info os.FileInfo) bool {
	if info.IsDir() {
		name := info.Name()
		for _, excluded := range s.exclusions {
			if name == excluded {
				return false
			}
		}
		return true
	}
	return s.inspectors.Supports(info.Name())
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
