// Package config loads aemrules settings from YAML with environment overrides
package config

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	EnvLogFormat       = "AEMRULES_LOG_FORMAT"
	EnvLogLevel        = "AEMRULES_LOG_LEVEL"
	EnvDescriptionsURL = "AEMRULES_DESCRIPTIONS_URL"
	EnvConcurrency     = "AEMRULES_CONCURRENCY"
	EnvOutput          = "AEMRULES_OUTPUT"
)

// Config holds aemrules settings
type Config struct {
	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`

	Descriptions struct {
		URL string `yaml:"url"` // base URL of rules/<key>.md overrides
	} `yaml:"descriptions"`

	Scan struct {
		Concurrency int      `yaml:"concurrency"`
		Exclude     []string `yaml:"exclude"`
	} `yaml:"scan"`

	Output struct {
		Format string `yaml:"format"` // "text"|"json"|"yaml"
	} `yaml:"output"`

	Rules map[string]*Rule `yaml:"rules"`
}

// Rule holds per rule settings
type Rule struct {
	Disabled bool              `yaml:"disabled"`
	Params   map[string]string `yaml:"params"`
}

// DefaultConfig returns built-in settings
func DefaultConfig() *Config {
	c := &Config{}
	c.Logging.Format = "text"
	c.Logging.Level = "info"
	c.Scan.Concurrency = 4
	c.Scan.Exclude = []string{"target", "build", "out"}
	c.Output.Format = "text"
	c.Rules = map[string]*Rule{}
	return c
}

// Load reads YAML from URL over defaults, then applies environment overrides.
// Blank URL uses defaults.
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	c := DefaultConfig()
	if URL != "" {
		if fs == nil {
			fs = afs.New()
		}
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvDescriptionsURL); v != "" {
		c.Descriptions.URL = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		concurrency, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", EnvConcurrency, err)
		}
		c.Scan.Concurrency = concurrency
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Format = v
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Scan.Concurrency < 1 {
		return fmt.Errorf("invalid scan concurrency: %v", c.Scan.Concurrency)
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %v", c.Output.Format)
	}
	return nil
}

// DisabledRules returns sorted keys of disabled rules
func (c *Config) DisabledRules() []string {
	var result []string
	for key, rule := range c.Rules {
		if rule != nil && rule.Disabled {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}

// RuleParams returns parameter values by rule key
func (c *Config) RuleParams() map[string]map[string]string {
	result := map[string]map[string]string{}
	for key, rule := range c.Rules {
		if rule != nil && len(rule.Params) > 0 {
			result[key] = rule.Params
		}
	}
	return result
}
