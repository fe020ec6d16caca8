// Package config loads organizer configuration from YAML with sensible
// defaults. A missing config file is not an error; CLI flags overlay whatever
// the file provides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where configuration is looked up unless overridden.
const DefaultConfigPath = ".organizer/config.yaml"

// Config represents organizer configuration options.
type Config struct {
	// MinTokenLength is the minimum length of a name token considered for
	// matching; shorter tokens are ignored entirely.
	MinTokenLength int `yaml:"min_token_length"`

	// RulesPath is the path to an override rules file (empty = no rules).
	RulesPath string `yaml:"rules"`

	// Recursive walks source roots recursively instead of only their
	// top-level files.
	Recursive bool `yaml:"recursive"`

	// Interactive asks for confirmation per file instead of per run.
	Interactive bool `yaml:"interactive"`

	// Cleanup removes source directories left empty after a recursive run.
	Cleanup bool `yaml:"cleanup"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// HistoryDBPath is the path to the move history database.
	HistoryDBPath string `yaml:"history_db"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		MinTokenLength: 3,
		RulesPath:      "",
		Recursive:      false,
		Interactive:    false,
		Cleanup:        false,
		LogLevel:       "info",
		HistoryDBPath:  ".organizer/history.db",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MinTokenLength < 1 {
		return fmt.Errorf("min_token_length must be at least 1, got %d", c.MinTokenLength)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (valid: trace, debug, info, warn, error)", c.LogLevel)
	}
	if c.HistoryDBPath == "" {
		return fmt.Errorf("history_db must not be empty")
	}
	return nil
}
