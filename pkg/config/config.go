package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. Missing fields fall back
// to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the file name
// pattern.
func Validate(cfg *Config) error {
	if cfg.LogDir == "" {
		return errors.New("log_dir: a log directory is required")
	}

	if cfg.FilePattern == "" {
		return errors.New("file_pattern: a file name pattern is required")
	}
	re, err := regexp.Compile(cfg.FilePattern)
	if err != nil {
		return fmt.Errorf("file_pattern: invalid pattern: %w", err)
	}
	cfg.compiledFilePattern = re

	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format: invalid format %q (must be text or json)", cfg.Output.Format)
	}

	return nil
}

// applyEnvironmentOverrides lets the environment take precedence over the
// file for the location settings.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv("UFWLOG_LOG_DIR"); dir != "" {
		c.LogDir = dir
	}
	if pattern := os.Getenv("UFWLOG_FILE_PATTERN"); pattern != "" {
		c.FilePattern = pattern
	}
}
