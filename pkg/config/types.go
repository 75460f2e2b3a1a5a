// Package config provides configuration loading and validation for the
// ufwlog CLI.
package config

import "regexp"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// LogDir is the directory scanned for candidate log files.
	LogDir string `yaml:"log_dir"`

	// FilePattern is a regex matched against the start of file names in
	// LogDir to pick out UFW logs.
	FilePattern string `yaml:"file_pattern"`

	// SkipMalformed loads files leniently, skipping lines that fail to
	// parse instead of aborting.
	SkipMalformed bool `yaml:"skip_malformed"`

	Output OutputConfig `yaml:"output"`

	// compiledFilePattern is the pre-compiled regex (populated during
	// validation).
	compiledFilePattern *regexp.Regexp
}

// OutputConfig controls how query results are rendered.
type OutputConfig struct {
	// Format is the default output format (text or json).
	Format string `yaml:"format"`

	// Verbose includes the less common fields in text output.
	Verbose bool `yaml:"verbose"`
}

// CompiledFilePattern returns the pre-compiled file name pattern.
func (c *Config) CompiledFilePattern() *regexp.Regexp {
	return c.compiledFilePattern
}
