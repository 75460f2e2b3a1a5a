package config

import "ufwlog/pkg/logfile"

// DefaultConfig returns a configuration with the standard Ubuntu log
// locations and text output.
func DefaultConfig() *Config {
	return &Config{
		LogDir:      logfile.DefaultDir,
		FilePattern: logfile.DefaultPattern,
		Output: OutputConfig{
			Format: "text",
		},
	}
}
