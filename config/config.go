// Package config loads playcat settings from an optional YAML file and the
// environment.
//
// Precedence, lowest first: Defaults, the config file, PLAYCAT_* environment
// variables, command-line flags (applied by the caller). Values in the file
// may reference the environment as ${VAR} or ${VAR:-default}.
package config

import "runtime"

// Config holds every setting the command line can also override.
type Config struct {
	BaseDir string        `yaml:"-"`        // Directory containing config file, for resolving relative paths
	DataDir string        `yaml:"data_dir"` // Directory searched for export files
	Pattern string        `yaml:"pattern"`  // Glob matched inside DataDir, "**" allowed
	Schema  string        `yaml:"schema"`   // "narrow" or "wide"
	Workers int           `yaml:"workers"`  // Files parsed concurrently (0 = one per CPU)
	Query   string        `yaml:"query"`    // Default query when none is given
	Limit   int           `yaml:"limit"`    // Cap on printed rows (0 = unlimited)
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig selects how results are written.
type OutputConfig struct {
	Format string `yaml:"format"` // pipe, records, csv, json, table or parquet
	Path   string `yaml:"path"`   // File to write instead of stdout
}

// LoggingConfig configures the diagnostic logger on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		DataDir: ".",
		Pattern: "StreamingHistory*.json",
		Schema:  "narrow",
		Workers: runtime.NumCPU(),
		Output: OutputConfig{
			Format: "pipe",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
