package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "playcat.yaml"

// Environment variables consulted by Load.
const (
	EnvConfig  = "PLAYCAT_CONFIG"
	EnvDataDir = "PLAYCAT_DATA_DIR"
	EnvPattern = "PLAYCAT_PATTERN"
	EnvSchema  = "PLAYCAT_SCHEMA"
	EnvWorkers = "PLAYCAT_WORKERS"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Load reads configuration from a file with ENV interpolation and applies
// PLAYCAT_* overrides. If configPath is empty it tries PLAYCAT_CONFIG and
// then ./playcat.yaml; finding neither is not an error.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		// Interpolate environment variables
		data = interpolateEnv(data, getenv)

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}

		// Resolve a relative data_dir against the config file
		cfg.BaseDir = filepath.Dir(absPath)
		if cfg.DataDir != "" && !filepath.IsAbs(cfg.DataDir) {
			cfg.DataDir = filepath.Join(cfg.BaseDir, cfg.DataDir)
		}
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveConfigPath(explicit string, getenv func(string) string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if envPath := getenv(EnvConfig); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s file not found: %s", EnvConfig, envPath)
		}
		return envPath, nil
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	}
	return "", nil
}

// envPattern matches ${VAR} or ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} and ${VAR:-default} patterns with environment values.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}

// applyEnv overlays PLAYCAT_* variables that are set and non-empty.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := getenv(EnvPattern); v != "" {
		cfg.Pattern = v
	}
	if v := getenv(EnvSchema); v != "" {
		cfg.Schema = v
	}
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvWorkers, v)
		}
		cfg.Workers = n
	}
	return nil
}

// Validate checks the settings. Call it again after applying flags.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Pattern == "" {
		errs = append(errs, "pattern must not be empty")
	}

	validSchemas := map[string]bool{"narrow": true, "wide": true}
	if !validSchemas[strings.ToLower(cfg.Schema)] {
		errs = append(errs, fmt.Sprintf("invalid schema: %s (must be narrow or wide)", cfg.Schema))
	}

	if cfg.Workers < 0 {
		errs = append(errs, fmt.Sprintf("invalid workers: %d (must be 0 or more)", cfg.Workers))
	}
	if cfg.Limit < 0 {
		errs = append(errs, fmt.Sprintf("invalid limit: %d (must be 0 or more)", cfg.Limit))
	}

	validOutputs := map[string]bool{"pipe": true, "records": true, "csv": true, "json": true, "jsonl": true, "table": true, "parquet": true}
	if !validOutputs[strings.ToLower(cfg.Output.Format)] {
		errs = append(errs, fmt.Sprintf("invalid output format: %s", cfg.Output.Format))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Logging.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be json or text)", cfg.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}
