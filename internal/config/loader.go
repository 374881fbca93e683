// Package config provides configuration management for refind.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	xerrors "github.com/chazuruo/refind/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $XDG_CONFIG_HOME/refind/config.toml
// 2. ~/.config/refind/config.toml
//
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath() string {
	var candidates []string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, "refind", "config.toml"))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, ".config", "refind", "config.toml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
// All failures are reported as a *errors.ConfigError carrying the path.
func Load(path string) (*Config, error) {
	// Read file contents
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &xerrors.ConfigError{Path: path, Err: err}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse TOML
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &xerrors.ConfigError{Path: path, Err: err}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand tilde in paths
	expandPaths(cfg)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, &xerrors.ConfigError{
			Path: path,
			Err:  fmt.Errorf("%w: %v", xerrors.ErrInvalid, err),
		}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		// No config file found, return defaults
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPaths(cfg)
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: REFIND_<SECTION>_<FIELD>
//
// Examples:
// - REFIND_HISTORY_FILE overrides [history].file
// - REFIND_HISTORY_SHELL overrides [history].shell
// - REFIND_SEARCH_MAX_RESULTS overrides [search].max_results
// - REFIND_LOG_LEVEL overrides [log].level
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			if n, err := strconv.Atoi(val); err == nil {
				*target = n
			}
		}
	}

	applyString("REFIND_HISTORY_FILE", &c.History.File)
	applyString("REFIND_HISTORY_SHELL", &c.History.Shell)
	applyInt("REFIND_HISTORY_LIMIT", &c.History.Limit)
	applyInt("REFIND_SEARCH_MAX_RESULTS", &c.Search.MaxResults)
	applyString("REFIND_UI_PROMPT", &c.UI.Prompt)
	applyInt("REFIND_UI_HEIGHT", &c.UI.Height)
	applyString("REFIND_LOG_FILE", &c.Log.File)
	applyString("REFIND_LOG_LEVEL", &c.Log.Level)
}

// expandPaths expands a leading tilde in path-valued fields.
func expandPaths(c *Config) {
	c.History.File = expandTilde(c.History.File)
	c.Log.File = expandTilde(c.Log.File)
}

// expandTilde expands a leading ~ to the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
