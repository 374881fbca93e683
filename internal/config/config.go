// Package config provides configuration management for refind.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the top-level configuration struct for refind.
// It contains all configuration sections as embedded structs.
type Config struct {
	History HistoryConfig `toml:"history"`
	Search  SearchConfig  `toml:"search"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// HistoryConfig contains history-store settings.
type HistoryConfig struct {
	// File is the history file path. Empty means auto-detect for Shell.
	File string `toml:"file"`

	// Shell selects the history format.
	// Valid values: "", "bash", "zsh", "fish" (empty = detect from $SHELL).
	Shell string `toml:"shell"`

	// SkipPrefixes drops commands whose first word matches an element
	// (e.g. ["ls", "cd"]). Default: keep everything.
	SkipPrefixes []string `toml:"skip_prefixes"`

	// MinLength drops commands shorter than this many bytes.
	MinLength int `toml:"min_length"`

	// Limit caps the number of entries loaded after deduplication.
	// 0 = unlimited.
	Limit int `toml:"limit"`
}

// SearchConfig contains ranking settings.
type SearchConfig struct {
	// MaxResults bounds the ranked list recomputed on every keystroke.
	MaxResults int `toml:"max_results"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Prompt is the text shown before the query input.
	Prompt string `toml:"prompt"`

	// Height is the number of result rows to show. 0 = fill the window.
	Height int `toml:"height"`
}

// LogConfig contains debug logging settings. Logs go to a file, never the
// terminal, which the TUI owns for the lifetime of the invocation.
type LogConfig struct {
	// File is the log file path. Empty uses the default state path when
	// logging is enabled.
	File string `toml:"file"`

	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{},
		Search: SearchConfig{
			MaxResults: 100,
		},
		UI: UIConfig{
			Prompt: "search: ",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultLogFile returns the default log file path under the user state
// directory.
func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "refind", "refind.log")
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	switch c.History.Shell {
	case "", "bash", "zsh", "fish":
	default:
		return fmt.Errorf("history.shell must be bash, zsh, or fish, got %q", c.History.Shell)
	}

	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}

	if c.History.MinLength < 0 {
		return fmt.Errorf("history.min_length must not be negative, got %d", c.History.MinLength)
	}

	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}

	if c.UI.Height < 0 {
		return fmt.Errorf("ui.height must not be negative, got %d", c.UI.Height)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error, got %q", c.Log.Level)
	}

	return nil
}
