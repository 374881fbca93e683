// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"sync"

	"github.com/spf13/cobra"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// Debug enables debug logging to the log file.
	// This is set by the global --debug flag.
	Debug bool

	// globalMutex protects the globals for concurrent access.
	globalMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable the interactive UI; print the best match for the query and exit")
	cmd.PersistentFlags().BoolVar(&Debug, "debug", false,
		"enable debug logging to the log file")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return NoTUI
}

// IsDebug returns true if debug logging is enabled.
func IsDebug() bool {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return Debug
}
