// Package history provides read-only shell history ingestion for refind.
//
// Parsers turn a shell's on-disk history store into raw lines in append
// order; Dedupe collapses repeats and assigns recency ranks. The loaded
// entry list is immutable for the lifetime of one invocation.
package history

import "time"

// Line represents a single raw command parsed from a history store,
// in append order (oldest first).
type Line struct {
	Timestamp time.Time
	Command   string
	Shell     string // "bash", "zsh", "fish", or "" for stream input
}

// Entry is one deduplicated command with its recency rank.
// Rank 0 is the most recent command; ranks are dense.
type Entry struct {
	Command   string
	Rank      int
	Timestamp time.Time
}

// Parser defines the interface for shell history parsers.
type Parser interface {
	// Parse reads the history store at path and returns raw lines in
	// append order. Malformed lines are skipped, never fatal; only an
	// inaccessible store produces an error.
	Parse(path string) ([]Line, error)

	// DetectPath returns the default history file path for the shell.
	DetectPath() (string, error)
}
