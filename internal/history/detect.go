package history

import (
	"os"
	"path/filepath"
)

// DetectShell attempts to detect the user's current shell from environment.
func DetectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}

	// Default to bash
	return "bash"
}

// NewParser creates a Parser for the given shell type.
// Returns nil if the shell is not supported.
func NewParser(shell string) Parser {
	switch shell {
	case "bash":
		return NewBashParser()
	case "zsh":
		return NewZshParser()
	case "fish":
		return NewFishParser()
	default:
		return nil
	}
}

// HistoryFile is a history store discovered at a well-known location,
// paired with the shell format that location implies.
type HistoryFile struct {
	Path  string
	Shell string
}

// DetectHistoryFiles returns the history files present at the well-known
// bash, zsh, and fish locations, in that order. Used as the fallback when
// the current shell's own store is absent.
func DetectHistoryFiles() []HistoryFile {
	var found []HistoryFile
	home, err := os.UserHomeDir()
	if err != nil {
		return found
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	candidates := []HistoryFile{
		{filepath.Join(home, ".bash_history"), "bash"},
		{filepath.Join(home, ".local/share/bash/history"), "bash"},
		{filepath.Join(home, ".zsh_history"), "zsh"},
		{filepath.Join(home, ".zhistory"), "zsh"},
		{filepath.Join(home, ".histfile"), "zsh"},
		{filepath.Join(dataHome, "fish", "fish_history"), "fish"},
	}

	for _, c := range candidates {
		if info, err := os.Stat(c.Path); err == nil && !info.IsDir() {
			found = append(found, c)
		}
	}

	return found
}
