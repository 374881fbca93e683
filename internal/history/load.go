package history

import (
	"fmt"
	"io"
	"os"

	xerrors "github.com/chazuruo/refind/internal/errors"
)

// LoadOptions controls how the history store is located and read.
type LoadOptions struct {
	// Path is the history file path. Empty means auto-detect for Shell.
	Path string

	// Shell selects the parser ("bash", "zsh", "fish"). Empty means
	// auto-detect from $SHELL.
	Shell string

	// Stream, when non-nil, is read as NUL-delimited entries instead of
	// opening a file (the `history -z | refind --stdin` path).
	Stream io.Reader

	// Filter is applied to raw lines before deduplication.
	Filter FilterOptions

	// Limit caps the number of entries after deduplication. 0 = unlimited.
	Limit int
}

// Load reads the history store, filters, deduplicates, and ranks it.
// An empty-but-accessible store yields an empty list, not an error.
// An inaccessible store yields a *errors.HistoryError wrapping
// ErrHistoryUnavailable.
func Load(opts LoadOptions) ([]Entry, error) {
	lines, path, err := readLines(opts)
	if err != nil {
		return nil, &xerrors.HistoryError{
			Path: path,
			Err:  fmt.Errorf("%w: %v", xerrors.ErrHistoryUnavailable, err),
		}
	}

	lines = FilterLines(lines, opts.Filter)

	entries := Dedupe(lines)
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}

	return entries, nil
}

// readLines resolves the source described by opts and parses it.
func readLines(opts LoadOptions) ([]Line, string, error) {
	if opts.Stream != nil {
		lines, err := ParseStream(opts.Stream)
		return lines, "<stdin>", err
	}

	shell := opts.Shell
	if shell == "" {
		shell = DetectShell()
	}

	parser := NewParser(shell)
	if parser == nil {
		// Unknown shell: fall back to plain line-per-command parsing,
		// which the bash parser handles.
		parser = NewBashParser()
	}

	path := opts.Path
	if path == "" {
		detected, err := parser.DetectPath()
		if err != nil {
			return nil, "", err
		}
		path = detected

		// The shell's own store may be absent (fresh shell, or $SHELL
		// pointing somewhere history never landed). Fall back to any
		// history file at a well-known location, switching the parser to
		// match the location.
		if _, statErr := os.Stat(path); statErr != nil {
			if files := DetectHistoryFiles(); len(files) > 0 {
				path = files[0].Path
				if p := NewParser(files[0].Shell); p != nil {
					parser = p
				}
			}
		}
	}

	lines, err := parser.Parse(path)
	return lines, path, err
}

// Dedupe reverses append order to most-recent-first, drops exact-text
// repeats keeping only the most recent occurrence, and assigns dense
// recency ranks starting at 0.
func Dedupe(lines []Line) []Entry {
	seen := make(map[string]bool, len(lines))
	entries := make([]Entry, 0, len(lines))

	for i := len(lines) - 1; i >= 0; i-- {
		cmd := lines[i].Command
		if cmd == "" || seen[cmd] {
			continue
		}
		seen[cmd] = true
		entries = append(entries, Entry{
			Command:   cmd,
			Rank:      len(entries),
			Timestamp: lines[i].Timestamp,
		})
	}

	return entries
}
