// Package cli provides Cobra command definitions for refind.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/chazuruo/refind/internal/config"
	xerrors "github.com/chazuruo/refind/internal/errors"
	"github.com/chazuruo/refind/internal/history"
	"github.com/chazuruo/refind/internal/logging"
	"github.com/chazuruo/refind/internal/match"
	"github.com/chazuruo/refind/internal/tui"
)

// SearchOptions contains the options for the search action (the root command).
type SearchOptions struct {
	ConfigPath string

	// Query seeds the search with the shell's in-progress buffer.
	Query string

	// HistFile overrides the history file path.
	HistFile string

	// Shell overrides the history format (bash, zsh, fish).
	Shell string

	// Stdin reads NUL-delimited history entries from stdin instead of a
	// file (the fish `history -z` protocol).
	Stdin bool

	// Limit overrides the maximum number of visible results.
	Limit int

	// Print0 terminates the selection with NUL instead of newline, so
	// multi-line commands survive the pipe back to the shell.
	Print0 bool
}

// AddSearchFlags registers the search flags on the root command.
func AddSearchFlags(cmd *cobra.Command, opts *SearchOptions) {
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "initial query (the shell's current line buffer)")
	cmd.Flags().StringVar(&opts.HistFile, "histfile", "", "history file path (default: auto-detect)")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "history format: bash, zsh, or fish (default: $SHELL)")
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "read NUL-delimited history entries from stdin")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of results (default: from config)")
	cmd.Flags().BoolVar(&opts.Print0, "print0", false, "terminate the selection with NUL instead of newline")
}

// RunSearch runs the interactive search and prints the selection to stdout.
//
// Error contract: a canceled search returns ErrCanceled with nothing
// printed; an unreadable history store returns a HistoryError before the
// terminal is touched; terminal acquisition or I/O failures return a
// TerminalError after the terminal has been restored.
func RunSearch(opts *SearchOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, IsDebug())
	if err != nil {
		return xerrors.Wrap(err, "logging")
	}
	defer func() { _ = logger.Sync() }()

	var stream io.Reader
	if streamFromStdin(opts.Stdin, term.IsTerminal(int(os.Stdin.Fd()))) {
		stream = os.Stdin
	}

	start := time.Now()
	entries, err := history.Load(history.LoadOptions{
		Path:   firstNonEmpty(opts.HistFile, cfg.History.File),
		Shell:  firstNonEmpty(opts.Shell, cfg.History.Shell),
		Stream: stream,
		Filter: history.FilterOptions{
			SkipPrefixes: cfg.History.SkipPrefixes,
			MinLength:    cfg.History.MinLength,
		},
		Limit: cfg.History.Limit,
	})
	if err != nil {
		logger.Error("history load failed", zap.Error(err))
		return err
	}
	logger.Debug("history loaded",
		zap.Int("entries", len(entries)),
		zap.Duration("elapsed", time.Since(start)))

	limit := opts.Limit
	if limit <= 0 {
		limit = cfg.Search.MaxResults
	}

	if IsNoTUI() {
		return printBestMatch(entries, opts, limit)
	}

	input, output, cleanup, err := acquireTerminal(stream != nil)
	if err != nil {
		logger.Error("terminal unavailable", zap.Error(err))
		return err
	}
	defer cleanup()

	model := tui.NewSearchModel(entries, tui.SearchOptions{
		Seed:       opts.Query,
		Prompt:     cfg.UI.Prompt,
		MaxResults: limit,
		Height:     cfg.UI.Height,
	})

	entry, err := tui.Run(model, input, output)
	if err != nil {
		if xerrors.IsCanceled(err) {
			logger.Debug("search canceled")
		} else {
			logger.Error("search failed", zap.Error(err))
		}
		return err
	}

	logger.Info("entry selected",
		zap.Int("rank", entry.Rank),
		zap.Duration("session", time.Since(start)))

	writeSelection(entry.Command, opts.Print0)
	return nil
}

// printBestMatch is the --no-tui path: rank once and print the top entry.
func printBestMatch(entries []history.Entry, opts *SearchOptions, limit int) error {
	results := match.Rank(entries, opts.Query, limit)
	if len(results) == 0 {
		return xerrors.ErrCanceled
	}
	writeSelection(results[0].Entry.Command, opts.Print0)
	return nil
}

// writeSelection emits the chosen command on stdout. The terminal has
// already been restored by the time this runs, so the shell's own prompt
// redraw is not disturbed.
func writeSelection(command string, print0 bool) {
	if print0 {
		fmt.Print(command + "\x00")
		return
	}
	fmt.Println(command)
}

// streamFromStdin reports whether stdin carries the history stream.
// Every non-terminal stdin is consumed as a stream, so once this returns
// false stdin is known to be a real terminal.
func streamFromStdin(stdinFlag, stdinIsTerminal bool) bool {
	return stdinFlag || !stdinIsTerminal
}

// acquireTerminal resolves where keystrokes come from and where frames
// are rendered. The UI always renders away from stdout so the selection
// stays clean for the invoking shell. When stdin carries the history
// stream, keystrokes are read from /dev/tty instead; otherwise stdin is
// a terminal, since streamFromStdin routed every non-terminal stdin into
// the stream.
func acquireTerminal(stdinConsumed bool) (input io.Reader, output io.Writer, cleanup func(), err error) {
	cleanup = func() {}

	if stdinConsumed {
		tty, openErr := os.Open("/dev/tty")
		if openErr != nil {
			return nil, nil, cleanup, &xerrors.TerminalError{
				Op:  "open",
				Err: fmt.Errorf("%w: %v", xerrors.ErrTerminalUnavailable, openErr),
			}
		}
		input = tty
		cleanup = func() { _ = tty.Close() }
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		output = os.Stderr
		return input, output, cleanup, nil
	}

	ttyOut, openErr := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if openErr != nil {
		cleanup()
		return nil, nil, func() {}, &xerrors.TerminalError{
			Op:  "open",
			Err: fmt.Errorf("%w: %v", xerrors.ErrTerminalUnavailable, openErr),
		}
	}

	prev := cleanup
	cleanup = func() {
		prev()
		_ = ttyOut.Close()
	}
	return input, ttyOut, cleanup, nil
}

// loadConfig loads the config from an explicit path or the XDG defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadWithDefaults()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
