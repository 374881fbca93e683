package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	xerrors "github.com/chazuruo/refind/internal/errors"
	"github.com/chazuruo/refind/internal/history"
)

// Run executes the search program and returns the confirmed entry.
//
// The UI renders on output (stderr by convention, so stdout stays clean
// for the selection) inside the alternate screen, which Bubble Tea
// restores on every exit path including errors and interrupts. input may
// be nil to use stdin, or an opened /dev/tty when stdin carries the
// history stream.
//
// Cancellation returns ErrCanceled; a mid-session terminal failure
// returns a *errors.TerminalError after the terminal has been restored.
func Run(model SearchModel, input io.Reader, output io.Writer) (history.Entry, error) {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if input != nil {
		opts = append(opts, tea.WithInput(input))
	}
	if output != nil {
		opts = append(opts, tea.WithOutput(output))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return history.Entry{}, &xerrors.TerminalError{
			Op:  "run",
			Err: fmt.Errorf("%w: %v", xerrors.ErrIO, err),
		}
	}

	m, ok := final.(SearchModel)
	if !ok {
		return history.Entry{}, &xerrors.TerminalError{
			Op:  "run",
			Err: fmt.Errorf("unexpected final model type %T", final),
		}
	}

	if m.DidConfirm() {
		if entry, ok := m.Selected(); ok {
			return entry, nil
		}
	}

	return history.Entry{}, xerrors.ErrCanceled
}
