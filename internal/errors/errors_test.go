package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	refinderrors "github.com/chazuruo/refind/internal/errors"
)

func TestBaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"history unavailable", refinderrors.ErrHistoryUnavailable, "history unavailable"},
		{"terminal unavailable", refinderrors.ErrTerminalUnavailable, "terminal unavailable"},
		{"canceled", refinderrors.ErrCanceled, "canceled"},
		{"invalid", refinderrors.ErrInvalid, "invalid"},
		{"io", refinderrors.ErrIO, "I/O error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHistoryError(t *testing.T) {
	err := &refinderrors.HistoryError{
		Path: "/home/user/.bash_history",
		Err:  refinderrors.ErrHistoryUnavailable,
	}

	want := "history /home/user/.bash_history: history unavailable"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	if !refinderrors.IsHistoryUnavailable(err) {
		t.Error("expected IsHistoryUnavailable to see through the wrapper")
	}

	he, ok := refinderrors.AsHistoryError(err)
	if !ok {
		t.Fatal("expected AsHistoryError to succeed")
	}
	if he.Path != "/home/user/.bash_history" {
		t.Errorf("unexpected path %q", he.Path)
	}
}

func TestHistoryErrorWithoutPath(t *testing.T) {
	err := &refinderrors.HistoryError{Err: refinderrors.ErrHistoryUnavailable}

	want := "history: history unavailable"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestTerminalError(t *testing.T) {
	err := &refinderrors.TerminalError{
		Op:  "open",
		Err: refinderrors.ErrTerminalUnavailable,
	}

	want := "terminal open: terminal unavailable"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	if !refinderrors.IsTerminalUnavailable(err) {
		t.Error("expected IsTerminalUnavailable to see through the wrapper")
	}
	if _, ok := refinderrors.AsTerminalError(err); !ok {
		t.Error("expected AsTerminalError to succeed")
	}
}

func TestConfigError(t *testing.T) {
	err := &refinderrors.ConfigError{
		Path: "config.toml",
		Err:  refinderrors.ErrInvalid,
	}

	want := "config config.toml: invalid"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	if !refinderrors.IsInvalid(err) {
		t.Error("expected IsInvalid to see through the wrapper")
	}
	if _, ok := refinderrors.AsConfigError(err); !ok {
		t.Error("expected AsConfigError to succeed")
	}
}

func TestWrap(t *testing.T) {
	wrapped := refinderrors.Wrap(refinderrors.ErrCanceled, "runSearch")

	want := "runSearch: canceled"
	if wrapped.Error() != want {
		t.Errorf("expected %q, got %q", want, wrapped.Error())
	}

	if !refinderrors.IsCanceled(wrapped) {
		t.Error("expected IsCanceled to see through Wrap")
	}
}

func TestNestedWrapping(t *testing.T) {
	inner := fmt.Errorf("%w: permission denied", refinderrors.ErrHistoryUnavailable)
	mid := &refinderrors.HistoryError{Path: "/etc/secret", Err: inner}
	outer := refinderrors.Wrap(mid, "load")

	if !refinderrors.IsHistoryUnavailable(outer) {
		t.Error("expected sentinel visible through three levels")
	}
	if _, ok := refinderrors.AsHistoryError(outer); !ok {
		t.Error("expected *HistoryError visible through Wrap")
	}
}

func TestHelpersRejectUnrelated(t *testing.T) {
	err := stderrors.New("something else")

	if refinderrors.IsCanceled(err) {
		t.Error("IsCanceled matched an unrelated error")
	}
	if refinderrors.IsHistoryUnavailable(err) {
		t.Error("IsHistoryUnavailable matched an unrelated error")
	}
	if _, ok := refinderrors.AsHistoryError(err); ok {
		t.Error("AsHistoryError matched an unrelated error")
	}
	if refinderrors.IsCanceled(nil) {
		t.Error("IsCanceled matched nil")
	}
}
