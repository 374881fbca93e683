// Package errors provides a structured error type hierarchy for refind.
//
// This package defines base error types for the failure modes of an
// interactive history search, wrapped error types that add contextual
// information, and helper functions for error wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrHistoryUnavailable - history store missing or unreadable
//   - ErrTerminalUnavailable - no interactive terminal to acquire
//   - ErrCanceled - user canceled the search
//   - ErrInvalid - validation failed
//   - ErrIO - terminal or file I/O error mid-session
//
// Wrapped error types (add context):
//   - HistoryError{Path, Err} - history store errors
//   - TerminalError{Op, Err} - terminal session errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrCanceled
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "loadHistory")
//
//	// Use structured error types
//	return &errors.HistoryError{Path: path, Err: errors.ErrHistoryUnavailable}
//
//	// Check error types
//	if errors.IsCanceled(err) {
//	    // leave the shell buffer untouched
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrHistoryUnavailable indicates the history store is missing or unreadable.
	ErrHistoryUnavailable = baseError("history unavailable")

	// ErrTerminalUnavailable indicates no interactive terminal could be acquired.
	ErrTerminalUnavailable = baseError("terminal unavailable")

	// ErrCanceled indicates the user canceled the search.
	ErrCanceled = baseError("canceled")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a terminal or file I/O error.
	ErrIO = baseError("I/O error")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// HistoryError represents an error that occurred while reading the history store.
type HistoryError struct {
	// Path is the history store path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *HistoryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("history %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("history: %s", e.Err)
}

func (e *HistoryError) Unwrap() error { return e.Err }

// TerminalError represents an error that occurred during a terminal operation.
type TerminalError struct {
	// Op is the terminal operation being performed (e.g., "open", "read", "render").
	Op string
	// Err is the underlying error.
	Err error
}

func (e *TerminalError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("terminal %s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("terminal: %s", e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsHistoryUnavailable reports whether err is or wraps ErrHistoryUnavailable.
func IsHistoryUnavailable(err error) bool {
	return errors.Is(err, ErrHistoryUnavailable)
}

// IsTerminalUnavailable reports whether err is or wraps ErrTerminalUnavailable.
func IsTerminalUnavailable(err error) bool {
	return errors.Is(err, ErrTerminalUnavailable)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// AsHistoryError reports whether err can be typed as a *HistoryError.
func AsHistoryError(err error) (*HistoryError, bool) {
	var he *HistoryError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// AsTerminalError reports whether err can be typed as a *TerminalError.
func AsTerminalError(err error) (*TerminalError, bool) {
	var te *TerminalError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
