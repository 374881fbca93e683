// Package logging builds the file-backed debug logger.
//
// The TUI owns the terminal for the whole invocation, so log output goes
// to a file under the user state directory, never to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chazuruo/refind/internal/config"
)

// New builds a zap logger per the log config. Logging is off (a no-op
// logger) unless debug is set or a log file is configured. Each
// invocation is tagged with a fresh id so interleaved shell sessions can
// be told apart in the shared file.
func New(cfg config.LogConfig, debug bool) (*zap.Logger, error) {
	if !debug && cfg.File == "" {
		return zap.NewNop(), nil
	}

	path := cfg.File
	if path == "" {
		path = config.DefaultLogFile()
	}
	if path == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	level := parseLevel(cfg.Level)
	if debug {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{path}
	loggerConfig.ErrorOutputPaths = []string{path}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("invocation", uuid.New().String())), nil
}

// parseLevel maps a config level string to a zap level, defaulting to info.
func parseLevel(level string) zap.AtomicLevel {
	switch strings.ToLower(level) {
	case "debug":
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
}
