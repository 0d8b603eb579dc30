// Package logging builds the structured loggers used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level name
// ("debug", "info", "warn", "error"). An empty level means info.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenFile creates a logger appending to path. Interactive commands log to a
// file because the terminal is owned by the game screen.
// An empty path returns a logger that discards everything.
func OpenFile(path, prefix, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		logger, err := New(io.Discard, prefix, level)
		return logger, io.NopCloser(nil), err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(f, prefix, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops every message.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
