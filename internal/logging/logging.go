// Package logging builds the logrus loggers used by the client and the dev
// server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a logger at level writing to out. Unknown levels fall back to
// info; a nil out discards everything.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	if out == nil {
		out = io.Discard
	}
	logger.SetOutput(out)
	return logger
}

// NewFile creates a logger appending to the file at path, creating parent
// directories as needed. The returned func closes the file. The TUI owns the
// terminal, so the client always logs to a file.
func NewFile(level, path string) (*logrus.Logger, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return New(level, nil), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(level, file), file.Close, nil
}

// Discard returns a logger that drops everything. Packages use it when the
// caller supplies no logger.
func Discard() *logrus.Logger {
	return New("panic", nil)
}
