// Package logging builds the application logger.
//
// The terminal belongs to the UI while it runs, so records go to a file or
// nowhere at all.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the logger.
type Options struct {
	Path            string // empty discards all records
	Level           string
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for file logging.
func DefaultOptions() Options {
	return Options{
		Level:           "info",
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "todo",
	}
}

// Logger wraps a charmbracelet logger and the file behind it.
type Logger struct {
	*log.Logger
	file *os.File
}

// New opens the log file, creating its directory, and returns a logger.
func New(opts Options) (*Logger, error) {
	if opts.Path == "" {
		return &Logger{Logger: Discard()}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{Logger: newLogger(file, opts), file: file}, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// NewTestLogger writes debug-level text records without timestamps to w.
func NewTestLogger(w io.Writer) *log.Logger {
	return newLogger(w, Options{Level: "debug", Formatter: log.TextFormatter})
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func newLogger(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}
