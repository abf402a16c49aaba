// Package logging builds the leveled console logger used by every command.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "please"

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
}

// DefaultOptions returns options for normal runs: warnings and errors only.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
	}
}

// DebugOptions returns options for --debug runs.
func DebugOptions() Options {
	return Options{
		Level:           log.DebugLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// ForFlags creates the logger for an invocation. Debug selects DebugOptions.
func ForFlags(w io.Writer, debug bool) *log.Logger {
	if debug {
		return New(w, DebugOptions())
	}
	return New(w, DefaultOptions())
}

