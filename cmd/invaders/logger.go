package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openLogFile returns a logger writing to path and a function closing the
// file. With an empty path output is discarded: Bubble Tea owns the terminal.
func openLogFile(path, prefix string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-provided log path
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, prefix), func() { _ = f.Close() }, nil
}
