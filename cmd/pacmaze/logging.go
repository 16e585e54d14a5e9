package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The TUI owns the terminal, so logs never go to stderr
// while playing.
func openLogger(path string, level log.Level) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacmaze",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
