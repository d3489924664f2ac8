// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a slog logger writing human-readable lines to w at the given
// level. Unknown levels fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "inspovault",
	})
	return slog.New(handler)
}

// Setup installs a stderr logger as the slog default.
func Setup(level string) *slog.Logger {
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}
