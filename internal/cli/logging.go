package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// newLogger returns a text logger on w. Warnings and above are always
// written; --verbose lowers the level to debug. Every record carries the
// run_id of this invocation.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", uuid.NewString())
}
