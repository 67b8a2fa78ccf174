package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything.
// Library components fall back to it when no logger is injected.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
