// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"log/slog"
	"os"
)

// NewLogger returns a text logger on stderr at the given level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// nopLogger discards everything, it is used when Config.Logger is nil.
var nopLogger = slog.New(slog.DiscardHandler)
