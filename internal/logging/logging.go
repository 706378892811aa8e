// Package logging builds the slog loggers used by the scicalc command and
// server.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelNone is above every level slog emits, so a logger at LevelNone discards
// everything.
const LevelNone = slog.Level(16)

// ParseLevel parses a level name. The recognized names are debug, info, warn
// (or warning), error, and none, in any case. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w at the named level. A nil w or the
// level none gives a logger that discards all records.
func New(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	if w == nil || lvl >= LevelNone {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
