package app

import (
	"io"
	"log/slog"
)

// newLogger returns a logger of its own rather than touching slog's default,
// so every App logs to the writer it was given.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel maps a level name onto slog. Anything it does not recognise
// falls back to warn, the same default the command line uses.
func parseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn
	}
	return level
}
