package app

import (
	"io"
	"log/slog"
)

// newLogger builds the app's isolated logger from the configured level
// and format strings. It never touches the global default logger, so
// every App instance logs independently. Strings cli.Parse would reject
// (a NewApp caller can bypass the CLI) fall back to info/text rather
// than failing startup over a log knob.
func newLogger(level, format string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// parseLevel maps a config string onto a slog level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
