package main

import (
	"io"
	"log/slog"
)

// levels maps the values accepted by the --logLevel pattern. The option table
// has already vetted the string, so lookups cannot miss.
var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the client logger from the parsed settings. JSON output is
// opt-in via --logFormat; everything else stays on the text handler.
func newLogger(cfg settings, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[cfg.LogLevel]}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
