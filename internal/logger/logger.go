package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON logger. Debug is enabled in dev unless level overrides it.
func New(env, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, env, level)
}

func NewWithWriter(w io.Writer, env, level string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(env, level)})
	return slog.New(h)
}

func parseLevel(env, level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if env == "dev" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
