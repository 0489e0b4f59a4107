package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/harmonia-music/harmonia-backend/internal/config"
)

// NewLogger builds the process-wide logger from LogConfig and installs
// it as slog's default. Format "text" adds source locations for local
// development; anything else emits JSON for log aggregation. Output
// goes to stderr so stdout stays free for tooling.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		opts.AddSource = true
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// logLevel parses slog's level names case-insensitively; unknown
// values fall back to info rather than failing startup.
func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
