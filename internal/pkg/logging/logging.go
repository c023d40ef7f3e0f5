// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger installs the default logger. Production logs are JSON, every
// other environment gets the text handler.
func SetupLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(logLevel),
		AddSource: appEnv != "production" && ParseLevel(logLevel) == slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With("app", "thinkbox")
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog.Level, falling back to Info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
