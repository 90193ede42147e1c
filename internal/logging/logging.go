// Package logging configures the slog logger shared by the cstrcheck
// commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	envJSON  = "CSTRCHECK_JSON_LOG"
	envLevel = "CSTRCHECK_LOG_LEVEL"
)

// Init configures the global slog logger from the environment. Output goes
// to stderr so it never mixes with command output; it is JSON if
// CSTRCHECK_JSON_LOG is 1/true/json and text otherwise.
func Init(service string) *slog.Logger {
	logger := New(os.Stderr, jsonFromEnv(), levelFromEnv()).With("service", service)
	slog.SetDefault(logger)
	logger.Debug("logging initialized", "json", jsonFromEnv())
	return logger
}

// New returns a logger writing to w.
func New(w io.Writer, json bool, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: false, Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func jsonFromEnv() bool {
	switch strings.ToLower(os.Getenv(envJSON)) {
	case "1", "true", "json":
		return true
	}
	return false
}

func levelFromEnv() slog.Leveler {
	return ParseLevel(os.Getenv(envLevel))
}

// ParseLevel maps debug, info, warn and error to their slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
