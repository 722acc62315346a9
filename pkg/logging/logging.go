/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide log/slog default logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable used to override the log level.
const EnvLogLevel = "LOG_LEVEL"

// ParseLevel converts a level name (debug, info, warn, error) into a slog.Level.
// Unknown or empty values resolve to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// levelFromEnv returns the level from LOG_LEVEL, or fallback when unset.
func levelFromEnv(fallback slog.Level) slog.Level {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		return ParseLevel(v)
	}
	return fallback
}

// NewStructuredLogger returns a JSON logger tagged with the module name and version.
func NewStructuredLogger(w io.Writer, module, version string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: level == slog.LevelDebug,
		Level:     level,
	})
	return slog.New(h).With("module", module, "version", version)
}

// SetDefaultStructuredLogger installs a JSON logger on stderr as the slog default.
// The level is taken from LOG_LEVEL and defaults to info.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, levelFromEnv(slog.LevelInfo))
}

// SetDefaultStructuredLoggerWithLevel installs a JSON logger on stderr at level.
func SetDefaultStructuredLoggerWithLevel(module, version string, level slog.Level) {
	slog.SetDefault(NewStructuredLogger(os.Stderr, module, version, level))
}

// SetDefaultCLILogger installs a logger suited for interactive use.
// Text output is used unless asJSON is set. LOG_LEVEL overrides the
// level only when debug is not requested explicitly.
func SetDefaultCLILogger(debug, asJSON bool) {
	level := levelFromEnv(slog.LevelInfo)
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if asJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
