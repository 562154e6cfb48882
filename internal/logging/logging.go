// Package logging configures the process-wide structured logger from the
// RUST_LOG and RUST_LOG_FORMAT environment variables, names retained for
// compatibility with operator tooling built against this gateway's
// predecessor.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a slog.Logger honoring RUST_LOG (verbosity) and
// RUST_LOG_FORMAT (=json selects structured output, anything else selects
// a human-readable text handler). Unset RUST_LOG defaults to "info".
func New() *slog.Logger {
	level := parseLevel(os.Getenv("RUST_LOG"))
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("RUST_LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// parseLevel accepts RUST_LOG values like "debug", "info,hyper=warn", or a
// bare module=level pair; only one overall verbosity is honored (the first
// comma-separated token, qualified or not, whose level is recognized) since
// this gateway has no per-module log targets.
func parseLevel(raw string) slog.Level {
	if raw == "" {
		return slog.LevelInfo
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, "="); idx >= 0 {
			part = part[idx+1:]
		}
		switch strings.ToLower(part) {
		case "trace", "debug":
			return slog.LevelDebug
		case "warn", "warning":
			return slog.LevelWarn
		case "error":
			return slog.LevelError
		case "info":
			return slog.LevelInfo
		}
	}
	return slog.LevelInfo
}

// Redact scrubs a secret from a log-bound string, used wherever a message
// might otherwise echo the API key or bearer token back to operators.
func Redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, "[REDACTED]")
}
