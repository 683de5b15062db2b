// Package logging provides process logging built on log/slog and the small
// Logger interface the export pipeline depends on.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging surface used by the service layer.
// The args follow slog conventions: alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger is a Logger that discards all output. Use in tests.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (*NopLogger) Debug(string, ...any) {}
func (*NopLogger) Info(string, ...any)  {}
func (*NopLogger) Warn(string, ...any)  {}
func (*NopLogger) Error(string, ...any) {}

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, level, format))
}

// New builds a slog logger writing to w.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// WithRun returns the default logger tagged with a run id, so every entry
// of one export can be correlated.
func WithRun(runID string) *slog.Logger {
	return slog.Default().With("run_id", runID)
}
