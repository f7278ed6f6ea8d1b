package executor

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with executor-specific helpers.
// This keeps field names consistent across Perform and Compare.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// With returns a Logger carrying the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// LogPerform logs a completed Perform or Compare call.
func (l *Logger) LogPerform(ctx context.Context, mode Mode, vectors, slices int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bulk operation failed",
			"mode", mode,
			"vectors", vectors,
			"slices", slices,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "bulk operation completed",
		"mode", mode,
		"vectors", vectors,
		"slices", slices,
		"duration", d,
	)
}

// LogSlice logs a single slice task at debug level.
func (l *Logger) LogSlice(ctx context.Context, mode Mode, slice, from, to int) {
	l.DebugContext(ctx, "slice started",
		"mode", mode,
		"slice", slice,
		"from", from,
		"to", to,
	)
}
