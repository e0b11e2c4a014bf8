package vptree

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vptree-specific context. Build and query
// operations log at Debug level by default, so a NoopLogger or an unset
// logger costs nothing beyond a nil check on the hot query path.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is nil,
// a text handler writing to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that emits JSON-formatted records.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that emits human-readable text records.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger discards all log output. This is the default for a VpTree that
// was not configured with WithLogger.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// LogBuild logs a tree construction.
func (l *Logger) LogBuild(ctx context.Context, n, workers int, d time.Duration) {
	if l == nil {
		return
	}
	l.DebugContext(ctx, "vptree build completed",
		"items", n,
		"workers", workers,
		"duration", d,
	)
}

// LogQuery logs a single query invocation.
func (l *Logger) LogQuery(ctx context.Context, kind QueryKind, resultCount int, d time.Duration) {
	if l == nil {
		return
	}
	l.DebugContext(ctx, "vptree query completed",
		"kind", kind,
		"results", resultCount,
		"duration", d,
	)
}

// LogContractViolation logs a caller distance function returning a negative
// value, the one caller-contract violation this module can detect cheaply
// on the hot path (see §7 of the design notes). It is a Warn, not a panic:
// the spec treats non-metric distances as undefined behavior, not a fatal
// error, so this is an observability aid rather than enforcement.
func (l *Logger) LogContractViolation(ctx context.Context, distance float64) {
	if l == nil {
		return
	}
	l.WarnContext(ctx, "distance function returned a negative value",
		"distance", distance,
	)
}
