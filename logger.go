package shapesim

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with shapesim-specific context.
// This provides structured logging with consistent field names.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithShape adds a shape name field to the logger.
func (l *Logger) WithShape(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("shape", name),
	}
}

// WithK adds a k (result count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogUpsert logs an add operation.
func (l *Logger) LogUpsert(ctx context.Context, name string, vertices int, err error) {
	log := l.WithShape(name)
	if err != nil {
		log.ErrorContext(ctx, "add shape failed",
			"vertices", vertices,
			"error", err,
		)
	} else {
		log.DebugContext(ctx, "add shape completed",
			"vertices", vertices,
		)
	}
}

// LogBatchUpsert logs a batch add operation.
func (l *Logger) LogBatchUpsert(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch add completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch add completed",
			"count", count,
		)
	}
}

// LogSearch logs a similarity query.
func (l *Logger) LogSearch(ctx context.Context, query string, k, resultsFound int, err error) {
	log := l.WithK(k)
	if err != nil {
		log.ErrorContext(ctx, "find similar failed",
			"query", query,
			"error", err,
		)
	} else {
		log.DebugContext(ctx, "find similar completed",
			"query", query,
			"results", resultsFound,
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(ctx context.Context, name string, removed bool) {
	l.WithShape(name).DebugContext(ctx, "remove shape",
		"removed", removed,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(ctx context.Context, count int) {
	l.InfoContext(ctx, "library cleared",
		"count", count,
	)
}
