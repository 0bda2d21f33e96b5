package diskpack

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with diskpack-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRunID tags every record with a run identifier.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithCount adds a candidate count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogDirection logs the outcome of a single direction sweep.
// cells is the number of occupied grid cells the sweep scanned.
func (l *Logger) LogDirection(ctx context.Context, k int, angle float64, size, cells int) {
	l.DebugContext(ctx, "direction completed",
		"direction", k,
		"angle", angle,
		"size", size,
		"cells", cells,
	)
}

// LogSearch logs the outcome of a multi-direction search.
func (l *Logger) LogSearch(ctx context.Context, sizes []int, best int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"directions", len(sizes),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "search completed",
			"directions", len(sizes),
			"sizes", sizes,
			"best", best,
		)
	}
}

// LogLoad logs an instance load.
func (l *Logger) LogLoad(ctx context.Context, name string, points int, radius float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "instance loaded",
			"name", name,
			"points", points,
			"radius", radius,
		)
	}
}

// LogSave logs an artifact write.
func (l *Logger) LogSave(ctx context.Context, name string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "artifact saved",
			"name", name,
			"bytes", bytes,
		)
	}
}
