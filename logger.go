package bloomscore

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/bloomscore/similarity"
)

// Logger wraps slog.Logger with bloomscore-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMetric adds metric and implementation fields to the logger.
func (l *Logger) WithMetric(m similarity.Metric, impl similarity.Implementation) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", m.String(), "impl", impl.String()),
	}
}

// LogScore logs a pair scoring operation.
func (l *Logger) LogScore(ctx context.Context, bits int, score float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "score failed",
			"bits", bits,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "score completed",
			"bits", bits,
			"score", score,
		)
	}
}

// LogScoreMany logs a one-against-many scoring operation.
func (l *Logger) LogScoreMany(ctx context.Context, count int, precounted bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "score many failed",
			"candidates", count,
			"precounted", precounted,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "score many completed",
			"candidates", count,
			"precounted", precounted,
		)
	}
}
