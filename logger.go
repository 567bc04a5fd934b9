package neodb

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with neodb-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogLink logs the outcome of the construction-time linking pass.
func (l *Logger) LogLink(neos, linked, orphaned int) {
	l.Info("link pass completed",
		"neos", neos,
		"linked", linked,
		"orphaned", orphaned,
	)
}

// LogLookup logs an index lookup.
func (l *Logger) LogLookup(index, key string, hit bool) {
	l.Debug("lookup completed",
		"index", index,
		"key", key,
		"hit", hit,
	)
}

// LogQuery logs a completed query iteration.
func (l *Logger) LogQuery(filters, results int) {
	l.Debug("query completed",
		"filters", filters,
		"results", results,
	)
}
