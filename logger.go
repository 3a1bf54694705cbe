package tabgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tabgo-specific context.
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

// WithTable adds the table identity to the logger.
func (l *Logger) WithTable(t *Table) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", t.ID().String(), "rows", t.Len()),
	}
}

// LogExtend logs an extend operation.
func (l *Logger) LogExtend(added int, err error) {
	if err != nil {
		l.Error("extend failed",
			"added", added,
			"error", err,
		)
	} else {
		l.Debug("extend completed",
			"added", added,
		)
	}
}

// LogInsert logs a single-row insert operation.
func (l *Logger) LogInsert(at int, err error) {
	if err != nil {
		l.Error("insert failed",
			"at", at,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"at", at,
		)
	}
}

// LogDelete logs a row deletion.
func (l *Logger) LogDelete(removed int) {
	l.Debug("delete completed",
		"removed", removed,
	)
}

// LogFilter logs a filter evaluation.
func (l *Logger) LogFilter(selected, total int, err error) {
	if err != nil {
		l.Error("filter failed",
			"error", err,
		)
	} else {
		l.Debug("filter completed",
			"selected", selected,
			"total", total,
		)
	}
}

// LogConvert logs a domain conversion.
func (l *Logger) LogConvert(rows int, err error) {
	if err != nil {
		l.Error("domain conversion failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.Debug("domain conversion completed",
			"rows", rows,
		)
	}
}
