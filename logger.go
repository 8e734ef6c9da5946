package spaces

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/spaces/ndarray"
)

// Logger wraps slog.Logger with space-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithShape adds a shape field to the logger.
func (l *Logger) WithShape(shape ndarray.Shape) *Logger {
	return &Logger{
		Logger: l.Logger.With("shape", shape.String()),
	}
}

// WithDType adds a dtype field to the logger.
func (l *Logger) WithDType(dtype DType) *Logger {
	return &Logger{
		Logger: l.Logger.With("dtype", dtype.String()),
	}
}

// LogConstruct logs the outcome of building a space.
func (l *Logger) LogConstruct(form string, shape ndarray.Shape, dtype DType, err error) {
	if err != nil {
		l.Error("space construction failed",
			"form", form,
			"dtype", dtype.String(),
			"error", err,
		)
	} else {
		l.Debug("space constructed",
			"form", form,
			"shape", shape.String(),
			"dtype", dtype.String(),
		)
	}
}

// LogSample logs a sample draw. The shape is expected on the logger (WithShape).
func (l *Logger) LogSample(err error) {
	if err != nil {
		l.Error("sample failed",
			"error", err,
		)
	} else {
		l.Debug("sample drawn")
	}
}

// LogDecode logs a jsonable decode.
func (l *Logger) LogDecode(count int, err error) {
	if err != nil {
		l.Warn("jsonable decode failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("jsonable decoded",
			"count", count,
		)
	}
}
