package hypernum

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/hypernum/kind"
)

// Logger wraps slog.Logger with hypernum-specific context.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

var defaultLogger = NewLogger(nil)

// DefaultLogger returns the process-wide logger used when no logger is
// configured. It writes text records to stderr at info level.
func DefaultLogger() *Logger {
	return defaultLogger
}

// WithOp adds an operation field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithKind adds an element kind field to the logger.
func (l *Logger) WithKind(k kind.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// LogConversion logs an element type conversion advisory.
func (l *Logger) LogConversion(c Conversion) {
	l.Warn("element type conversion",
		"op", c.Op,
		"from", c.From.String(),
		"to", c.To.String(),
		"change", c.Change.String(),
	)
}

// LogAllocation logs the outcome of a backing-buffer allocation.
func (l *Logger) LogAllocation(elements int, bytes int64, err error) {
	if err != nil {
		l.Error("allocation failed",
			"elements", elements,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.Debug("allocation completed",
			"elements", elements,
			"bytes", bytes,
		)
	}
}
