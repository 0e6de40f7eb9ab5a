package fastsplit

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with fastsplit-specific context.
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

// WithDelimiter adds a delim field to the logger.
func (l *Logger) WithDelimiter(delim byte) *Logger {
	return &Logger{
		Logger: l.Logger.With("delim", delim),
	}
}

// WithKernel adds a kernel field to the logger.
func (l *Logger) WithKernel(k Kernel) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", k.String()),
	}
}

// LogRuntime logs the detected CPU features and the active kernel.
func (l *Logger) LogRuntime(ctx context.Context) {
	info := Runtime()
	l.DebugContext(ctx, "fastsplit runtime",
		"isa", info.ISA,
		"active_kernel", info.Kernel.String(),
		"overridden", info.Overridden,
		"vector_width", info.VectorWidth,
	)
}

// LogIndexBuild logs a segment index build.
func (l *Logger) LogIndexBuild(ctx context.Context, size, segments int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index build completed",
			"bytes", size,
			"segments", segments,
			"elapsed", elapsed,
		)
	}
}
