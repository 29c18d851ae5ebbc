// Package ioctx carries output writers and the logger through a context so
// that commands and reporters can be pointed at buffers in tests.
package ioctx

import (
	"context"
	"io"
	"log/slog"
)

type stdoutKey struct{}
type stderrKey struct{}
type loggerKey struct{}

func from[T any](ctx context.Context, key any, fallback T) T {
	if v, ok := ctx.Value(key).(T); ok {
		return v
	}
	return fallback
}

// StdoutFromContext returns the writer for regular output, or io.Discard.
func StdoutFromContext(ctx context.Context) io.Writer {
	return from[io.Writer](ctx, stdoutKey{}, io.Discard)
}

func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// StderrFromContext returns the writer for diagnostics, or io.Discard.
func StderrFromContext(ctx context.Context) io.Writer {
	return from[io.Writer](ctx, stderrKey{}, io.Discard)
}

func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey{}, w)
}

// LoggerFromContext returns the logger stored in ctx, or slog.Default().
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return from(ctx, loggerKey{}, slog.Default())
}

func LoggerToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
