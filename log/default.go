package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

var defaultLog atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr)
	defaultLog.Store(&l)
}

// Default returns the process-wide Logger.
func Default() Logger { return *defaultLog.Load() }

// Config reconfigures the process-wide Logger.
func Config(opts ...Option) {
	l := Default().Wrap(opts...)
	defaultLog.Store(&l)
}

// TraceContext logs at [LevelTrace] using the process-wide Logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug] using the process-wide Logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo] using the process-wide Logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn] using the process-wide Logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError] using the process-wide Logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelError, msg, attrs...)
}

// Error logs at [LevelError] using the process-wide Logger and a
// background context.
func Error(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelError, msg, attrs...)
}
