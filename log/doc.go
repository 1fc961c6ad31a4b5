// Package log is a small wrapper around [log/slog] used throughout elcond.
//
// A [Logger] is configured with functional options when it is made:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText))
//
//	logger.TraceContext(ctx, "token", slog.String("image", tok.Image))
//
// Attributes are always typed [slog.Attr] values; the loosely typed
// key-value form of slog is not exposed.
//
// The zero Logger discards everything, so library types can hold one
// unconditionally and callers opt in to output with a WithLogger option.
//
// The package-level functions log through a process-wide default Logger
// that the CLI reconfigures from its --log-* flags with [Config].
package log
