package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// DefaultTimeLayout is the default timestamp layout name.
const DefaultTimeLayout = "RFC3339"

// DefaultPretty is the default setting for colorized output. Loggers made
// with [Make] write plain slog records unless [WithPretty] is given.
const DefaultPretty = false

// config holds the configuration options for a Logger.
type config struct {
	output io.Writer
	layout string
	level  Level
	format Format
	caller bool
	pretty bool
}

// Option applies a configuration option to config.
type Option func(config) config

func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

func defaultConfig(w io.Writer) config {
	if w == nil {
		w = io.Discard
	}

	return config{
		output: w,
		layout: DefaultTimeLayout,
		level:  DefaultLevel,
		format: DefaultFormat,
		pretty: DefaultPretty,
	}
}

// WithOutput sets the destination writer. A nil writer discards output.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel sets the minimum level of emitted records.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout sets the timestamp layout. The name of a [time] package
// layout constant (e.g. "RFC3339Nano", "Kitchen") is accepted in place of
// the layout itself, and "none" omits timestamps.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.layout = layout

		return c
	}
}

// WithCaller enables the source file and line of the log call site.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithPretty enables colorized output meant for a terminal.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

var timeLayout = map[string]string{
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"rfc1123":     time.RFC1123,
	"rfc1123z":    time.RFC1123Z,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
}

func (c config) formatTime(t time.Time) string {
	switch key := strings.ToLower(strings.TrimSpace(c.layout)); key {
	case "", "none":
		return ""
	default:
		if layout, ok := timeLayout[key]; ok {
			return t.Format(layout)
		}

		return t.Format(c.layout)
	}
}

func (c config) handler() slog.Handler {
	if c.pretty {
		return newPrettyHandler(c)
	}

	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}

			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					s := c.formatTime(t)
					if s == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(s)
				}

			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(strings.ToUpper(Level(l).String()))
				}
			}

			return a
		},
	}

	if c.format == FormatJSON {
		return slog.NewJSONHandler(c.output, opts)
	}

	return slog.NewTextHandler(c.output, opts)
}
