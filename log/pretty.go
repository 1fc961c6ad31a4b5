package log

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset   = "\033[0m"
	ansiGray    = "\033[90m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

// prettyHandler is a colorized [slog.Handler] for terminals. It lays a
// record out as key=value pairs, or as an indented object for [FormatJSON].
type prettyHandler struct {
	cfg    config
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

func newPrettyHandler(cfg config) *prettyHandler {
	return &prettyHandler{cfg: cfg, mu: &sync.Mutex{}}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.cfg.level)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var fields []slog.Attr

	if !r.Time.IsZero() {
		if s := h.cfg.formatTime(r.Time); s != "" {
			fields = append(fields, slog.String(slog.TimeKey, s))
		}
	}

	fields = append(fields, slog.Any(slog.LevelKey, Level(r.Level)))

	if h.cfg.caller {
		if src := r.Source(); src != nil && src.File != "" {
			fields = append(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.qualify(a))

		return true
	})

	var buf bytes.Buffer

	if h.cfg.format == FormatJSON {
		buf.WriteString("{\n")

		for i, a := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
			writeKey(&buf, a.Key)
			buf.WriteString(": ")
			writeValue(&buf, a.Value)
		}

		buf.WriteString("\n}")
	} else {
		for i, a := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			writeKey(&buf, a.Key)
			buf.WriteByte('=')
			writeValue(&buf, a.Value)
		}
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.cfg.output.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// qualify prefixes a's key with the open groups.
func (h *prettyHandler) qualify(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	a.Key = h.prefix + a.Key

	return a
}

func writeKey(buf *bytes.Buffer, key string) {
	buf.WriteString(ansiGray)
	buf.WriteString(key)
	buf.WriteString(ansiReset)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	color, text := ansiCyan, v.String()

	switch v.Kind() {
	case slog.KindInt64:
		color, text = ansiYellow, strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		color, text = ansiYellow, strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		color, text = ansiYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		color = ansiRed
		if v.Bool() {
			color = ansiGreen
		}
	case slog.KindDuration:
		color = ansiMagenta
	case slog.KindTime:
		color, text = ansiBlue, v.Time().Format(time.RFC3339)
	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))
		for _, a := range v.Group() {
			parts = append(parts, a.Key+"="+a.Value.String())
		}

		text = "{" + strings.Join(parts, " ") + "}"
	case slog.KindAny:
		if level, ok := v.Any().(Level); ok {
			color, text = levelColor(level), strings.ToUpper(level.String())
		}
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(ansiReset)
}

func levelColor(level Level) string {
	switch {
	case level >= LevelError:
		return ansiRed
	case level >= LevelWarn:
		return ansiYellow
	case level >= LevelInfo:
		return ansiGreen
	case level >= LevelDebug:
		return ansiBlue
	}

	return ansiGray
}
