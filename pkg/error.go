package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Error is an error value carrying structured logging attributes.
//
// Sentinel values are declared once with [NewError] and specialized at the
// failure site with [Error.With] and [Error.Wrap]. Each specialization is a
// new value, so sentinels are never mutated. A specialized Error still
// matches its sentinel with [errors.Is].
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
	base  *Error
}

// Sentinel errors shared by every package in the module.
var (
	ErrReadInput     = NewError("failed to read input")
	ErrInvalidFormat = NewError("invalid format")
	ErrJSONMarshal   = NewError("marshal JSON")
	ErrYAMLMarshal   = NewError("marshal YAML")
	ErrDecode        = NewError("decode input")
)

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError converts err into an *Error, returning err itself if it already
// is one.
func WrapError(err error) *Error {
	var ee *Error
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	//   1. "<msg>: <err>"
	//   2. "<msg>"
	//   3. "<err>"
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Attrs returns a copy of the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		if lv, ok := e.err.(slog.LogValuer); ok {
			attrs = append(attrs, slog.Any("cause", lv))
		} else {
			attrs = append(attrs, slog.String("cause", e.err.Error()))
		}
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
		base:  e.root(),
	}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, len(e.attrs), len(e.attrs)+len(attrs))
	copy(merged, e.attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: append(merged, attrs...),
		base:  e.root(),
	}
}
