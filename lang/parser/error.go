package parser

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/elcond/pkg"
)

// Sentinel errors.
var (
	// ErrParse matches every [*ParseError] with [errors.Is].
	ErrParse = pkg.NewError("parse error")

	// ErrParserUsed is returned when Parse is called more than once.
	ErrParserUsed = pkg.NewError("parser already used")

	// ErrExtension is returned when an extension Builder returns nil.
	ErrExtension = pkg.NewError("extension produced no node")
)

// ParseError reports the first token that did not fit the grammar. Parsing
// stops at the first ParseError; no partial tree is returned.
type ParseError struct {
	Position    int    // offset of the offending token
	Encountered string // quoted token image, or <EOF>
	Expected    string // "|"-separated alternatives
}

func (e *ParseError) Error() string {
	return "syntax error at position " + strconv.Itoa(e.Position) +
		", encountered " + e.Encountered +
		", expected " + e.Expected
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "syntax error"),
		slog.Int("position", e.Position),
		slog.String("encountered", e.Encountered),
		slog.String("expected", e.Expected),
	)
}
