package scanner

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/elcond/pkg"
)

// ErrScan matches every [*Error] with [errors.Is].
var ErrScan = pkg.NewError("scan error")

// Error reports malformed input found while scanning an expression.
type Error struct {
	Position    int
	Message     string
	Encountered string
}

func (e *Error) Error() string {
	return "scan error at position " + strconv.Itoa(e.Position) +
		": " + e.Message + " " + strconv.Quote(e.Encountered)
}

// Is reports whether target is [ErrScan].
func (e *Error) Is(target error) bool { return target == ErrScan }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Message),
		slog.Int("position", e.Position),
		slog.String("encountered", e.Encountered),
	)
}
