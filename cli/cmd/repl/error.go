package repl

import "github.com/ardnew/elcond/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds  = pkg.NewError("index out of range")
	ErrHistory      = pkg.NewError("history file")
	ErrEditor       = pkg.NewError("run editor")
	ErrEditDeclined = pkg.NewError("decline edit")
	ErrNoLastInput  = pkg.NewError("nothing evaluated yet")
)
