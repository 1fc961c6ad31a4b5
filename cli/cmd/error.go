package cmd

import "github.com/ardnew/elcond/pkg"

var (
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoSource    = pkg.NewError("no readable source")
	ErrInvalidVar  = pkg.NewError("invalid variable")
	ErrNoContext   = pkg.NewError("missing command context")
)
