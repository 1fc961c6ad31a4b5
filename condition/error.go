package condition

import "github.com/ardnew/elcond/pkg"

var (
	// ErrInvalidValue is returned when a fixed value does not match its
	// class, such as a NUMBER that is not a number.
	ErrInvalidValue = pkg.NewError("invalid condition value")

	// ErrUnknownOperator is returned for a comparison whose operator is not
	// one of == != < <= > >=.
	ErrUnknownOperator = pkg.NewError("unknown operator")

	// ErrNotCondition is returned when an expression is not an OR of ANDs
	// of comparisons.
	ErrNotCondition = pkg.NewError("expression is not a condition form")

	// ErrCompile is returned when a form cannot be compiled for evaluation.
	ErrCompile = pkg.NewError("compile condition")

	// ErrEvaluate is returned when evaluating a compiled form fails.
	ErrEvaluate = pkg.NewError("evaluate condition")
)
