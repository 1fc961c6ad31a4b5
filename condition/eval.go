package condition

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/elcond/lang/simplify"
	"github.com/ardnew/elcond/log"
)

// Source translates form to an expr-lang boolean expression. Strings and
// dates become double-quoted strings, null becomes nil and dotted paths use
// nil-safe member access. An empty form is false and an empty group is true.
func Source(form Form) (string, error) {
	if len(form) == 0 {
		return "false", nil
	}

	groups := make([]string, len(form))

	for i, group := range form {
		if len(group) == 0 {
			groups[i] = "true"

			continue
		}

		terms := make([]string, len(group))

		for j, n := range group {
			if !n.Operator.valid() {
				return "", ErrUnknownOperator.With(
					slog.String("variable", n.Variable),
					slog.Int("group", i), slog.Int("index", j))
			}

			v, err := n.exprValue()
			if err != nil {
				return "", err
			}

			terms[j] = n.exprTerm(v)
		}

		groups[i] = "(" + strings.Join(terms, " && ") + ")"
	}

	return strings.Join(groups, " || "), nil
}

// exprTerm renders the comparison of n against the translated value v.
// Ordering comparisons are false when either side is nil.
func (n Node) exprTerm(v string) string {
	lhs := exprPath(n.Variable)
	term := lhs + " " + n.Operator.String() + " " + v

	if !n.Operator.ordered() {
		return term
	}

	guards := []string{lhs + " != nil"}
	if n.Value == nil || n.ValueType != Fixed {
		guards = append(guards, v+" != nil")
	}

	return "(" + strings.Join(append(guards, term), " && ") + ")"
}

// exprPath renders a dotted path with nil-safe member access.
func exprPath(path string) string {
	return strings.ReplaceAll(path, ".", "?.")
}

func (n Node) exprValue() (string, error) {
	if n.Value == nil {
		return "nil", nil
	}

	v := *n.Value

	if n.ValueType != Fixed {
		return exprPath(v), nil
	}

	switch n.Class {
	case ClassNumber:
		num, ok := simplify.CanonicalNumber(v)
		if !ok {
			return "", n.invalid()
		}

		return num, nil

	case ClassString:
		return strconv.Quote(v), nil

	case ClassDate:
		s, err := n.render()
		if err != nil {
			return "", err
		}

		return strconv.Quote(strings.Trim(s, "'")), nil

	case ClassBool:
		return n.render()
	}

	return v, nil
}

// Compile compiles form into a program that yields a bool. Variables not
// bound at run time evaluate to nil.
func Compile(form Form, opts ...expr.Option) (*vm.Program, error) {
	src, err := Source(form)
	if err != nil {
		return nil, err
	}

	opts = append([]expr.Option{expr.AsBool(), expr.AllowUndefinedVariables()}, opts...)

	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, ErrCompile.Wrap(err).With(slog.String("source", src))
	}

	return program, nil
}

// Eval compiles and runs form against env.
func Eval(ctx context.Context, form Form, env map[string]any) (bool, error) {
	program, err := Compile(form)
	if err != nil {
		return false, err
	}

	if env == nil {
		env = map[string]any{}
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return false, ErrEvaluate.Wrap(err).With(slog.Int("groups", len(form)))
	}

	ok, _ := result.(bool)

	log.TraceContext(ctx, "evaluated condition",
		slog.Int("groups", len(form)),
		slog.Bool("result", ok),
	)

	return ok, nil
}
