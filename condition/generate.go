package condition

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/elcond/lang/simplify"
	"github.com/ardnew/elcond/pkg"
)

// DateLayout is the layout of DATE values.
const DateLayout = time.DateOnly

// Generate renders form as an immediate expression template:
//
//	${(a==1 && b=='x') || (c!=null)}
//
// Comparisons are written without spaces. Fixed values are rendered by
// class: numbers in canonical form, strings and dates in single quotes,
// booleans as true or false. Parameter values are written verbatim and a
// nil value is written as null.
func Generate(form Form) (string, error) {
	var sb strings.Builder

	sb.WriteString("${")

	for i, group := range form {
		if i > 0 {
			sb.WriteString(" || ")
		}

		sb.WriteByte('(')

		for j, n := range group {
			if j > 0 {
				sb.WriteString(" && ")
			}

			if !n.Operator.valid() {
				return "", ErrUnknownOperator.With(
					slog.String("variable", n.Variable),
					slog.Int("group", i), slog.Int("index", j))
			}

			v, err := n.render()
			if err != nil {
				return "", err
			}

			sb.WriteString(n.Variable)
			sb.WriteString(n.Operator.String())
			sb.WriteString(v)
		}

		sb.WriteByte(')')
	}

	sb.WriteByte('}')

	return sb.String(), nil
}

// render returns the expression text of n's value.
func (n Node) render() (string, error) {
	if n.Value == nil {
		return "null", nil
	}

	v := *n.Value

	if n.ValueType != Fixed {
		return v, nil
	}

	switch n.Class {
	case ClassNumber:
		num, ok := simplify.CanonicalNumber(v)
		if !ok {
			return "", n.invalid()
		}

		return num, nil

	case ClassString:
		return "'" + v + "'", nil

	case ClassDate:
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			return "", n.invalid().Wrap(err)
		}

		return "'" + t.Format(DateLayout) + "'", nil

	case ClassBool:
		if strings.EqualFold(v, "true") {
			return "true", nil
		}

		return "false", nil
	}

	return v, nil
}

func (n Node) invalid() *pkg.Error {
	return ErrInvalidValue.With(
		slog.String("variable", n.Variable),
		slog.String("class", n.Class.String()),
		slog.String("value", *n.Value),
	)
}
