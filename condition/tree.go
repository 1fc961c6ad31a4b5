package condition

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/lang/simplify"
	"github.com/ardnew/elcond/log"
)

// ParseTree parses expression and extracts its form with [FromTree].
func ParseTree(ctx context.Context, expression string, opts ...lang.Option) (Form, error) {
	tree, err := lang.Parse(ctx, expression, opts...)
	if err != nil {
		return nil, err
	}

	form, err := FromTree(tree)
	if err != nil {
		return nil, err
	}

	log.TraceContext(ctx, "extracted form",
		slog.Int("groups", len(form)),
		slog.Int("identifiers", len(tree.Identifiers)),
	)

	return form, nil
}

// FromTree extracts the form of a parsed expression.
func FromTree(tree *parser.Tree) (Form, error) {
	leaf, err := simplify.Tree(tree)
	if err != nil {
		return nil, ErrNotCondition.Wrap(err)
	}

	return FromLeaf(leaf)
}

// FromLeaf extracts a form from a simplified expression. The expression
// must be a "||" of "&&" of comparisons; each comparison has a variable on
// its left and a literal, parameter or null on its right.
func FromLeaf(leaf *simplify.Leaf) (Form, error) {
	var form Form

	if err := disjunction(leaf, &form); err != nil {
		return nil, err
	}

	return form, nil
}

func disjunction(leaf *simplify.Leaf, form *Form) error {
	if leaf.Operator != ast.OR.String() {
		group := make([]Node, 0)
		if err := conjunction(leaf, &group); err != nil {
			return err
		}

		*form = append(*form, group)

		return nil
	}

	for _, side := range [2]simplify.Side{leaf.Left, leaf.Right} {
		child, err := childOf(side, leaf)
		if err != nil {
			return err
		}

		if err := disjunction(child, form); err != nil {
			return err
		}
	}

	return nil
}

func conjunction(leaf *simplify.Leaf, group *[]Node) error {
	if leaf.Operator != ast.AND.String() {
		n, err := comparison(leaf)
		if err != nil {
			return err
		}

		*group = append(*group, n)

		return nil
	}

	for _, side := range [2]simplify.Side{leaf.Left, leaf.Right} {
		child, err := childOf(side, leaf)
		if err != nil {
			return err
		}

		if err := conjunction(child, group); err != nil {
			return err
		}
	}

	return nil
}

func childOf(side simplify.Side, parent *simplify.Leaf) (*simplify.Leaf, error) {
	if side.Kind() != simplify.Child {
		return nil, ErrNotCondition.With(
			slog.String("operator", parent.Operator),
			slog.String("operand", side.String()),
		)
	}

	return side.Child(), nil
}

func comparison(leaf *simplify.Leaf) (Node, error) {
	op := FindOperator(leaf.Operator)
	if op == OpUnknown {
		return Node{}, ErrUnknownOperator.With(slog.String("operator", leaf.Operator))
	}

	if leaf.Left.Kind() != simplify.Literal {
		return Node{}, ErrNotCondition.With(
			slog.String("comparison", leaf.String()),
			slog.String("issue", "left side is not a variable"),
		)
	}

	var n Node

	switch leaf.Right.Kind() {
	case simplify.Absent:
		n = Node{Class: ClassUnknown, ValueType: Fixed}
	case simplify.Literal:
		n = classify(leaf.Right.Literal())
	default:
		return Node{}, ErrNotCondition.With(
			slog.String("comparison", leaf.String()),
			slog.String("issue", "right side is not a value"),
		)
	}

	n.Variable = strings.TrimPrefix(leaf.Left.Literal(), "#")
	n.Operator = op

	return n, nil
}
