// Package simplify collapses a binary-operator expression into a tree of
// two-sided leaves.
//
// Each [Leaf] holds an operator and two [Side] values. A side is either a
// child leaf (another binary operation), a rendered literal, an absent
// value (null) or an operand that has no leaf representation.
package simplify

import (
	"iter"
	"log/slog"
	"strings"

	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/pkg"
)

var (
	// ErrNotBinary is returned when a tree's root is not a binary operation.
	ErrNotBinary = pkg.NewError("root is not a binary operation")

	// ErrUnsupportedOperand is returned by [Strict] for an operand that
	// cannot be rendered as a leaf literal.
	ErrUnsupportedOperand = pkg.NewError("unsupported operand")
)

// SideKind identifies which field of a [Side] is populated.
type SideKind int

const (
	Absent SideKind = iota
	Child
	Literal
	Unsupported
)

func (k SideKind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Child:
		return "child"
	case Literal:
		return "literal"
	case Unsupported:
		return "unsupported"
	}

	return "unknown"
}

// Side is one operand of a [Leaf].
type Side struct {
	kind    SideKind
	child   *Leaf
	literal string
	node    ast.Node
}

// Kind reports which kind of side s is.
func (s Side) Kind() SideKind { return s.kind }

// Child returns the nested leaf of a [Child] side.
func (s Side) Child() *Leaf { return s.child }

// Literal returns the rendered value of a [Literal] side.
func (s Side) Literal() string { return s.literal }

// Node returns the operand of an [Unsupported] side.
func (s Side) Node() ast.Node { return s.node }

func (s Side) String() string {
	switch s.kind {
	case Child:
		return s.child.String()
	case Literal:
		return s.literal
	case Unsupported:
		return "<unsupported " + ast.Kind(s.node) + ">"
	}

	return "null"
}

// Leaf is a simplified binary operation.
type Leaf struct {
	Operator string
	Left     Side
	Right    Side
}

// String renders l fully parenthesized, e.g. "((a > 1) && (b == 'x'))".
func (l *Leaf) String() string {
	var sb strings.Builder

	l.write(&sb)

	return sb.String()
}

func (l *Leaf) write(sb *strings.Builder) {
	sb.WriteByte('(')
	l.Left.write(sb)
	sb.WriteByte(' ')
	sb.WriteString(l.Operator)
	sb.WriteByte(' ')
	l.Right.write(sb)
	sb.WriteByte(')')
}

func (s Side) write(sb *strings.Builder) {
	if s.kind == Child {
		s.child.write(sb)

		return
	}

	sb.WriteString(s.String())
}

// Unsupported yields every operand in l, depth first and left to right,
// that has no leaf representation.
func (l *Leaf) Unsupported() iter.Seq[ast.Node] {
	return func(yield func(ast.Node) bool) {
		l.unsupported(yield)
	}
}

func (l *Leaf) unsupported(yield func(ast.Node) bool) bool {
	for _, s := range [2]Side{l.Left, l.Right} {
		switch s.kind {
		case Child:
			if !s.child.unsupported(yield) {
				return false
			}
		case Unsupported:
			if !yield(s.node) {
				return false
			}
		}
	}

	return true
}

// Strict returns l, or an error wrapping [ErrUnsupportedOperand] for the
// first unsupported operand in l.
func Strict(l *Leaf) (*Leaf, error) {
	for n := range l.Unsupported() {
		return nil, ErrUnsupportedOperand.With(
			slog.String("kind", ast.Kind(n)),
			slog.String("operand", n.String()),
		)
	}

	return l, nil
}

// Tree simplifies the expression of a parse tree. Eval and Nested wrappers
// around the root are skipped.
func Tree(t *parser.Tree) (*Leaf, error) {
	n := t.Root

	for {
		switch v := n.(type) {
		case *ast.Eval:
			n = v.Child()
		case *ast.Nested:
			n = v.Inner()
		case *ast.Binary:
			return Node(v), nil
		default:
			return nil, ErrNotBinary.With(slog.String("kind", ast.Kind(n)))
		}
	}
}

// Node simplifies a binary operation.
func Node(b *ast.Binary) *Leaf {
	return &Leaf{
		Operator: b.Op().String(),
		Left:     side(b.Left()),
		Right:    side(b.Right()),
	}
}

func side(n ast.Node) Side {
	switch v := n.(type) {
	case *ast.Binary:
		return Side{kind: Child, child: Node(v)}

	case *ast.Nested:
		return side(v.Inner())

	case *ast.Identifier:
		return literal(v.Name())

	case *ast.Null:
		return Side{kind: Absent}

	case *ast.Boolean:
		return literal(v.String())

	case *ast.String:
		return literal(ast.Quote(v.Value()))

	case *ast.Number:
		return literal(v.Text())

	case *ast.Unary:
		if num, ok := v.Operand().(*ast.Number); ok && v.Op() == ast.NEG {
			if text, ok := CanonicalNumber("-" + num.Text()); ok {
				return literal(text)
			}
		}

	case *ast.PropertyAccess:
		if id, ok := v.Base().(*ast.Identifier); ok && !v.Bracket() {
			return literal("#" + id.Name() + "." + v.Name())
		}
	}

	return Side{kind: Unsupported, node: n}
}

func literal(s string) Side { return Side{kind: Literal, literal: s} }
