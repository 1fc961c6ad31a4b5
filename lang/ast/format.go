package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (n *Text) String() string {
	s := strings.ReplaceAll(n.value, "${", `\${`)

	return strings.ReplaceAll(s, "#{", `\#{`)
}

func (n *Eval) String() string {
	if n.deferred {
		return "#{" + n.child.String() + "}"
	}

	return "${" + n.child.String() + "}"
}

func (n *Composite) String() string {
	var sb strings.Builder
	for _, child := range n.children {
		sb.WriteString(child.String())
	}

	return sb.String()
}

func (n *Binary) String() string {
	return n.left.String() + " " + n.op.String() + " " + n.right.String()
}

func (n *Unary) String() string {
	if n.op == EMPTY {
		return "empty " + n.operand.String()
	}

	return n.op.String() + n.operand.String()
}

func (n *Choice) String() string {
	return n.cond.String() + " ? " + n.yes.String() + " : " + n.no.String()
}

func (n *Identifier) String() string { return n.name }

func (n *FunctionCall) String() string { return n.name + formatArgs(n.args) }

func (n *PropertyAccess) String() string {
	if n.bracket {
		return n.base.String() + "[" + n.key.String() + "]"
	}

	return n.base.String() + "." + n.Name()
}

func (n *MethodCall) String() string { return n.target.String() + formatArgs(n.args) }

func (n *Nested) String() string { return "(" + n.inner.String() + ")" }

func (n *Boolean) String() string { return strconv.FormatBool(n.value) }

func (n *String) String() string { return Quote(n.value) }

// String renders n as a literal that scans back to the same kind: floating
// point values keep a fraction or an exponent.
func (n *Number) String() string {
	if !n.isFloat {
		return strconv.FormatInt(n.i, 10)
	}

	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}

func (*Null) String() string { return "null" }

func formatArgs(args []Node) string {
	part := make([]string, len(args))
	for i, arg := range args {
		part[i] = arg.String()
	}

	return "(" + strings.Join(part, ", ") + ")"
}

// Quote returns s as a single-quoted string literal.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)

	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// Kind returns the type name of n without its package, e.g. "Binary".
func Kind(n Node) string {
	switch n.(type) {
	case *Text:
		return "Text"
	case *Eval:
		return "Eval"
	case *Composite:
		return "Composite"
	case *Binary:
		return "Binary"
	case *Unary:
		return "Unary"
	case *Choice:
		return "Choice"
	case *Identifier:
		return "Identifier"
	case *FunctionCall:
		return "FunctionCall"
	case *PropertyAccess:
		return "PropertyAccess"
	case *MethodCall:
		return "MethodCall"
	case *Nested:
		return "Nested"
	case *Boolean:
		return "Boolean"
	case *String:
		return "String"
	case *Number:
		return "Number"
	case *Null:
		return "Null"
	}

	return "<nil>"
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Eval:
		return []Node{n.child}
	case *Composite:
		return n.Children()
	case *Binary:
		return []Node{n.left, n.right}
	case *Unary:
		return []Node{n.operand}
	case *Choice:
		return []Node{n.cond, n.yes, n.no}
	case *FunctionCall:
		return n.Args()
	case *PropertyAccess:
		if n.bracket {
			return []Node{n.base, n.key}
		}

		return []Node{n.base}
	case *MethodCall:
		return append([]Node{n.target}, n.args...)
	case *Nested:
		return []Node{n.inner}
	}

	return nil
}

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. Children of a node are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// Print writes an indented outline of the tree rooted at n to w, one node
// per line.
func Print(w io.Writer, n Node, indent int) error {
	return printNode(w, n, indent, 0)
}

func printNode(w io.Writer, n Node, indent, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s%s\n",
		strings.Repeat(" ", indent*depth), Kind(n), detail(n)); err != nil {
		return err
	}

	for _, child := range Children(n) {
		if err := printNode(w, child, indent, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func detail(n Node) string {
	switch n := n.(type) {
	case *Text:
		return " " + strconv.Quote(n.value)
	case *Eval:
		return " deferred=" + strconv.FormatBool(n.deferred)
	case *Binary:
		return " " + n.op.Name()
	case *Unary:
		return " " + n.op.Name()
	case *Identifier:
		return " " + n.name + " #" + strconv.Itoa(n.index)
	case *FunctionCall:
		return " " + n.name + " #" + strconv.Itoa(n.index)
	case *PropertyAccess:
		s := ""
		if !n.bracket {
			s = " ." + n.Name()
		}

		return s + " lvalue=" + strconv.FormatBool(n.lvalue) +
			" strict=" + strconv.FormatBool(n.strict)
	case Literal:
		return " " + n.String()
	}

	return ""
}
