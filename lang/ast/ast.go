// Package ast declares the node types of a parsed template.
//
// The set of node types is closed: [Node] has an unexported method, so a
// type switch over the types in this package is exhaustive. Nodes are
// immutable once built and expose their operands only through accessors.
package ast

import (
	"slices"
	"strconv"
)

// Node is implemented by every node type in this package.
type Node interface {
	// String renders the node back to expression syntax.
	String() string
	node()
}

// Literal is implemented by the literal node types [*Boolean], [*String],
// [*Number] and [*Null].
type Literal interface {
	Node
	literal()
}

// Text is literal template text outside of any evaluable segment.
type Text struct{ value string }

// NewText returns a Text node.
func NewText(value string) *Text { return &Text{value: value} }

// Value returns the text.
func (n *Text) Value() string { return n.value }

// Eval is one evaluable segment, "${...}" or "#{...}".
type Eval struct {
	child    Node
	deferred bool
}

// NewEval returns an Eval node wrapping child.
func NewEval(child Node, deferred bool) *Eval {
	return &Eval{child: child, deferred: deferred}
}

func (n *Eval) Child() Node    { return n.child }
func (n *Eval) Deferred() bool { return n.deferred }

// Composite is an ordered sequence of Text and Eval nodes.
type Composite struct{ children []Node }

// NewComposite returns a Composite of children in order.
func NewComposite(children ...Node) *Composite {
	return &Composite{children: slices.Clone(children)}
}

// Children returns a copy of the child list.
func (n *Composite) Children() []Node { return slices.Clone(n.children) }

// Len returns the number of children.
func (n *Composite) Len() int { return len(n.children) }

// Child returns the i'th child.
func (n *Composite) Child(i int) Node { return n.children[i] }

// Binary is an infix operation.
type Binary struct {
	op          BinaryOp
	left, right Node
}

// NewBinary returns a Binary node.
func NewBinary(op BinaryOp, left, right Node) *Binary {
	return &Binary{op: op, left: left, right: right}
}

func (n *Binary) Op() BinaryOp { return n.op }
func (n *Binary) Left() Node   { return n.left }
func (n *Binary) Right() Node  { return n.right }

// Unary is a prefix operation.
type Unary struct {
	op      UnaryOp
	operand Node
}

// NewUnary returns a Unary node.
func NewUnary(op UnaryOp, operand Node) *Unary {
	return &Unary{op: op, operand: operand}
}

func (n *Unary) Op() UnaryOp   { return n.op }
func (n *Unary) Operand() Node { return n.operand }

// Choice is the conditional operator "cond ? yes : no".
type Choice struct{ cond, yes, no Node }

// NewChoice returns a Choice node.
func NewChoice(cond, yes, no Node) *Choice {
	return &Choice{cond: cond, yes: yes, no: no}
}

func (n *Choice) Cond() Node { return n.cond }
func (n *Choice) Yes() Node  { return n.yes }
func (n *Choice) No() Node   { return n.no }

// Identifier is a variable reference. Index is the position of this
// occurrence in the parse result's identifier list.
type Identifier struct {
	name  string
	index int
}

// NewIdentifier returns an Identifier node.
func NewIdentifier(name string, index int) *Identifier {
	return &Identifier{name: name, index: index}
}

func (n *Identifier) Name() string { return n.name }
func (n *Identifier) Index() int   { return n.index }

// FunctionCall is a call of a (possibly namespaced) function. Index is the
// position of this occurrence in the parse result's function list.
type FunctionCall struct {
	name    string
	index   int
	args    []Node
	varargs bool
}

// NewFunctionCall returns a FunctionCall node.
func NewFunctionCall(name string, index int, args []Node, varargs bool) *FunctionCall {
	return &FunctionCall{name: name, index: index, args: slices.Clone(args), varargs: varargs}
}

func (n *FunctionCall) Name() string { return n.name }
func (n *FunctionCall) Index() int   { return n.index }
func (n *FunctionCall) Args() []Node { return slices.Clone(n.args) }

// VarArgs reports whether the call was parsed with variable arguments
// enabled.
func (n *FunctionCall) VarArgs() bool { return n.varargs }

// PropertyAccess is "base.name" or "base[key]".
type PropertyAccess struct {
	base    Node
	key     Node
	lvalue  bool
	strict  bool
	bracket bool
}

// NewDot returns the property access "base.name".
func NewDot(base Node, name string, lvalue bool) *PropertyAccess {
	return &PropertyAccess{base: base, key: NewString(name), lvalue: lvalue, strict: true}
}

// NewBracket returns the property access "base[key]".
func NewBracket(base, key Node, lvalue, strict bool) *PropertyAccess {
	return &PropertyAccess{base: base, key: key, lvalue: lvalue, strict: strict, bracket: true}
}

func (n *PropertyAccess) Base() Node { return n.base }

// Key returns the property key. For dot access it is a [*String].
func (n *PropertyAccess) Key() Node { return n.key }

// Name returns the property name of a dot access, or "" for bracket access.
func (n *PropertyAccess) Name() string {
	if s, ok := n.key.(*String); ok && !n.bracket {
		return s.value
	}

	return ""
}

// Lvalue reports whether the access chain is rooted in an identifier or a
// parenthesized expression.
func (n *PropertyAccess) Lvalue() bool { return n.lvalue }

// Strict reports whether a null base is an error rather than null.
func (n *PropertyAccess) Strict() bool { return n.strict }

// Bracket reports whether the access used "[key]" syntax.
func (n *PropertyAccess) Bracket() bool { return n.bracket }

// MethodCall is a property access followed by an argument list.
type MethodCall struct {
	target *PropertyAccess
	args   []Node
}

// NewMethodCall returns a MethodCall node.
func NewMethodCall(target *PropertyAccess, args []Node) *MethodCall {
	return &MethodCall{target: target, args: slices.Clone(args)}
}

func (n *MethodCall) Target() *PropertyAccess { return n.target }
func (n *MethodCall) Args() []Node            { return slices.Clone(n.args) }

// Nested is a parenthesized expression.
type Nested struct{ inner Node }

// NewNested returns a Nested node.
func NewNested(inner Node) *Nested { return &Nested{inner: inner} }

func (n *Nested) Inner() Node { return n.inner }

// Boolean is a true or false literal.
type Boolean struct{ value bool }

// NewBoolean returns a Boolean node.
func NewBoolean(value bool) *Boolean { return &Boolean{value: value} }

func (n *Boolean) Value() bool { return n.value }

// String is a string literal. Value holds the unescaped text.
type String struct{ value string }

// NewString returns a String node.
func NewString(value string) *String { return &String{value: value} }

func (n *String) Value() string { return n.value }

// Number is an integer or floating point literal.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

// NewInteger returns an integral Number node.
func NewInteger(v int64) *Number { return &Number{i: v, f: float64(v)} }

// NewFloat returns a floating point Number node.
func NewFloat(v float64) *Number { return &Number{f: v, isFloat: true} }

// IsFloat reports whether the literal was written in floating point form.
func (n *Number) IsFloat() bool { return n.isFloat }

// Int returns the integral value. ok is false for floating point literals.
func (n *Number) Int() (v int64, ok bool) { return n.i, !n.isFloat }

// Float returns the value as a float64.
func (n *Number) Float() float64 { return n.f }

// Value returns the value as an int64 or float64.
func (n *Number) Value() any {
	if n.isFloat {
		return n.f
	}

	return n.i
}

// Text returns the shortest decimal text that represents the value.
// Floating point values never use exponent notation and integral floats
// have no fraction.
func (n *Number) Text() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	}

	return strconv.FormatInt(n.i, 10)
}

// Null is the null literal.
type Null struct{}

// NewNull returns a Null node.
func NewNull() *Null { return &Null{} }

func (*Text) node()           {}
func (*Eval) node()           {}
func (*Composite) node()      {}
func (*Binary) node()         {}
func (*Unary) node()          {}
func (*Choice) node()         {}
func (*Identifier) node()     {}
func (*FunctionCall) node()   {}
func (*PropertyAccess) node() {}
func (*MethodCall) node()     {}
func (*Nested) node()         {}
func (*Boolean) node()        {}
func (*String) node()         {}
func (*Number) node()         {}
func (*Null) node()           {}

func (*Boolean) literal() {}
func (*String) literal()  {}
func (*Number) literal()  {}
func (*Null) literal()    {}
