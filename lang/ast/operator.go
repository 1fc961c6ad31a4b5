package ast

// BinaryOp is the operator of a [Binary] node.
type BinaryOp int

const (
	OR BinaryOp = iota
	AND
	EQ
	NE
	LT
	LE
	GT
	GE
	ADD
	SUB
	MUL
	DIV
	MOD
)

var binarySymbols = [...]string{
	OR: "||", AND: "&&",
	EQ: "==", NE: "!=",
	LT: "<", LE: "<=", GT: ">", GE: ">=",
	ADD: "+", SUB: "-",
	MUL: "*", DIV: "/", MOD: "%",
}

var binaryNames = [...]string{
	OR: "OR", AND: "AND",
	EQ: "EQ", NE: "NE",
	LT: "LT", LE: "LE", GT: "GT", GE: "GE",
	ADD: "ADD", SUB: "SUB",
	MUL: "MUL", DIV: "DIV", MOD: "MOD",
}

// String returns the operator symbol, e.g. "&&".
func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binarySymbols) {
		return "?"
	}

	return binarySymbols[op]
}

// Name returns the operator name, e.g. "AND".
func (op BinaryOp) Name() string {
	if op < 0 || int(op) >= len(binaryNames) {
		return "?"
	}

	return binaryNames[op]
}

// Comparison reports whether op is one of the equality or relational
// operators.
func (op BinaryOp) Comparison() bool { return op >= EQ && op <= GE }

// UnaryOp is the operator of a [Unary] node.
type UnaryOp int

const (
	NOT UnaryOp = iota
	NEG
	EMPTY
)

// String returns the operator symbol.
func (op UnaryOp) String() string {
	switch op {
	case NOT:
		return "!"
	case NEG:
		return "-"
	case EMPTY:
		return "empty"
	}

	return "?"
}

// Name returns the operator name, e.g. "NEG".
func (op UnaryOp) Name() string {
	switch op {
	case NOT:
		return "NOT"
	case NEG:
		return "NEG"
	case EMPTY:
		return "EMPTY"
	}

	return "?"
}
