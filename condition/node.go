package condition

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/elcond/pkg"
)

// Class is the data type of a comparison.
type Class int

const (
	ClassUnknown Class = iota
	ClassString
	ClassNumber
	ClassDate
	ClassBool
)

var classNames = [...]string{
	ClassUnknown: "UNKNOWN",
	ClassString:  "STRING",
	ClassNumber:  "NUMBER",
	ClassDate:    "DATE",
	ClassBool:    "BOOL",
}

func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}

	return classNames[ClassUnknown]
}

func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Class) UnmarshalText(text []byte) error {
	for i, name := range classNames {
		if name == string(text) {
			*c = Class(i)

			return nil
		}
	}

	return pkg.ErrInvalidFormat.With(slog.String("class", string(text)))
}

// ValueType tells how a comparison's value is interpreted.
type ValueType int

const (
	// Fixed values are literals rendered according to their [Class].
	Fixed ValueType = iota
	// Param values name another variable.
	Param
	// ObjectParam values name a property of an object variable, e.g.
	// "obj.field".
	ObjectParam
)

var valueTypeNames = [...]string{
	Fixed:       "FIXED",
	Param:       "PARAM",
	ObjectParam: "OBJECTPARAM",
}

func (t ValueType) String() string {
	if t >= 0 && int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}

	return "ValueType(" + strconv.Itoa(int(t)) + ")"
}

func (t ValueType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(valueTypeNames) {
		return nil, pkg.ErrInvalidFormat.With(slog.Int("value_type", int(t)))
	}

	return []byte(valueTypeNames[t]), nil
}

func (t *ValueType) UnmarshalText(text []byte) error {
	for i, name := range valueTypeNames {
		if name == string(text) {
			*t = ValueType(i)

			return nil
		}
	}

	return pkg.ErrInvalidFormat.With(slog.String("value_type", string(text)))
}

// Operator is a comparison operator.
type Operator int

// Operators are declared in the order [Split] tries them, so "<=" is found
// before "<".
const (
	OpLE Operator = iota
	OpLT
	OpGE
	OpGT
	OpEQ
	OpNE
	OpUnknown
)

var operators = [...]struct{ name, symbol string }{
	OpLE:      {"LE", "<="},
	OpLT:      {"LT", "<"},
	OpGE:      {"GE", ">="},
	OpGT:      {"GT", ">"},
	OpEQ:      {"EQ", "=="},
	OpNE:      {"NE", "!="},
	OpUnknown: {"UNKNOWN", "<UNKNOWN>"},
}

// FindOperator returns the operator with the given symbol, or OpUnknown.
func FindOperator(symbol string) Operator {
	for op := OpLE; op < OpUnknown; op++ {
		if operators[op].symbol == symbol {
			return op
		}
	}

	return OpUnknown
}

func (o Operator) valid() bool { return o >= OpLE && o < OpUnknown }

// ordered reports whether o compares by order rather than equality.
func (o Operator) ordered() bool { return o >= OpLE && o <= OpGT }

// String returns the operator symbol, e.g. "<=".
func (o Operator) String() string {
	if o.valid() {
		return operators[o].symbol
	}

	return operators[OpUnknown].symbol
}

// Name returns the operator name, e.g. "LE".
func (o Operator) Name() string {
	if o.valid() {
		return operators[o].name
	}

	return operators[OpUnknown].name
}

func (o Operator) MarshalText() ([]byte, error) { return []byte(o.Name()), nil }

// UnmarshalText accepts an operator name or symbol. Anything else decodes
// as OpUnknown.
func (o *Operator) UnmarshalText(text []byte) error {
	s := string(text)

	for op := OpLE; op < OpUnknown; op++ {
		if operators[op].name == s {
			*o = op

			return nil
		}
	}

	*o = FindOperator(s)

	return nil
}

// Node is a single comparison "Variable Operator Value". A nil Value
// compares against null.
type Node struct {
	Variable  string    `json:"variable"       yaml:"variable"`
	Operator  Operator  `json:"operator"       yaml:"operator"`
	Value     *string   `json:"value"          yaml:"value"`
	Class     Class     `json:"conditionClass" yaml:"conditionClass"`
	ValueType ValueType `json:"valueType"      yaml:"valueType"`
}

// String renders n as it appears inside a generated expression.
func (n Node) String() string {
	v, err := n.render()
	if err != nil {
		v = "<" + err.Error() + ">"
	}

	return n.Variable + n.Operator.String() + v
}

// Form is a disjunction of conjunctive groups.
type Form [][]Node

// Value returns a pointer to s, for building a [Node] literal.
func Value(s string) *string { return &s }
