package condition

import (
	"regexp"
	"strings"

	"github.com/ardnew/elcond/lang/simplify"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}`)

// Split recovers a form from an expression produced by [Generate] by
// splitting the text on "||" and "&&" rather than parsing it.
//
// Each comparison takes the first operator found, trying <=, <, >=, >, ==
// and != in that order. Values are classified as null, boolean, quoted
// (DATE if it looks like a date, otherwise STRING), number, object
// parameter (contains a '.') or parameter.
//
// Split does not understand quoting around delimiters. Use [ParseTree]
// for arbitrary expressions.
func Split(expression string) Form {
	body := expression
	if i := strings.Index(body, "${"); i >= 0 {
		body = body[i+2:]
	}

	if i := strings.LastIndexByte(body, '}'); i >= 0 {
		body = body[:i]
	}

	var form Form

	for or := range strings.SplitSeq(body, "||") {
		or = strings.TrimSpace(or)
		if or == "" {
			continue
		}

		or = strings.TrimSuffix(strings.TrimPrefix(or, "("), ")")

		group := make([]Node, 0)

		for and := range strings.SplitSeq(or, "&&") {
			if n, ok := splitNode(strings.TrimSpace(and)); ok {
				group = append(group, n)
			}
		}

		form = append(form, group)
	}

	return form
}

func splitNode(text string) (Node, bool) {
	for op := OpLE; op < OpUnknown; op++ {
		variable, value, found := strings.Cut(text, op.String())
		if !found {
			continue
		}

		n := classify(value)
		n.Variable = strings.TrimSpace(variable)
		n.Operator = op

		return n, true
	}

	return Node{}, false
}

// classify builds a Node with the value, class and value type of a
// comparison's right-hand side.
func classify(value string) Node {
	value = strings.TrimSpace(value)

	switch {
	case value == "null":
		return Node{Class: ClassUnknown, ValueType: Fixed}

	case value == "true" || value == "false":
		return Node{Value: Value(value), Class: ClassBool, ValueType: Fixed}

	case len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'':
		s := unquote(value[1 : len(value)-1])
		if datePattern.MatchString(s) {
			return Node{Value: Value(s), Class: ClassDate, ValueType: Fixed}
		}

		return Node{Value: Value(s), Class: ClassString, ValueType: Fixed}
	}

	if num, ok := simplify.CanonicalNumber(value); ok {
		return Node{Value: Value(num), Class: ClassNumber, ValueType: Fixed}
	}

	value = strings.TrimPrefix(value, "#")

	if strings.Contains(value, ".") {
		return Node{Value: Value(value), Class: ClassUnknown, ValueType: ObjectParam}
	}

	return Node{Value: Value(value), Class: ClassUnknown, ValueType: Param}
}

// unquote reverses the escaping of a single-quoted string literal.
func unquote(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}
