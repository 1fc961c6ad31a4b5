// Package condition converts between condition forms and expression
// templates.
//
// A [Form] is a disjunction of conjunctions: each inner slice is a group of
// comparisons joined by "&&", and the groups are joined by "||".
//
//	Form{
//		{{Variable: "a", Operator: OpEQ, Value: Value("1"), Class: ClassNumber}},
//		{{Variable: "b", Operator: OpNE}},
//	}
//
// generates
//
//	${(a==1) || (b!=null)}
//
// [Generate] renders a form, [Split] recovers a form by splitting the text
// on its delimiters, and [ParseTree] recovers a form from the parsed
// syntax tree. [Eval] evaluates a form against variable bindings.
package condition
