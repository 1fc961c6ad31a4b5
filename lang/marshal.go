package lang

import (
	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/lang/simplify"
)

// ToMap converts a parse tree, node or leaf to native Go maps and slices
// suitable for JSON or YAML encoding. Other values are returned as is.
func ToMap(v any) any {
	switch v := v.(type) {
	case *parser.Tree:
		return treeMap(v)
	case ast.Node:
		return nodeMap(v)
	case *simplify.Leaf:
		return leafMap(v)
	}

	return v
}

func treeMap(t *parser.Tree) map[string]any {
	ids := make([]any, len(t.Identifiers))
	for i, id := range t.Identifiers {
		ids[i] = id.Name()
	}

	fns := make([]any, len(t.Functions))
	for i, fn := range t.Functions {
		fns[i] = fn.Name()
	}

	return map[string]any{
		"root":        nodeMap(t.Root),
		"identifiers": ids,
		"functions":   fns,
		"deferred":    t.Deferred,
	}
}

func nodeMap(n ast.Node) map[string]any {
	if n == nil {
		return nil
	}

	m := map[string]any{"type": ast.Kind(n)}

	switch n := n.(type) {
	case *ast.Text:
		m["value"] = n.Value()
	case *ast.Eval:
		m["deferred"] = n.Deferred()
		m["child"] = nodeMap(n.Child())
	case *ast.Composite:
		m["children"] = nodeList(n.Children())
	case *ast.Binary:
		m["op"] = n.Op().Name()
		m["left"] = nodeMap(n.Left())
		m["right"] = nodeMap(n.Right())
	case *ast.Unary:
		m["op"] = n.Op().Name()
		m["operand"] = nodeMap(n.Operand())
	case *ast.Choice:
		m["cond"] = nodeMap(n.Cond())
		m["yes"] = nodeMap(n.Yes())
		m["no"] = nodeMap(n.No())
	case *ast.Identifier:
		m["name"] = n.Name()
		m["index"] = n.Index()
	case *ast.FunctionCall:
		m["name"] = n.Name()
		m["index"] = n.Index()
		m["args"] = nodeList(n.Args())
		m["varargs"] = n.VarArgs()
	case *ast.PropertyAccess:
		m["base"] = nodeMap(n.Base())
		m["key"] = nodeMap(n.Key())
		m["lvalue"] = n.Lvalue()
		m["strict"] = n.Strict()
		m["bracket"] = n.Bracket()
	case *ast.MethodCall:
		m["target"] = nodeMap(n.Target())
		m["args"] = nodeList(n.Args())
	case *ast.Nested:
		m["inner"] = nodeMap(n.Inner())
	case *ast.Boolean:
		m["value"] = n.Value()
	case *ast.String:
		m["value"] = n.Value()
	case *ast.Number:
		m["value"] = n.Value()
	case *ast.Null:
		m["value"] = nil
	}

	return m
}

func nodeList(nodes []ast.Node) []any {
	list := make([]any, len(nodes))
	for i, n := range nodes {
		list[i] = nodeMap(n)
	}

	return list
}

func leafMap(l *simplify.Leaf) map[string]any {
	return map[string]any{
		"operator": l.Operator,
		"left":     sideValue(l.Left),
		"right":    sideValue(l.Right),
	}
}

func sideValue(s simplify.Side) any {
	switch s.Kind() {
	case simplify.Child:
		return leafMap(s.Child())
	case simplify.Literal:
		return s.Literal()
	case simplify.Unsupported:
		return map[string]any{
			"unsupported": ast.Kind(s.Node()),
			"source":      s.Node().String(),
		}
	}

	return nil
}
