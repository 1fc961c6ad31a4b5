package simplify

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/parser"
)

func simplify(t *testing.T, src string) *Leaf {
	t.Helper()

	tree, err := parser.Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}

	leaf, err := Tree(tree)
	if err != nil {
		t.Fatalf("simplify %q: %v", src, err)
	}

	return leaf
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "conjunction",
			input: "${a>1 && a==6 && b=='x'}",
			want:  "(((a > 1) && (a == 6)) && (b == 'x'))",
		},
		{
			name:  "disjunction of groups",
			input: "${(a==1 && b!=2) || (c<=3)}",
			want:  "(((a == 1) && (b != 2)) || (c <= 3))",
		},
		{
			name:  "null",
			input: "${a != null}",
			want:  "(a != null)",
		},
		{
			name:  "numbers",
			input: "${n > 1.00100 && n == 6.00 && n >= -10.00010000}",
			want:  "(((n > 1.001) && (n == 6)) && (n >= -10.0001))",
		},
		{
			name:  "booleans",
			input: "${a == true || b == false}",
			want:  "((a == true) || (b == false))",
		},
		{
			name:  "object parameter",
			input: "${a == person.name}",
			want:  "(a == #person.name)",
		},
		{
			name:  "arithmetic",
			input: "${a + 2 * b}",
			want:  "(a + (2 * b))",
		},
		{
			name:  "nested root",
			input: "${((a < b))}",
			want:  "(a < b)",
		},
		{
			name:  "quoted string",
			input: `${a == 'it\'s'}`,
			want:  `(a == 'it\'s')`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := simplify(t, tt.input).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSides(t *testing.T) {
	leaf := simplify(t, "${a == null && 'x' == b}")

	left := leaf.Left.Child()
	if leaf.Left.Kind() != Child || left == nil {
		t.Fatalf("left kind = %s, want child", leaf.Left.Kind())
	}

	if left.Left.Kind() != Literal || left.Left.Literal() != "a" {
		t.Errorf("left.left = %s %q", left.Left.Kind(), left.Left.Literal())
	}

	if left.Right.Kind() != Absent {
		t.Errorf("left.right kind = %s, want absent", left.Right.Kind())
	}

	right := leaf.Right.Child()
	if right.Left.Literal() != "'x'" || right.Right.Literal() != "b" {
		t.Errorf("right = %s", right)
	}
}

func TestUnsupported(t *testing.T) {
	leaf := simplify(t, "${f(a) == 1 && a[0] == !b}")

	want := "((<unsupported FunctionCall> == 1) && (<unsupported PropertyAccess> == <unsupported Unary>))"

	if got := leaf.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	var kinds []string
	for n := range leaf.Unsupported() {
		kinds = append(kinds, ast.Kind(n))
	}

	if !slices.Equal(kinds, []string{"FunctionCall", "PropertyAccess", "Unary"}) {
		t.Errorf("unsupported = %v", kinds)
	}

	if _, err := Strict(leaf); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Strict: err = %v, want ErrUnsupportedOperand", err)
	}

	if _, err := Strict(simplify(t, "${a == 1}")); err != nil {
		t.Errorf("Strict: %v", err)
	}
}

func TestNotBinary(t *testing.T) {
	for _, src := range []string{"plain text", "${a}", "${!a}", "x ${a == 1}"} {
		t.Run(src, func(t *testing.T) {
			tree, err := parser.Parse(context.Background(), src)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			if _, err := Tree(tree); !errors.Is(err, ErrNotBinary) {
				t.Errorf("err = %v, want ErrNotBinary", err)
			}
		})
	}
}

func TestCanonicalNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"6", "6", true},
		{"6.000", "6", true},
		{"6.0", "6", true},
		{"1.00100", "1.001", true},
		{"-10.00010000", "-10.0001", true},
		{"7.001", "7.001", true},
		{"0.50", "0.5", true},
		{".5", "0.5", true},
		{"5.", "5", true},
		{"-0.0", "0", true},
		{"007", "7", true},
		{"+3", "3", true},
		{"1.5e3", "1500", true},
		{"abc", "abc", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalNumber(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CanonicalNumber(%q) = %q, %v, want %q, %v",
					tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
