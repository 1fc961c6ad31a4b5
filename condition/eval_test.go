package condition

import (
	"context"
	"errors"
	"testing"
)

func TestSource(t *testing.T) {
	form := Form{
		{
			node("a", OpEQ, Value("1.50"), ClassNumber, Fixed),
			node("b", OpNE, Value(`say "hi"`), ClassString, Fixed),
		},
		{
			node("c", OpLT, Value("2022-01-01"), ClassDate, Fixed),
			node("d", OpEQ, nil, ClassUnknown, Fixed),
			node("e", OpEQ, Value("obj.f"), ClassUnknown, ObjectParam),
		},
	}

	got, err := Source(form)
	if err != nil {
		t.Fatalf("Source: %v", err)
	}

	want := `(a == 1.5 && b != "say \"hi\"") || ` +
		`((c != nil && c < "2022-01-01") && d == nil && e == obj?.f)`
	if got != want {
		t.Errorf("Source:\n got %s\nwant %s", got, want)
	}

	if got, _ := Source(nil); got != "false" {
		t.Errorf("Source(nil) = %s, want false", got)
	}
}

func TestEval(t *testing.T) {
	form, err := ParseTree(context.Background(), "${(a==1 && b=='x') || (c!=null && d>=obj.min)}")
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}

	tests := []struct {
		name string
		env  map[string]any
		want bool
	}{
		{"first group", map[string]any{"a": 1, "b": "x"}, true},
		{"neither group", map[string]any{"a": 2, "b": "x"}, false},
		{
			"second group",
			map[string]any{"a": 2, "c": "y", "d": 5, "obj": map[string]any{"min": 3}},
			true,
		},
		{
			"second group below minimum",
			map[string]any{"a": 2, "c": "y", "d": 1, "obj": map[string]any{"min": 3}},
			false,
		},
		{"unbound ordering", map[string]any{"a": 2, "c": "y"}, false},
		{"unbound object", map[string]any{"a": 2, "c": "y", "d": 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(context.Background(), form, tt.env)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}

			if got != tt.want {
				t.Errorf("Eval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalSample(t *testing.T) {
	env := map[string]any{
		"string1":       "helloworld",
		"number2":       6,
		"date3":         "2027-12-31",
		"bool4":         true,
		"varhelloworld": "helloworld",
		"varnumber":     -60.001,
		"vardate3":      "2048-01-01",
		"varbool4":      true,
		"objectparam": map[string]any{
			"string_var1": "Narcos Mexico",
			"num_var2":    60,
			"date_var3":   "2027-12-31",
			"bool_var4":   false,
		},
	}

	got, err := Eval(context.Background(), sampleForm(), env)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	// Every group contains both "== null" and "!= null" for its variable.
	if got {
		t.Error("Eval = true, want false")
	}
}

func TestEvalUnknownOperator(t *testing.T) {
	form := Form{{node("a", OpUnknown, Value("1"), ClassNumber, Fixed)}}

	if _, err := Eval(context.Background(), form, nil); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("err = %v, want ErrUnknownOperator", err)
	}
}
