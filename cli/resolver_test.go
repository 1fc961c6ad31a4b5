package cli

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func flagNamed(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolve(t *testing.T) {
	const doc = `
other:
  log-level: error
config:
  log-level: debug
  log_format: json
  null-properties: true
  depth: 3
  ratio: 0.25
  tags: [a, 2]
`

	r, err := resolve(context.Background(), baseConfig)(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "json"},
		{"null-properties", true},
		{"depth", "3"},
		{"ratio", "0.25"},
		{"tags", []any{"a", "2"}},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := r.Resolve(nil, nil, flagNamed(tt.flag))
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResolveEmpty(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":     "",
		"malformed": "config: [unterminated",
		"no_key":    "other:\n  log-level: debug\n",
		"not_a_map": "- a\n- b\n",
	} {
		t.Run(name, func(t *testing.T) {
			r, err := resolve(context.Background(), baseConfig)(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}

			got, err := r.Resolve(nil, nil, flagNamed("log-level"))
			if err != nil || got != nil {
				t.Errorf("Resolve = %v, %v; want nil, nil", got, err)
			}
		})
	}
}

func TestResolveKong(t *testing.T) {
	var cli struct {
		Parse parseConfig `embed:""`
		Depth int         `default:"1"`
	}

	doc := "config:\n  methods: true\n  varargs: true\n  depth: 7\n"

	r, err := resolve(context.Background(), baseConfig)(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(r))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"--no-methods"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cli.Parse.Methods || !cli.Parse.VarArgs || cli.Depth != 7 {
		t.Errorf("cli = %+v, want methods=false varargs=true depth=7", cli)
	}
}
