package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/elcond/condition"
	"github.com/ardnew/elcond/pkg"
)

// Form converts between expressions and condition forms.
type Form struct {
	Generate Generate `cmd:"" help:"Generate an expression from a JSON or YAML form."`
	Split    Split    `cmd:"" help:"Split an expression into a form by string matching."`
	Tree     Tree     `cmd:"" help:"Extract a form from the parsed expression."`
	Eval     Eval     `cmd:"" help:"Evaluate an expression against variables."`
}

// Encoding selects how forms are written.
type Encoding struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                     help:"Indent width."            short:"i"`
}

func (e *Encoding) write(ctx context.Context, w io.Writer, form condition.Form) error {
	var (
		data []byte
		err  error
	)

	switch e.Format {
	case "yaml":
		data, err = condition.YAML(ctx, form, e.Indent)
	default:
		data, err = condition.JSON(form, e.Indent)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))

	return err
}

// Generate prints the expression for a form.
type Generate struct {
	Input `embed:""`
}

// Run executes the form generate command.
func (g *Generate) Run(ctx context.Context) error {
	data, err := g.read()
	if err != nil {
		return err
	}

	form, err := condition.Decode(ctx, data)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "generate"))
	}

	expr, err := condition.Generate(form)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "generate"))
	}

	_, err = fmt.Fprintln(outputFrom(ctx), expr)

	return err
}

// Split converts an expression to a form without parsing it.
type Split struct {
	Input    `embed:""`
	Encoding `embed:""`
}

// Run executes the form split command.
func (s *Split) Run(ctx context.Context) error {
	data, err := s.read()
	if err != nil {
		return err
	}

	return s.write(ctx, outputFrom(ctx),
		condition.Split(strings.TrimSpace(string(data))))
}

// Tree converts an expression to a form by walking its parse tree.
type Tree struct {
	Input    `embed:""`
	Encoding `embed:""`
}

// Run executes the form tree command.
func (t *Tree) Run(ctx context.Context) error {
	tree, err := t.parse(ctx)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "tree"))
	}

	form, err := condition.FromTree(tree)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "tree"))
	}

	return t.write(ctx, outputFrom(ctx), form)
}

// Eval evaluates an expression. Variables are given as name=value; dotted
// names build nested objects.
type Eval struct {
	Input `embed:""`

	Var   map[string]string `help:"Bind a variable (name=value)."                    short:"v"`
	Split bool              `help:"Read the expression by string matching instead of parsing it."`
}

// Run executes the form eval command.
func (e *Eval) Run(ctx context.Context) error {
	env, err := makeEnv(e.Var)
	if err != nil {
		return err
	}

	var form condition.Form

	if e.Split {
		data, err := e.read()
		if err != nil {
			return err
		}

		form = condition.Split(strings.TrimSpace(string(data)))
	} else {
		tree, err := e.parse(ctx)
		if err != nil {
			return pkg.WrapError(err).With(slog.String("command", "eval"))
		}

		form, err = condition.FromTree(tree)
		if err != nil {
			return pkg.WrapError(err).With(slog.String("command", "eval"))
		}
	}

	ok, err := condition.Eval(ctx, form, env)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "eval"))
	}

	_, err = fmt.Fprintln(outputFrom(ctx), ok)

	return err
}

// makeEnv builds an evaluation environment. A name like "person.age" binds
// field age of object person.
func makeEnv(vars map[string]string) (map[string]any, error) {
	env := make(map[string]any, len(vars))

	// Sorted so conflicts are reported deterministically.
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		path := strings.Split(name, ".")
		if slices.Contains(path, "") {
			return nil, ErrInvalidVar.With(slog.String("name", name))
		}

		scope := env

		for _, key := range path[:len(path)-1] {
			value, exists := scope[key]
			if !exists {
				next := make(map[string]any)
				scope[key] = next
				scope = next

				continue
			}

			// A bound null is a leaf value like any other.
			child, ok := value.(map[string]any)
			if !ok {
				return nil, ErrInvalidVar.With(
					slog.String("name", name),
					slog.String("conflict", key),
				)
			}

			scope = child
		}

		key := path[len(path)-1]
		if _, exists := scope[key]; exists {
			return nil, ErrInvalidVar.With(
				slog.String("name", name),
				slog.String("conflict", key),
			)
		}

		scope[key] = envValue(vars[name])
	}

	return env, nil
}

// envValue types a command-line value: null, booleans, integers and floats
// are converted; quoted text is unquoted; anything else is a string.
func envValue(s string) any {
	switch s {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}

	return s
}
