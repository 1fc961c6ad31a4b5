package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/lang/simplify"
	"github.com/ardnew/elcond/pkg"
)

// Simplify prints the operator tree of a single binary expression.
type Simplify struct {
	Input `embed:""`

	Format string `default:"text" enum:"text,json,yaml" help:"Output format (${enum})."                      short:"o"`
	Indent int    `default:"2"                         help:"Indent width for json and yaml."                short:"i"`
	Strict bool   `                                    help:"Fail if any operand has no simplified form."`
}

// Run executes the simplify command.
func (s *Simplify) Run(ctx context.Context) error {
	tree, err := s.parse(ctx)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "simplify"))
	}

	leaf, err := simplify.Tree(tree)
	if err == nil && s.Strict {
		leaf, err = simplify.Strict(leaf)
	}

	if err != nil {
		return pkg.WrapError(err).With(
			slog.String("command", "simplify"),
			slog.String("source", tree.String()),
		)
	}

	w := outputFrom(ctx)

	switch s.Format {
	case "json":
		err = lang.FormatJSON(ctx, w, leaf, s.Indent)
	case "yaml":
		err = lang.FormatYAML(ctx, w, leaf, s.Indent)
	default:
		_, err = fmt.Fprintln(w, leaf)
	}

	return err
}
