package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/pkg"
)

// AST prints the syntax tree of a template.
type AST struct {
	Input `embed:""`

	Format string `default:"tree" enum:"tree,text,json,yaml" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                              help:"Indent width."            short:"i"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) error {
	tree, err := a.parse(ctx)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "ast"))
	}

	w := outputFrom(ctx)

	switch a.Format {
	case "text":
		_, err = fmt.Fprintln(w, tree)
	case "json":
		err = lang.FormatJSON(ctx, w, tree, a.Indent)
	case "yaml":
		err = lang.FormatYAML(ctx, w, tree, a.Indent)
	default:
		err = ast.Print(w, tree.Root, a.Indent)
	}

	return err
}
