package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/elcond/cli/cmd/repl"
	"github.com/ardnew/elcond/log"
	"github.com/ardnew/elcond/pkg"
)

// Repl starts an interactive session.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	cacheDir, err := kongVar(ctx, CacheIdentifier)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cacheDir, dirMode); err != nil {
		return pkg.WrapError(err).With(slog.String("dir", cacheDir))
	}

	return repl.Run(ctx, cacheDir, log.Default(), optionsFrom(ctx)...)
}
