package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/elcond/cli/cmd"
	"github.com/ardnew/elcond/pkg"
)

// CLI is the top-level command-line interface for elcond.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`
	Parse parseConfig `embed:"" group:"parse"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	AST      cmd.AST      `cmd:"" help:"Print the syntax tree of a template."    name:"ast"`
	Simplify cmd.Simplify `cmd:"" help:"Print the simplified operator tree."     default:"withargs"`
	Form     cmd.Form     `cmd:"" help:"Convert between expressions and condition forms."`
	Repl     cmd.Repl     `cmd:"" help:"Start an interactive session."`
	Init     cmd.Init     `cmd:"" help:"Initialize configuration file."`
}

// Run executes the elcond CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version,
		cmd.ConfigIdentifier: configFilePath + extYAML,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that errors reported while parsing use
	// the requested configuration regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group(), cli.Parse.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+extJSON),
		kong.Configuration(resolve(ctx, baseConfig), configFilePath+extYAML),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOptions(ctx, cli.Parse.options()...)

	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
