package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/elcond/log"
	"github.com/ardnew/elcond/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// configFileMode is the permission mode of a written configuration file.
const configFileMode os.FileMode = 0o600

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	confPath, err := kongVar(ctx, ConfigIdentifier)
	if err != nil {
		return err
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx,
		map[string]any{ConfigIdentifier: i.flagValues(ctx)},
		yaml.Indent(defaultConfigIndent),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	err = os.MkdirAll(filepath.Dir(confPath), dirMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("dir", filepath.Dir(confPath))).
			Wrap(err)
	}

	err = os.WriteFile(confPath, data, configFileMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// flagValues returns the current value of every persistable flag, keyed by
// flag name. Empty values are omitted.
func (i *Init) flagValues(ctx context.Context) map[string]any {
	ktx := kongContextFrom(ctx)
	values := make(map[string]any)

	prefixIgnore := []string{"help", "version", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v := flagValue(ktx, flag); v != nil {
			values[flag.Name] = v
		}
	}

	return values
}

// flagValue returns the value of flag, or nil if it is empty.
func flagValue(ktx *kong.Context, flag *kong.Flag) any {
	switch v := ktx.FlagValue(flag).(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}

		return v
	case []string:
		if len(v) == 0 {
			return nil
		}

		return v
	case map[string]string:
		if len(v) == 0 {
			return nil
		}

		return v
	default:
		return v
	}
}
