package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/elcond/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the YAML mapping stored under key name.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config.yaml")
//
// Flag names may be spelled with hyphens or underscores:
//
//	config:
//	  log-level: debug
//	  log_format: json
//	  null-properties: true
//
// Command-line flags override config file values. An empty, unreadable or
// malformed file resolves nothing.
func resolve(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.DebugContext(ctx, "ignoring configuration file",
					slog.String("key", name),
					slog.String("error", err.Error()),
				)
			}

			return config{}, nil
		}

		return makeConfig(doc[name]), nil
	}
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// makeConfig converts decoded YAML scalars into values kong can map.
// Kong requires numbers as strings for parsing.
func makeConfig(m map[string]any) config {
	c := make(config, len(m))

	for key, value := range m {
		c[key] = scalar(value)
	}

	return c
}

func scalar(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = scalar(elem)
		}

		return out
	default:
		return value
	}
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
