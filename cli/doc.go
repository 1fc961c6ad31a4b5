// Package cli contains the command line interface for elcond.
//
// # Usage
//
//	elcond [flags] <command> [args]
//
// Commands read a template from the --expr flag or from the named source
// files, where "-" (the default) reads standard input:
//
//	elcond ast -o json -e '${a > 1 && b == "x"}'
//	elcond simplify --strict rules.el
//	elcond form tree -o yaml -e '${a > 1 && b == "x"}'
//	elcond form generate < condition.json
//	elcond form split -e '${a > 1 || b == "x"}'
//	elcond form eval -v a=2 -v b=x -e '${a > 1 && b == "x"}'
//	elcond repl
//
// # Parser Options
//
//   - --methods: Accept method invocations such as a.b(c)
//   - --null-properties: Treat bracket property access as non-strict
//   - --varargs: Accept variable-length function argument lists
//
// # Configuration
//
// Flag defaults are read from config.yaml (under the "config" key) and
// config.json in the user configuration directory. Command-line flags
// override both. The init command writes the current flag values:
//
//	elcond --log-level=debug --methods init
//
// # Logging Options
//
//   - --log-level: Set minimum log level
//   - --log-format: Set log output format
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output (default; --no-log-pretty disables)
//
// Logging flags are applied before the remaining arguments are parsed, so
// they take effect for parse errors as well.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o elcond .
//
// The --pprof-mode flag selects the profile kind and --pprof-dir sets the
// output directory, which defaults to a directory in the user cache.
package cli
