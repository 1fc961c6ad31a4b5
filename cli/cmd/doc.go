// Package cmd implements the elcond subcommands.
//
// Commands read their input from the SOURCE arguments (default "-", stdin)
// or from --expr, parse it with the options stored by [WithOptions], and
// write to the writer stored by [WithOutput].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)

// dirMode is the permission mode of directories created for the
// configuration file and the REPL history.
const dirMode = 0o700
