package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/elcond/pkg"
)

// baseConfig is the base name of the configuration files and the top-level
// key holding flag values in the YAML file.
const baseConfig = "config"

const (
	extYAML = ".yaml"
	extJSON = ".json"
)

// userDir returns the elcond directory inside the per-user directory
// reported by base. If base fails, hidden is joined onto the home directory
// instead, and as a last resort onto the working directory.
//
// Nothing is created here; the init and repl commands create the directory
// they write to.
func userDir(base func() (string, error), hidden string) string {
	dir, err := base()
	if err != nil || dir == "" {
		root, err := os.UserHomeDir()
		if err != nil {
			root = "."
		}

		dir = filepath.Join(root, hidden)
	}

	return filepath.Join(dir, pkg.Name)
}

var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins elem onto the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}
