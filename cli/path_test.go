package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestUserDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		base func() (string, error)
		want string
	}{
		{
			name: "base",
			base: func() (string, error) { return "/xdg", nil },
			want: filepath.Join("/xdg", "elcond"),
		},
		{
			name: "fallback",
			base: func() (string, error) { return "", errors.New("unset") },
			want: filepath.Join(home, ".local", "elcond"),
		},
		{
			name: "empty",
			base: func() (string, error) { return "", nil },
			want: filepath.Join(home, ".local", "elcond"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userDir(tt.base, ".local"); got != tt.want {
				t.Errorf("userDir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	got := configPath(baseConfig + extYAML)

	if filepath.Base(got) != "config.yaml" ||
		filepath.Base(filepath.Dir(got)) != "elcond" {
		t.Errorf("configPath = %q, want .../elcond/config.yaml", got)
	}

	if configPath() != configDir() {
		t.Errorf("configPath() = %q, want %q", configPath(), configDir())
	}
}
