package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

type initCLI struct {
	Level   string   `default:"info"`
	Caller  bool     `default:"true"`
	Empty   string   `default:""`
	Tags    []string `default:"a,b"`
	Secret  string   `default:"x" hidden:""`
	Version kong.VersionFlag
}

func TestInitRun(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create"},
		{name: "create_missing_dir", dir: filepath.Join("new", "elcond")},
		{name: "overwrite_with_force", force: true, exists: true},
		{name: "exists_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confPath := filepath.Join(t.TempDir(), tt.dir, "config.yaml")

			if tt.exists {
				if err := os.WriteFile(confPath, []byte("existing"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			var cli initCLI

			parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse(nil)
			if err != nil {
				t.Fatal(err)
			}

			err = (&Init{Force: tt.force}).Run(WithContext(context.Background(), ktx))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Fatalf("Run error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var doc map[string]map[string]any
			if err := yaml.Unmarshal(data, &doc); err != nil {
				t.Fatalf("written config is not YAML: %v\n%s", err, data)
			}

			got := doc[ConfigIdentifier]
			if got["level"] != "info" || got["caller"] != true {
				t.Errorf("config = %v", got)
			}

			if tags, ok := got["tags"].([]any); !ok || len(tags) != 2 {
				t.Errorf("tags = %#v, want two entries", got["tags"])
			}

			for _, omitted := range []string{"empty", "secret", "help", "version"} {
				if _, ok := got[omitted]; ok {
					t.Errorf("config contains %q", omitted)
				}
			}
		})
	}
}

func TestInitNoContext(t *testing.T) {
	if err := (&Init{}).Run(context.Background()); !errors.Is(err, ErrNoContext) {
		t.Errorf("Run error = %v, want ErrNoContext", err)
	}
}
