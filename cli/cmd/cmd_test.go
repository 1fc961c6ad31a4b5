package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/lang/parser"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func readAll(t *testing.T, in *Input) string {
	t.Helper()

	data, err := in.read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	return string(data)
}

func TestInputExpr(t *testing.T) {
	in := Input{Expr: "${a}", Source: []string{"/does/not/exist"}}
	if got := readAll(t, &in); got != "${a}" {
		t.Errorf("read = %q, want %q", got, "${a}")
	}
}

func TestInputSources(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"first.el":  "${a}",
		"second.el": " and ${b}",
	})

	first := filepath.Join(dir, "first.el")
	second := filepath.Join(dir, "second.el")

	link := filepath.Join(dir, "link.el")
	if err := os.Symlink(first, link); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(wd, first)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{"single", []string{first}, "${a}"},
		{"ordered", []string{first, second}, "${a} and ${b}"},
		{"duplicate_path", []string{first, first, second}, "${a} and ${b}"},
		{"relative_absolute", []string{rel, first}, "${a}"},
		{"symlink", []string{link, first}, "${a}"},
		{"missing_skipped", []string{filepath.Join(dir, "nope"), second}, " and ${b}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{Source: tt.sources}
			if got := readAll(t, &in); got != tt.want {
				t.Errorf("read = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputNoSource(t *testing.T) {
	dir := t.TempDir()

	for _, sources := range [][]string{nil, {filepath.Join(dir, "nope")}, {dir}} {
		in := Input{Source: sources}
		if _, err := in.read(); !errors.Is(err, ErrNoSource) {
			t.Errorf("read(%v) error = %v, want ErrNoSource", sources, err)
		}
	}
}

func TestSourceFilesClose(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.el": "x"})

	src := buildSourceFiles([]string{filepath.Join(dir, "a.el")})
	if src == nil {
		t.Fatal("buildSourceFiles returned nil")
	}

	if _, err := io.ReadAll(src); err != nil {
		t.Fatal(err)
	}

	if err := src.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := src.files[0].Stat(); err == nil {
		t.Error("file still open after Close")
	}
}

func TestInputParseOptions(t *testing.T) {
	in := Input{Expr: "${a.b(c)}"}

	if _, err := in.parse(context.Background()); !errors.Is(err, parser.ErrParse) {
		t.Fatalf("parse without methods: %v, want ErrParse", err)
	}

	ctx := WithOptions(context.Background(), lang.WithMethodInvocations(true))
	if _, err := in.parse(ctx); err != nil {
		t.Fatalf("parse with methods: %v", err)
	}
}
