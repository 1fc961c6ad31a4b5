package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "elcond" {
		t.Errorf("Expected Name to be %q, got %q", "elcond", Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "ardnew"
	}) {
		t.Error("Expected Author to contain ardnew")
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("disk on fire")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NewError("read"), "read"},
		{"message and cause", NewError("read").Wrap(cause), "read: disk on fire"},
		{"cause only", WrapError(cause), "disk on fire"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("outer: %w",
		ErrReadInput.With(slog.String("file", "x")).Wrap(cause))

	if !errors.Is(err, ErrReadInput) {
		t.Error("derived error should match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("derived error should match its cause")
	}

	if errors.Is(err, ErrDecode) {
		t.Error("derived error should not match an unrelated sentinel")
	}
}

func TestErrorWithDoesNotMutate(t *testing.T) {
	base := NewError("base")
	a := base.With(slog.String("k", "a"))
	b := base.With(slog.String("k", "b"))

	if len(base.Attrs()) != 0 {
		t.Fatalf("sentinel gained attributes: %v", base.Attrs())
	}

	if a.Attrs()[0].Value.String() != "a" || b.Attrs()[0].Value.String() != "b" {
		t.Errorf("attributes leaked between copies: %v %v", a.Attrs(), b.Attrs())
	}
}

func TestErrorLogValue(t *testing.T) {
	err := NewError("parse").
		With(slog.Int("position", 4)).
		Wrap(errors.New("bad token"))

	attrs := err.LogValue().Group()

	keys := make([]string, len(attrs))
	for i, a := range attrs {
		keys[i] = a.Key
	}

	want := []string{"error", "cause", "position"}
	if !slices.Equal(keys, want) {
		t.Errorf("LogValue keys = %v, want %v", keys, want)
	}
}
