package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func entries(t *testing.T, h *History) []HistoryEntry {
	t.Helper()

	out := make([]HistoryEntry, h.Len())
	for i := range out {
		e, err := h.Entry(i)
		if err != nil {
			t.Fatalf("Entry(%d): %v", i, err)
		}

		out[i] = e
	}

	return out
}

func TestHistoryPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	for _, e := range []HistoryEntry{
		{"${a > 1}", modeEval},
		{"ast", modeCtrl},
		{"${b}", modeEval},
		{"${b}", modeEval}, // repeated last entry
		{"ast", modeEval},  // same line, other mode
		{"${a > 1}", modeEval},
	} {
		if err := h.Add(e.Line, e.Mode); err != nil {
			t.Fatalf("Add(%q): %v", e.Line, err)
		}
	}

	want := []HistoryEntry{
		{"ast", modeCtrl},
		{"${b}", modeEval},
		{"ast", modeEval},
		{"${a > 1}", modeEval},
	}

	if got := entries(t, h); !slices.Equal(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := entries(t, loaded); !slices.Equal(got, want) {
		t.Errorf("loaded = %v, want %v", got, want)
	}
}

func TestHistoryLoadUnprefixed(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	if err := os.WriteFile(path, []byte("${x}\n\nC:quit\nE:${y}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []HistoryEntry{{"${x}", modeEval}, {"quit", modeCtrl}, {"${y}", modeEval}}
	if got := entries(t, h); !slices.Equal(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
}

func TestHistoryMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))
	if err := h.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}

	if _, err := h.Entry(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Entry(0) error = %v, want ErrOutOfBounds", err)
	}
}

func TestHistoryBlank(t *testing.T) {
	h := NewHistory("")
	if err := h.Add("   ", modeEval); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}
