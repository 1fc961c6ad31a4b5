package repl

import (
	"bufio"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
)

const baseHistory = "history"

// historyFileMode is the permission mode of the history file.
const historyFileMode fs.FileMode = 0o600

// HistoryEntry represents a single history entry with its mode.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

// String returns the entry as stored on disk: a mode prefix followed by the
// line.
func (e HistoryEntry) String() string { return e.Mode.prefix() + e.Line }

// parseEntry decodes a stored line. Lines without a mode prefix are eval
// entries.
func parseEntry(line string) HistoryEntry {
	for _, mode := range []inputMode{modeEval, modeCtrl} {
		if s, ok := strings.CutPrefix(line, mode.prefix()); ok {
			return HistoryEntry{Line: s, Mode: mode}
		}
	}

	return HistoryEntry{Line: line, Mode: modeEval}
}

// History is the input history of both modes, persisted one entry per line.
type History struct {
	path    string
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory creates a new History backed by the file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load replaces the entries with those read from the history file. A missing
// file is an empty history.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return ErrHistory.Wrap(err).With(slog.String("path", h.path))
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			h.entries = append(h.entries, parseEntry(line))
		}
	}

	if err := scanner.Err(); err != nil {
		return ErrHistory.Wrap(err).With(slog.String("path", h.path))
	}

	return nil
}

// Add appends an entry. An earlier identical entry (same line and mode) is
// moved to the end rather than duplicated.
func (h *History) Add(line string, mode inputMode) error {
	entry := HistoryEntry{Line: strings.TrimSpace(line), Mode: mode}
	if entry.Line == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.Index(h.entries, entry)

	switch {
	case i < 0:
	case i == len(h.entries)-1:
		return nil
	default:
		h.entries = append(slices.Delete(h.entries, i, i+1), entry)

		return h.rewrite()
	}

	h.entries = append(h.entries, entry)

	if h.path == "" {
		return nil
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, historyFileMode)
	if err != nil {
		return ErrHistory.Wrap(err).With(slog.String("path", h.path))
	}
	defer file.Close()

	if _, err := file.WriteString(entry.String() + "\n"); err != nil {
		return ErrHistory.Wrap(err).With(slog.String("path", h.path))
	}

	return nil
}

// Entry returns the entry at index i, where 0 is the oldest.
func (h *History) Entry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds.With(slog.Int("index", i))
	}

	return h.entries[i], nil
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// rewrite replaces the history file with the current entries.
// Must be called with h.mu held.
func (h *History) rewrite() error {
	if h.path == "" {
		return nil
	}

	var b strings.Builder

	for _, entry := range h.entries {
		b.WriteString(entry.String())
		b.WriteByte('\n')
	}

	if err := os.WriteFile(h.path, []byte(b.String()), historyFileMode); err != nil {
		return ErrHistory.Wrap(err).With(slog.String("path", h.path))
	}

	return nil
}
