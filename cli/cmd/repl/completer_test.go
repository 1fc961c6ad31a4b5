package repl

import (
	"context"
	"slices"
	"testing"

	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/log"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"dot_separated", "bar.baz", 7, "baz", 4, 7},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_eval_start", "${fo", 4, "fo", 2, 4},
		{"after_paren", "f(fo", 4, "fo", 2, 4},
		{"after_comma", "f(a, fo", 7, "fo", 5, 7},
		{"in_choice", "x ? fo", 6, "fo", 4, 6},
		{"after_comparison", "a>=fo", 5, "fo", 3, 5},
		{"after_minus", "a-fo", 4, "fo", 2, 4},
		{"namespaced", "fn:jo", 5, "jo", 3, 5},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"cursor_past_end", "foo", 9, "foo", 0, 3},
		{"empty_after_dot", "person.", 7, "", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestIsMember(t *testing.T) {
	tests := []struct {
		input     string
		wordStart int
		want      bool
	}{
		{"person.na", 7, true},
		{"a.b.c", 4, true},
		{"a + b", 4, false},
		{"name", 0, false},
	}

	for _, tt := range tests {
		if got := isMember(tt.input, tt.wordStart); got != tt.want {
			t.Errorf("isMember(%q, %d) = %v, want %v", tt.input, tt.wordStart, got, tt.want)
		}
	}
}

func TestVocabulary(t *testing.T) {
	tree, err := lang.Parse(context.Background(),
		"${person.name == 'x' && fn:trim(age) > limit && age < 3}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	v := newVocabulary()
	v.add(tree)

	top := v.candidates(false)
	for _, want := range []string{"person", "age", "limit", "fn:trim", "and", "empty"} {
		if !slices.Contains(top, want) {
			t.Errorf("candidates(false) = %v, missing %q", top, want)
		}
	}

	if n := len(slices.Compact(slices.Sorted(slices.Values(top)))); n != len(top) {
		t.Errorf("candidates(false) has duplicates: %v", top)
	}

	if got := v.candidates(true); !slices.Equal(got, []string{"name"}) {
		t.Errorf("candidates(true) = %v, want [name]", got)
	}

	if !v.isFunction("fn:trim") || v.isFunction("age") {
		t.Error("isFunction misclassified names")
	}
}

func TestComputeMatches(t *testing.T) {
	m := newModel(context.Background(), NewHistory(""), log.Logger{})
	m, _ = m.evaluate("${alpha > 1 && beta.gamma == 2}")

	tests := []struct {
		name      string
		mode      inputMode
		input     string
		want      string
		wantStart int
	}{
		{"identifier", modeEval, "${alp", "alpha", 2},
		{"member", modeEval, "${beta.", "gamma", 7},
		{"command", modeCtrl, "fo", "form", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := m.switchToMode(tt.mode)
			m.input.SetValue(tt.input)
			m.input.SetCursor(len(tt.input))

			matches, _, start, _ := m.computeMatches()
			if len(matches) == 0 {
				t.Fatalf("computeMatches(%q) found nothing", tt.input)
			}

			if matches[0].Str != tt.want || start != tt.wantStart {
				t.Errorf("computeMatches(%q) = %q at %d, want %q at %d",
					tt.input, matches[0].Str, start, tt.want, tt.wantStart)
			}
		})
	}
}

func TestComputeMatchesEmptyWord(t *testing.T) {
	m := newModel(context.Background(), NewHistory(""), log.Logger{})
	m.input.SetValue("${a + ")
	m.input.SetCursor(6)

	if matches, _, _, _ := m.computeMatches(); matches != nil {
		t.Errorf("computeMatches() = %v, want none", matches)
	}
}
