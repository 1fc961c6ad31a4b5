package repl

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/lang/token"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "ast", "form", "edit", "clear", "quit"}

// keywords are the reserved words offered as eval-mode completions.
var keywords = slices.Sorted(maps.Keys(token.Keywords))

// vocabulary collects the names seen in earlier inputs.
type vocabulary struct {
	names map[string]struct{} // identifiers
	funcs map[string]struct{} // function names, including "ns:name"
	props map[string]struct{} // property names following a dot
}

func newVocabulary() *vocabulary {
	return &vocabulary{
		names: make(map[string]struct{}),
		funcs: make(map[string]struct{}),
		props: make(map[string]struct{}),
	}
}

// add records every identifier, function and dotted property of tree.
func (v *vocabulary) add(tree *parser.Tree) {
	for _, id := range tree.Identifiers {
		v.names[id.Name()] = struct{}{}
	}

	for _, fn := range tree.Functions {
		v.funcs[fn.Name()] = struct{}{}
	}

	ast.Inspect(tree.Root, func(n ast.Node) bool {
		if p, ok := n.(*ast.PropertyAccess); ok && !p.Bracket() {
			v.props[p.Name()] = struct{}{}
		}

		return true
	})
}

// candidates returns the completions for a word. Words following a dot
// complete against property names; all others against identifiers,
// functions and keywords.
func (v *vocabulary) candidates(member bool) []string {
	if member {
		return slices.Sorted(maps.Keys(v.props))
	}

	seen := make(map[string]bool)

	return slices.DeleteFunc(
		slices.Concat(
			slices.Sorted(maps.Keys(v.names)),
			slices.Sorted(maps.Keys(v.funcs)),
			keywords,
		),
		func(name string) bool {
			dup := seen[name]
			seen[name] = true

			return dup
		},
	)
}

func (v *vocabulary) isFunction(name string) bool {
	_, ok := v.funcs[name]

	return ok
}

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes: whitespace, the member-access dot, and operator or punctuation
// characters of the expression language.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t', '\n',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':',
		'\'', '"':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Returns an empty word when the cursor sits on a
// boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// isMember reports whether the word starting at wordStart follows a dot.
func isMember(input string, wordStart int) bool {
	return strings.HasSuffix(input[:wordStart], ".")
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor, ranked best-first. An empty word yields no matches, except after a
// dot where every known property is offered.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())

	if m.mode == modeCtrl {
		candidates = ctrlCommands
	} else {
		member := isMember(input, wordStart)
		candidates = m.vocab.candidates(member)

		if word == "" && member {
			matches = make(fuzzy.Matches, len(candidates))
			for i, c := range candidates {
				matches[i] = fuzzy.Match{Str: c, Index: i}
			}

			return matches, candidates, wordStart, wordEnd
		}
	}

	if word == "" || len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width.
func (m model) renderCandidateBar() string {
	if len(m.matches) == 0 || m.width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range m.matches {
		rendered := m.renderCandidate(match, m.tabActive && i == m.suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > m.width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted. Functions are displayed with a "()" suffix.
func (m model) renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle, highlight := suggestionStyle, highlightStyle
	if selected {
		baseStyle, highlight = selectedStyle, selectedHighlightStyle
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	if m.mode == modeEval && m.vocab.isFunction(match.Str) {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}
