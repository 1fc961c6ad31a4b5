// Package scanner splits a template into tokens.
//
// Outside of an evaluable segment the scanner emits TEXT tokens. A "${" or
// "#{" delimiter switches it into expression mode until the matching "}".
package scanner

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/elcond/lang/token"
)

// Scanner implements [token.Stream] over an in-memory template.
type Scanner struct {
	input string
	pos   int // next unread byte
	start int // offset of the last token returned
	eval  bool

	symbols []string            // symbolic extension images, longest first
	words   map[string]struct{} // identifier-like extension images
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtensions registers token images that are reported as
// [token.EXTENSION] inside expressions. Images that look like identifiers
// take precedence over keywords; other images are matched before the
// built-in operators, longest first.
func WithExtensions(images ...string) Option {
	return func(s *Scanner) {
		for _, image := range images {
			if image == "" {
				continue
			}

			if isIdentifier(image) {
				s.words[image] = struct{}{}
			} else if !slices.Contains(s.symbols, image) {
				s.symbols = append(s.symbols, image)
			}
		}

		slices.SortStableFunc(s.symbols, func(a, b string) int {
			return cmp.Compare(len(b), len(a))
		})
	}
}

// New returns a Scanner reading input from the beginning in text mode.
func New(input string, opts ...Option) *Scanner {
	s := &Scanner{
		input: input,
		words: map[string]struct{}{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Position returns the offset of the most recently returned token.
func (s *Scanner) Position() int { return s.start }

// Next returns the next token.
func (s *Scanner) Next() (token.Token, error) {
	if s.eval {
		return s.nextEval()
	}

	return s.nextText(), nil
}

func (s *Scanner) emit(kind token.Kind, image string) token.Token {
	return token.Token{Kind: kind, Image: image, Pos: s.start}
}

func (s *Scanner) nextText() token.Token {
	s.start = s.pos

	if s.pos >= len(s.input) {
		return s.emit(token.EOF, "")
	}

	if kind, ok := startDelimiter(s.input[s.pos:]); ok {
		s.pos += 2
		s.eval = true

		return s.emit(kind, s.input[s.start:s.pos])
	}

	var sb strings.Builder

	for s.pos < len(s.input) {
		rest := s.input[s.pos:]

		if _, ok := startDelimiter(rest); ok {
			break
		}

		// An escaped delimiter is literal text without the backslash.
		if rest[0] == '\\' {
			if _, ok := startDelimiter(rest[1:]); ok {
				sb.WriteString(rest[1:3])
				s.pos += 3

				continue
			}
		}

		sb.WriteByte(rest[0])
		s.pos++
	}

	return s.emit(token.TEXT, sb.String())
}

func startDelimiter(s string) (token.Kind, bool) {
	switch {
	case strings.HasPrefix(s, "${"):
		return token.START_EVAL_DYNAMIC, true
	case strings.HasPrefix(s, "#{"):
		return token.START_EVAL_DEFERRED, true
	}

	return token.EOF, false
}

// twoCharOps must be tried before their one-character prefixes.
var twoCharOps = map[string]token.Kind{
	"==": token.EQ,
	"!=": token.NE,
	"<=": token.LE,
	">=": token.GE,
	"&&": token.AND,
	"||": token.OR,
}

var oneCharOps = map[byte]token.Kind{
	'<': token.LT,
	'>': token.GT,
	'!': token.NOT,
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.MUL,
	'/': token.DIV,
	'%': token.MOD,
	'?': token.QUESTION,
	':': token.COLON,
	'.': token.DOT,
	',': token.COMMA,
	'(': token.LPAREN,
	')': token.RPAREN,
	'[': token.LBRACK,
	']': token.RBRACK,
}

func (s *Scanner) nextEval() (token.Token, error) {
	for s.pos < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !unicode.IsSpace(r) {
			break
		}

		s.pos += size
	}

	s.start = s.pos

	if s.pos >= len(s.input) {
		return s.emit(token.EOF, ""), nil
	}

	rest := s.input[s.pos:]

	if rest[0] == '}' {
		s.pos++
		s.eval = false

		return s.emit(token.END_EVAL, "}"), nil
	}

	for _, sym := range s.symbols {
		if strings.HasPrefix(rest, sym) {
			s.pos += len(sym)

			return s.emit(token.EXTENSION, sym), nil
		}
	}

	r, _ := utf8.DecodeRuneInString(rest)

	switch {
	case isIdentStart(r):
		return s.identifier(), nil

	case isDigit(rest[0]), rest[0] == '.' && len(rest) > 1 && isDigit(rest[1]):
		return s.number(), nil

	case rest[0] == '\'' || rest[0] == '"':
		return s.quoted()
	}

	if len(rest) >= 2 {
		if kind, ok := twoCharOps[rest[:2]]; ok {
			s.pos += 2

			return s.emit(kind, rest[:2]), nil
		}
	}

	if kind, ok := oneCharOps[rest[0]]; ok {
		s.pos++

		return s.emit(kind, rest[:1]), nil
	}

	return token.Token{}, s.fail("unexpected character", string(r))
}

func (s *Scanner) identifier() token.Token {
	for s.pos < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !isIdentPart(r) {
			break
		}

		s.pos += size
	}

	image := s.input[s.start:s.pos]

	if _, ok := s.words[image]; ok {
		return s.emit(token.EXTENSION, image)
	}

	if kind, ok := token.Keywords[image]; ok {
		return s.emit(kind, image)
	}

	return s.emit(token.IDENTIFIER, image)
}

func (s *Scanner) number() token.Token {
	kind := token.INTEGER

	s.digits()

	if s.pos < len(s.input) && s.input[s.pos] == '.' {
		kind = token.FLOAT
		s.pos++
		s.digits()
	}

	if s.pos < len(s.input) && (s.input[s.pos] == 'e' || s.input[s.pos] == 'E') {
		i := s.pos + 1
		if i < len(s.input) && (s.input[i] == '+' || s.input[i] == '-') {
			i++
		}

		if i < len(s.input) && isDigit(s.input[i]) {
			kind = token.FLOAT
			s.pos = i
			s.digits()
		}
	}

	return s.emit(kind, s.input[s.start:s.pos])
}

func (s *Scanner) digits() {
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) quoted() (token.Token, error) {
	quote := s.input[s.pos]
	s.pos++

	var sb strings.Builder

	for s.pos < len(s.input) {
		c := s.input[s.pos]

		switch {
		case c == quote:
			s.pos++

			return s.emit(token.STRING, sb.String()), nil

		case c == '\\' && s.pos+1 < len(s.input):
			next := s.input[s.pos+1]
			if next != '\\' && next != '\'' && next != '"' {
				s.pos++

				return token.Token{}, s.fail("invalid escape sequence", s.input[s.pos-1:s.pos+1])
			}

			sb.WriteByte(next)
			s.pos += 2

		default:
			sb.WriteByte(c)
			s.pos++
		}
	}

	return token.Token{}, s.fail("unterminated string", s.input[s.start:])
}

func (s *Scanner) fail(msg, encountered string) *Error {
	return &Error{Position: s.start, Message: msg, Encountered: encountered}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 && !isIdentStart(r) || !isIdentPart(r) {
			return false
		}
	}

	return s != ""
}
