// Package token defines the lexical tokens of the expression language and
// the pull-based stream contract the parser consumes.
package token

import "strconv"

// Kind is the lexical category of a token.
type Kind int

const (
	EOF Kind = iota
	TEXT
	START_EVAL_DYNAMIC
	START_EVAL_DEFERRED
	END_EVAL

	IDENTIFIER
	STRING
	INTEGER
	FLOAT
	TRUE
	FALSE
	NULL

	EMPTY
	NOT
	AND
	OR
	EQ
	NE
	LT
	LE
	GT
	GE
	PLUS
	MINUS
	MUL
	DIV
	MOD
	QUESTION
	COLON
	DOT
	COMMA
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	INSTANCEOF

	// EXTENSION is a token registered by a parser extension. Its meaning is
	// carried entirely by its image.
	EXTENSION
)

var kindNames = [...]string{
	EOF:                 "<EOF>",
	TEXT:                "<TEXT>",
	START_EVAL_DYNAMIC:  "'${'",
	START_EVAL_DEFERRED: "'#{'",
	END_EVAL:            "'}'",
	IDENTIFIER:          "<IDENTIFIER>",
	STRING:              "<STRING>",
	INTEGER:             "<INTEGER>",
	FLOAT:               "<FLOAT>",
	TRUE:                "true",
	FALSE:               "false",
	NULL:                "null",
	EMPTY:               "empty",
	NOT:                 "'!'",
	AND:                 "'&&'",
	OR:                  "'||'",
	EQ:                  "'=='",
	NE:                  "'!='",
	LT:                  "'<'",
	LE:                  "'<='",
	GT:                  "'>'",
	GE:                  "'>='",
	PLUS:                "'+'",
	MINUS:               "'-'",
	MUL:                 "'*'",
	DIV:                 "'/'",
	MOD:                 "'%'",
	QUESTION:            "'?'",
	COLON:               "':'",
	DOT:                 "'.'",
	COMMA:               "','",
	LPAREN:              "'('",
	RPAREN:              "')'",
	LBRACK:              "'['",
	RBRACK:              "']'",
	INSTANCEOF:          "instanceof",
	EXTENSION:           "<EXTENSION>",
}

// String returns the description of k used in "expected" diagnostics.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Keywords maps reserved words to their token kinds. Operator keywords
// (and, eq, div, ...) produce the same kinds as their symbolic spellings.
var Keywords = map[string]Kind{
	"null":       NULL,
	"true":       TRUE,
	"false":      FALSE,
	"empty":      EMPTY,
	"div":        DIV,
	"mod":        MOD,
	"not":        NOT,
	"and":        AND,
	"or":         OR,
	"le":         LE,
	"lt":         LT,
	"eq":         EQ,
	"ne":         NE,
	"ge":         GE,
	"gt":         GT,
	"instanceof": INSTANCEOF,
}

// Token is a single lexeme.
type Token struct {
	Kind  Kind
	Image string // source text, or the unescaped value for STRING
	Pos   int    // byte offset of the first character
}

// String returns the token image as it appears in diagnostics.
func (t Token) String() string {
	if t.Kind == EOF {
		return EOF.String()
	}

	return "'" + t.Image + "'"
}

// Stream is a pull-based source of tokens terminated by an EOF token.
// After EOF, Next keeps returning EOF.
type Stream interface {
	// Next returns the next token, or an error if the input is malformed.
	Next() (Token, error)
	// Position returns the offset of the token most recently returned by
	// Next.
	Position() int
}
