// Package parser builds an [ast.Node] tree from a token stream.
//
// The expression grammar is parsed by precedence climbing, from the
// conditional operator down to primary values:
//
//	expr    := or ('?' expr ':' expr)?
//	or      := and ('||' and)*
//	and     := eq ('&&' eq)*
//	eq      := cmp (('==' | '!=') cmp)*
//	cmp     := add (('<' | '<=' | '>' | '>=') add)*
//	add     := mul (('+' | '-') mul)*
//	mul     := unary (('*' | '/' | '%') unary)*
//	unary   := ('!' | '-' | 'empty') unary | value
//	value   := (nonliteral | literal) ('.' IDENTIFIER | '[' expr ']')*
//
// Each binary level and the unary and literal rules also accept extension
// tokens registered at the matching [HookPoint].
//
// A template interleaves literal text with "${...}" or "#{...}" segments:
//
//	tree := text? ((dynamic text?)+ | (deferred text?)+)?
package parser

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/scanner"
	"github.com/ardnew/elcond/lang/token"
	"github.com/ardnew/elcond/log"
)

// Tree is the result of a successful parse.
type Tree struct {
	Root ast.Node

	// Identifiers and Functions list every occurrence in the order the
	// parser consumed them. Entry i has Index() == i. Repeated names get
	// their own entries.
	Identifiers []*ast.Identifier
	Functions   []*ast.FunctionCall

	// Deferred reports whether the template's segments use "#{".
	Deferred bool
}

// String renders the tree back to template syntax.
func (t *Tree) String() string { return t.Root.String() }

// Parser parses a single template. It is not safe for concurrent use and
// cannot be reused.
type Parser struct {
	stream    token.Stream
	tok       token.Token
	pos       int
	lookahead []lookaheadToken

	identifiers []*ast.Identifier
	functions   []*ast.FunctionCall

	methods        bool
	nullProperties bool
	varArgs        bool
	ext            *Extensions
	logger         log.Logger

	used bool
}

type lookaheadToken struct {
	tok token.Token
	pos int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMethodInvocations enables "a.b(args)" method call syntax.
func WithMethodInvocations(enable bool) Option {
	return func(p *Parser) { p.methods = enable }
}

// WithNullProperties makes bracket property access non-strict.
func WithNullProperties(enable bool) Option {
	return func(p *Parser) { p.nullProperties = enable }
}

// WithVarArgs marks function calls as accepting variable arguments.
func WithVarArgs(enable bool) Option {
	return func(p *Parser) { p.varArgs = enable }
}

// WithExtensions sets the extension table consulted at each hook point.
func WithExtensions(ext *Extensions) Option {
	return func(p *Parser) { p.ext = ext }
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// New returns a Parser reading from stream.
func New(stream token.Stream, opts ...Option) *Parser {
	p := &Parser{
		stream:      stream,
		lookahead:   make([]lookaheadToken, 0, 2),
		identifiers: make([]*ast.Identifier, 0),
		functions:   make([]*ast.FunctionCall, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse scans and parses src. Extension images are registered with the
// scanner automatically.
func Parse(ctx context.Context, src string, opts ...Option) (*Tree, error) {
	p := New(nil, opts...)
	p.stream = scanner.New(src, scanner.WithExtensions(p.ext.Images()...))

	return p.Parse(ctx)
}

// Parse consumes the whole stream and returns the parse tree.
func (p *Parser) Parse(ctx context.Context) (*Tree, error) {
	if p.used {
		return nil, ErrParserUsed
	}

	p.used = true

	tree, err := p.tree()
	if err != nil {
		p.logger.TraceContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.String("root", ast.Kind(tree.Root)),
		slog.Int("identifiers", len(tree.Identifiers)),
		slog.Int("functions", len(tree.Functions)),
		slog.Bool("deferred", tree.Deferred),
	)

	return tree, nil
}

// consume advances to the next token and returns the one that was current.
// Buffered lookahead tokens are used first, in order.
func (p *Parser) consume() (token.Token, error) {
	prev := p.tok

	if len(p.lookahead) > 0 {
		next := p.lookahead[0]
		p.lookahead = p.lookahead[1:]
		p.tok, p.pos = next.tok, next.pos

		return prev, nil
	}

	tok, err := p.stream.Next()
	if err != nil {
		return prev, err
	}

	p.tok, p.pos = tok, p.stream.Position()

	return prev, nil
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.tok.Kind != kind {
		return p.tok, p.fail(kind.String())
	}

	return p.consume()
}

// peek returns the i'th token after the current one without consuming.
func (p *Parser) peek(i int) (token.Token, error) {
	for i >= len(p.lookahead) {
		tok, err := p.stream.Next()
		if err != nil {
			return tok, err
		}

		p.lookahead = append(p.lookahead, lookaheadToken{tok: tok, pos: p.stream.Position()})
	}

	return p.lookahead[i].tok, nil
}

func (p *Parser) fail(expected string) error {
	return &ParseError{
		Position:    p.pos,
		Encountered: p.tok.String(),
		Expected:    expected,
	}
}

// exprFirst lists the tokens that can start an expression.
var exprFirst = strings.Join([]string{
	token.IDENTIFIER.String(),
	token.STRING.String(),
	token.FLOAT.String(),
	token.INTEGER.String(),
	token.TRUE.String(),
	token.FALSE.String(),
	token.NULL.String(),
	token.MINUS.String(),
	token.NOT.String(),
	token.EMPTY.String(),
	token.LPAREN.String(),
}, "|")

func (p *Parser) tree() (*Tree, error) {
	if _, err := p.consume(); err != nil {
		return nil, err
	}

	t, err := p.text()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind == token.EOF {
		if t == nil {
			t = ast.NewText("")
		}

		return p.result(t, false), nil
	}

	first, err := p.eval()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind == token.EOF && t == nil {
		return p.result(first, first.Deferred()), nil
	}

	nodes := make([]ast.Node, 0, 3)
	if t != nil {
		nodes = append(nodes, t)
	}

	nodes = append(nodes, first)

	for {
		if t, err = p.text(); err != nil {
			return nil, err
		} else if t != nil {
			nodes = append(nodes, t)
		}

		if p.tok.Kind == token.EOF {
			break
		}

		e, err := p.evalMode(first.Deferred())
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, e)
	}

	return p.result(ast.NewComposite(nodes...), first.Deferred()), nil
}

func (p *Parser) result(root ast.Node, deferred bool) *Tree {
	return &Tree{
		Root:        root,
		Identifiers: p.identifiers,
		Functions:   p.functions,
		Deferred:    deferred,
	}
}

func (p *Parser) text() (ast.Node, error) {
	if p.tok.Kind != token.TEXT {
		return nil, nil
	}

	tok, err := p.consume()
	if err != nil {
		return nil, err
	}

	return ast.NewText(tok.Image), nil
}

// eval parses the first segment of a template, which may use either mode.
func (p *Parser) eval() (*ast.Eval, error) {
	switch p.tok.Kind {
	case token.START_EVAL_DYNAMIC:
		return p.evalMode(false)
	case token.START_EVAL_DEFERRED:
		return p.evalMode(true)
	}

	return nil, p.fail(token.START_EVAL_DEFERRED.String() + "|" + token.START_EVAL_DYNAMIC.String())
}

// evalMode parses a segment that must open with the delimiter of the given
// mode.
func (p *Parser) evalMode(deferred bool) (*ast.Eval, error) {
	start := token.START_EVAL_DYNAMIC
	if deferred {
		start = token.START_EVAL_DEFERRED
	}

	if _, err := p.expect(start); err != nil {
		return nil, err
	}

	v, err := p.expr(true)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.END_EVAL); err != nil {
		return nil, err
	}

	return ast.NewEval(v, deferred), nil
}

func (p *Parser) expr(required bool) (ast.Node, error) {
	v, err := p.binary(0, required)
	if err != nil || v == nil {
		return v, err
	}

	if p.tok.Kind != token.QUESTION {
		return v, nil
	}

	if _, err := p.consume(); err != nil {
		return nil, err
	}

	yes, err := p.expr(true)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}

	no, err := p.expr(true)
	if err != nil {
		return nil, err
	}

	return ast.NewChoice(v, yes, no), nil
}

// levels lists the left-associative binary operator levels from lowest to
// highest precedence.
var levels = []struct {
	hook HookPoint
	ops  map[token.Kind]ast.BinaryOp
}{
	{HookOr, map[token.Kind]ast.BinaryOp{token.OR: ast.OR}},
	{HookAnd, map[token.Kind]ast.BinaryOp{token.AND: ast.AND}},
	{HookEq, map[token.Kind]ast.BinaryOp{token.EQ: ast.EQ, token.NE: ast.NE}},
	{HookCmp, map[token.Kind]ast.BinaryOp{
		token.LT: ast.LT, token.LE: ast.LE, token.GT: ast.GT, token.GE: ast.GE,
	}},
	{HookAdd, map[token.Kind]ast.BinaryOp{token.PLUS: ast.ADD, token.MINUS: ast.SUB}},
	{HookMul, map[token.Kind]ast.BinaryOp{
		token.MUL: ast.MUL, token.DIV: ast.DIV, token.MOD: ast.MOD,
	}},
}

// binary parses the operator level at index level of levels.
func (p *Parser) binary(level int, required bool) (ast.Node, error) {
	if level == len(levels) {
		return p.unary(required)
	}

	v, err := p.binary(level+1, required)
	if err != nil || v == nil {
		return v, err
	}

	for {
		var build Builder

		op, ok := levels[level].ops[p.tok.Kind]
		if !ok && p.tok.Kind == token.EXTENSION {
			build, ok = p.ext.Lookup(levels[level].hook, p.tok.Image)
		}

		if !ok {
			return v, nil
		}

		if _, err := p.consume(); err != nil {
			return nil, err
		}

		right, err := p.binary(level+1, true)
		if err != nil {
			return nil, err
		}

		if build == nil {
			v = ast.NewBinary(op, v, right)
		} else if v, err = p.build(build, v, right); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) build(build Builder, children ...ast.Node) (ast.Node, error) {
	if v := build(children...); v != nil {
		return v, nil
	}

	return nil, ErrExtension.With(slog.Int("position", p.pos))
}

var unaryOps = map[token.Kind]ast.UnaryOp{
	token.NOT:   ast.NOT,
	token.MINUS: ast.NEG,
	token.EMPTY: ast.EMPTY,
}

func (p *Parser) unary(required bool) (ast.Node, error) {
	var (
		v   ast.Node
		err error
	)

	op, isOp := unaryOps[p.tok.Kind]

	var build Builder
	if !isOp && p.tok.Kind == token.EXTENSION {
		build, isOp = p.ext.Lookup(HookUnary, p.tok.Image)
	}

	if isOp {
		if _, err := p.consume(); err != nil {
			return nil, err
		}

		operand, err := p.unary(true)
		if err != nil {
			return nil, err
		}

		if build != nil {
			return p.build(build, operand)
		}

		return ast.NewUnary(op, operand), nil
	}

	if v, err = p.value(); err != nil {
		return nil, err
	}

	if v == nil && required {
		return nil, p.fail(exprFirst)
	}

	return v, nil
}

func (p *Parser) value() (ast.Node, error) {
	v, err := p.nonliteral()
	if err != nil {
		return nil, err
	}

	var lvalue bool

	switch v.(type) {
	case nil:
		if v, err = p.literal(); err != nil || v == nil {
			return v, err
		}
	case *ast.Identifier, *ast.Nested:
		lvalue = true
	}

	for {
		var prop *ast.PropertyAccess

		switch p.tok.Kind {
		case token.DOT:
			if _, err := p.consume(); err != nil {
				return nil, err
			}

			name, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}

			prop = ast.NewDot(v, name.Image, lvalue)

		case token.LBRACK:
			if _, err := p.consume(); err != nil {
				return nil, err
			}

			key, err := p.expr(true)
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(token.RBRACK); err != nil {
				return nil, err
			}

			prop = ast.NewBracket(v, key, lvalue, !p.nullProperties)

		default:
			return v, nil
		}

		v = prop

		if p.tok.Kind == token.LPAREN && p.methods {
			args, err := p.params()
			if err != nil {
				return nil, err
			}

			v = ast.NewMethodCall(prop, args)
		}
	}
}

func (p *Parser) nonliteral() (ast.Node, error) {
	switch p.tok.Kind {
	case token.IDENTIFIER:
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}

		name := tok.Image

		if p.tok.Kind == token.COLON {
			if ok, err := p.namespaced(); err != nil {
				return nil, err
			} else if ok {
				if _, err := p.consume(); err != nil {
					return nil, err
				}

				local, err := p.consume()
				if err != nil {
					return nil, err
				}

				name += ":" + local.Image
			}
		}

		if p.tok.Kind == token.LPAREN {
			args, err := p.params()
			if err != nil {
				return nil, err
			}

			return p.function(name, args), nil
		}

		return p.identifier(name), nil

	case token.LPAREN:
		if _, err := p.consume(); err != nil {
			return nil, err
		}

		v, err := p.expr(true)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}

		return ast.NewNested(v), nil
	}

	return nil, nil
}

// namespaced reports whether the current COLON begins "ns:name(".
func (p *Parser) namespaced() (bool, error) {
	name, err := p.peek(0)
	if err != nil || name.Kind != token.IDENTIFIER {
		return false, err
	}

	paren, err := p.peek(1)
	if err != nil {
		return false, err
	}

	return paren.Kind == token.LPAREN, nil
}

func (p *Parser) params() ([]ast.Node, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	args := make([]ast.Node, 0)

	v, err := p.expr(false)
	if err != nil {
		return nil, err
	}

	if v != nil {
		args = append(args, v)

		for p.tok.Kind == token.COMMA {
			if _, err := p.consume(); err != nil {
				return nil, err
			}

			if v, err = p.expr(true); err != nil {
				return nil, err
			}

			args = append(args, v)
		}
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *Parser) literal() (ast.Node, error) {
	var v ast.Node

	switch p.tok.Kind {
	case token.TRUE:
		v = ast.NewBoolean(true)
	case token.FALSE:
		v = ast.NewBoolean(false)
	case token.STRING:
		v = ast.NewString(p.tok.Image)
	case token.NULL:
		v = ast.NewNull()

	case token.INTEGER:
		i, err := strconv.ParseInt(p.tok.Image, 10, 64)
		if err != nil {
			return nil, p.fail(token.INTEGER.String())
		}

		v = ast.NewInteger(i)

	case token.FLOAT:
		f, err := strconv.ParseFloat(p.tok.Image, 64)
		if err != nil {
			return nil, p.fail(token.FLOAT.String())
		}

		v = ast.NewFloat(f)

	case token.EXTENSION:
		build, ok := p.ext.Lookup(HookLiteral, p.tok.Image)
		if !ok {
			return nil, nil
		}

		if _, err := p.consume(); err != nil {
			return nil, err
		}

		return p.build(build)

	default:
		return nil, nil
	}

	if _, err := p.consume(); err != nil {
		return nil, err
	}

	return v, nil
}

func (p *Parser) identifier(name string) *ast.Identifier {
	id := ast.NewIdentifier(name, len(p.identifiers))
	p.identifiers = append(p.identifiers, id)

	return id
}

func (p *Parser) function(name string, args []ast.Node) *ast.FunctionCall {
	fn := ast.NewFunctionCall(name, len(p.functions), args, p.varArgs)
	p.functions = append(p.functions, fn)

	return fn
}
