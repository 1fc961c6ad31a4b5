package lang

import (
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/log"
)

// Option configures Parse and ParseReader.
type Option func(*options)

type options struct {
	key    optionsKey
	ext    *parser.Extensions
	logger log.Logger
}

// optionsKey holds the options that change the shape of a parse tree.
type optionsKey struct {
	Methods        bool
	NullProperties bool
	VarArgs        bool
}

// WithMethodInvocations enables "a.b(args)" method calls.
func WithMethodInvocations(enable bool) Option {
	return func(o *options) { o.key.Methods = enable }
}

// WithNullProperties makes bracket property access non-strict.
func WithNullProperties(enable bool) Option {
	return func(o *options) { o.key.NullProperties = enable }
}

// WithVarArgs marks function calls as variadic.
func WithVarArgs(enable bool) Option {
	return func(o *options) { o.key.VarArgs = enable }
}

// WithExtensions registers extension operators. Parses with extensions
// are not cached.
func WithExtensions(ext *parser.Extensions) Option {
	return func(o *options) { o.ext = ext }
}

// WithLogger sets the logger for cache and parser trace output.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithMethodInvocations(o.key.Methods),
		parser.WithNullProperties(o.key.NullProperties),
		parser.WithVarArgs(o.key.VarArgs),
		parser.WithExtensions(o.ext),
		parser.WithLogger(o.logger),
	}
}
