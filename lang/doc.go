// Package lang is the entry point for parsing expression-language
// templates.
//
// A template mixes literal text with evaluable segments. Segments opened
// with "${" are evaluated immediately and segments opened with "#{" are
// deferred; a single template uses only one kind:
//
//	Hello ${user.name}, you have ${count + 1} messages
//
// [Parse] and [ParseReader] return a [parser.Tree] shared through a
// process-wide cache keyed by the source and the parser options. Trees
// returned from the cache must not be modified.
//
// The lower-level packages can be used directly:
//
//   - [github.com/ardnew/elcond/lang/scanner] tokenizes a template
//   - [github.com/ardnew/elcond/lang/parser] builds the syntax tree
//   - [github.com/ardnew/elcond/lang/simplify] reduces a binary expression
//     to two-sided leaves
//
// [ToMap], [FormatJSON] and [FormatYAML] serialize trees and leaves for
// inspection.
package lang
