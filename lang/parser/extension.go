package parser

import (
	"slices"

	"github.com/ardnew/elcond/lang/ast"
)

// HookPoint names a grammar rule at which an extension token may be
// consumed.
type HookPoint int

const (
	HookOr HookPoint = iota
	HookAnd
	HookEq
	HookCmp
	HookAdd
	HookMul
	HookUnary
	HookLiteral
)

func (h HookPoint) String() string {
	switch h {
	case HookOr:
		return "OR"
	case HookAnd:
		return "AND"
	case HookEq:
		return "EQ"
	case HookCmp:
		return "CMP"
	case HookAdd:
		return "ADD"
	case HookMul:
		return "MUL"
	case HookUnary:
		return "UNARY"
	case HookLiteral:
		return "LITERAL"
	}

	return "?"
}

// Builder creates the node for an extension token. Binary hook points pass
// (left, right), HookUnary passes the operand and HookLiteral passes
// nothing.
type Builder func(children ...ast.Node) ast.Node

// Extension pairs a token image with its Builder.
type Extension struct {
	Image string
	Build Builder
}

// Extensions is a table of extension tokens keyed by hook point. The same
// image may be registered at several hook points; each grammar rule only
// consults the entries of its own hook point.
//
// An Extensions value must not be modified while a parse that uses it is
// running.
type Extensions struct {
	table map[HookPoint][]Extension
}

// NewExtensions returns an empty table.
func NewExtensions() *Extensions {
	return &Extensions{table: map[HookPoint][]Extension{}}
}

// Register adds image at point, replacing a previous registration of the
// same image at the same point. It returns e for chaining.
func (e *Extensions) Register(point HookPoint, image string, build Builder) *Extensions {
	if e.table == nil {
		e.table = map[HookPoint][]Extension{}
	}

	entries := e.table[point]

	i := slices.IndexFunc(entries, func(x Extension) bool { return x.Image == image })
	if i >= 0 {
		entries[i].Build = build
	} else {
		entries = append(entries, Extension{Image: image, Build: build})
	}

	e.table[point] = entries

	return e
}

// Lookup returns the Builder registered for image at point.
func (e *Extensions) Lookup(point HookPoint, image string) (Builder, bool) {
	if e == nil {
		return nil, false
	}

	for _, x := range e.table[point] {
		if x.Image == image {
			return x.Build, x.Build != nil
		}
	}

	return nil, false
}

// At returns the extensions registered at point in registration order.
func (e *Extensions) At(point HookPoint) []Extension {
	if e == nil {
		return nil
	}

	return slices.Clone(e.table[point])
}

// Images returns every registered image once, ordered by hook point and
// then registration order. A scanner must report these as extension
// tokens.
func (e *Extensions) Images() []string {
	if e == nil {
		return nil
	}

	var images []string

	for point := HookOr; point <= HookLiteral; point++ {
		for _, x := range e.table[point] {
			if !slices.Contains(images, x.Image) {
				images = append(images, x.Image)
			}
		}
	}

	return images
}
