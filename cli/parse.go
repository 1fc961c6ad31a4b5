package cli

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/elcond/lang"
)

// parseConfig holds the grammar switches shared by every command.
type parseConfig struct {
	Methods        bool `help:"Accept method invocations such as a.b(c)."            negatable:""`
	NullProperties bool `help:"Treat bracket property access as non-strict."         negatable:""`
	VarArgs        bool `help:"Accept variable-length function argument lists." name:"varargs" negatable:""`
}

func (*parseConfig) group() kong.Group {
	var group kong.Group

	group.Key = "parse"
	group.Title = "Parser options"

	return group
}

func (f *parseConfig) options() []lang.Option {
	return []lang.Option{
		lang.WithMethodInvocations(f.Methods),
		lang.WithNullProperties(f.NullProperties),
		lang.WithVarArgs(f.VarArgs),
	}
}
