package lang

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/pkg"
)

func TestParseCached(t *testing.T) {
	ClearCache()

	ctx := context.Background()
	src := "${a == 1 && b != 'x'}"

	first, err := Parse(ctx, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	second, err := Parse(ctx, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if first != second {
		t.Error("identical source returned different trees")
	}

	other, err := Parse(ctx, src, WithNullProperties(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if other == first {
		t.Error("different options returned the same tree")
	}
}

func TestParseCachedError(t *testing.T) {
	ClearCache()

	ctx := context.Background()

	for range 2 {
		if _, err := Parse(ctx, "${a +}"); !errors.Is(err, parser.ErrParse) {
			t.Fatalf("err = %v, want ErrParse", err)
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	ClearCache()

	const n = 16

	var (
		wg    sync.WaitGroup
		trees [n]*parser.Tree
	)

	for i := range n {
		wg.Go(func() {
			trees[i], _ = Parse(context.Background(), "${x > 1}")
		})
	}

	wg.Wait()

	for i := range n {
		if trees[i] == nil || trees[i] != trees[0] {
			t.Fatalf("tree %d differs from tree 0", i)
		}
	}
}

func TestParseExtensionsBypassCache(t *testing.T) {
	ClearCache()

	ext := parser.NewExtensions().Register(parser.HookAdd, "~",
		func(c ...ast.Node) ast.Node { return ast.NewBinary(ast.ADD, c[0], c[1]) })

	ctx := context.Background()

	first, err := Parse(ctx, "${a ~ b}", WithExtensions(ext))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	second, err := Parse(ctx, "${a ~ b}", WithExtensions(ext))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if first == second {
		t.Error("parses with extensions were cached")
	}
}

func TestParseReader(t *testing.T) {
	ClearCache()

	tree, err := ParseReader(context.Background(), strings.NewReader("x ${y}"))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}

	if got := tree.String(); got != "x ${y}" {
		t.Errorf("got %q", got)
	}

	_, err = ParseReader(context.Background(), iotest.ErrReader(errors.New("boom")))
	if !errors.Is(err, pkg.ErrReadInput) {
		t.Errorf("err = %v, want ErrReadInput", err)
	}
}
