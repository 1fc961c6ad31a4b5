package lang

import (
	"bytes"
	"context"
	"encoding/gob"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/pkg"
)

// globalCache stores parse results keyed by hash(source) ^ hash(options).
var globalCache sync.Map

// state holds the single parse of one cache key.
type state struct {
	once sync.Once
	tree *parser.Tree
	err  error
}

// hashOptions encodes opts using gob and hashes with xxh3.
func hashOptions(opts optionsKey) uint64 {
	var buf bytes.Buffer

	_ = gob.NewEncoder(&buf).Encode(opts)

	return xxh3.Hash(buf.Bytes())
}

// Parse parses a template. Results for identical source and options are
// computed once and shared.
func Parse(ctx context.Context, source string, opts ...Option) (*parser.Tree, error) {
	o := makeOptions(opts...)

	if o.ext != nil {
		o.logger.TraceContext(ctx, "cache bypass", slog.Bool("extensions", true))

		return parser.Parse(ctx, source, o.parserOptions()...)
	}

	sourceHash := xxh3.HashString(source)
	optsHash := hashOptions(o.key)
	key := strconv.FormatUint(sourceHash^optsHash, 36)

	value, hit := globalCache.LoadOrStore(key, new(state))

	entry, ok := value.(*state)
	if !ok {
		return nil, pkg.ErrInvalidFormat.With(slog.String("issue", "invalid cache entry"))
	}

	o.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(sourceHash, 16)),
		slog.String("opts_hash", strconv.FormatUint(optsHash, 16)),
		slog.Bool("cache_hit", hit),
	)

	entry.once.Do(func() {
		entry.tree, entry.err = parser.Parse(ctx, source, o.parserOptions()...)
	})

	return entry.tree, entry.err
}

// ParseReader reads all of r and parses it with [Parse].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*parser.Tree, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	makeOptions(opts...).logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return Parse(ctx, string(data), opts...)
}

// ClearCache removes all cached parse results.
func ClearCache() {
	globalCache.Clear()
}
