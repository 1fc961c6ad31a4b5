package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/pkg"
)

type (
	contextKey struct{}
	optionsKey struct{}
	outputKey  struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable named id.
func kongVar(ctx context.Context, id string) (string, error) {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return "", ErrNoContext.With(slog.String("var", id))
	}

	v, ok := ktx.Model.Vars()[id]
	if !ok {
		return "", ErrNoContext.With(slog.String("var", id))
	}

	return v, nil
}

// WithOptions returns a new context.Context carrying the parser options used
// by every command.
func WithOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) []lang.Option {
	opts, _ := ctx.Value(optionsKey{}).([]lang.Option)

	return opts
}

// WithOutput returns a new context.Context directing command output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// Input selects the text a command operates on.
type Input struct {
	Expr   string   `help:"Use this text instead of reading SOURCE."              short:"e"`
	Source []string `arg:"" default:"-" help:"Source file(s) or '-' for stdin." name:"source"`
}

// open returns a reader over the input. Files are concatenated in order.
func (in *Input) open() (io.ReadCloser, error) {
	if in.Expr != "" {
		return io.NopCloser(strings.NewReader(in.Expr)), nil
	}

	src := buildSourceFiles(in.Source)
	if src == nil {
		return nil, ErrNoSource.With(
			slog.String("source", strings.Join(in.Source, ",")),
		)
	}

	return src, nil
}

// read returns the entire input.
func (in *Input) read() ([]byte, error) {
	r, err := in.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	return data, nil
}

// parse parses the input with the options stored in ctx.
func (in *Input) parse(ctx context.Context) (*parser.Tree, error) {
	if in.Expr != "" {
		return lang.Parse(ctx, in.Expr, optionsFrom(ctx)...)
	}

	r, err := in.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return lang.ParseReader(ctx, r, optionsFrom(ctx)...)
}

type sourceFiles struct {
	files    []*os.File
	hasStdin bool
	reader   io.Reader
}

// Read implements io.Reader by reading from all source files in order,
// followed by stdin if present.
func (s *sourceFiles) Read(p []byte) (n int, err error) {
	if s.reader == nil {
		readers := make([]io.Reader, 0, len(s.files)+1)
		for _, f := range s.files {
			readers = append(readers, f)
		}

		if s.hasStdin {
			readers = append(readers, os.Stdin)
		}

		s.reader = io.MultiReader(readers...)
	}

	return s.reader.Read(p)
}

// Close closes every opened file. Stdin is left open.
func (s *sourceFiles) Close() error {
	var errs []error

	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	return errors.Join(errs...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// buildSourceFiles opens the given source paths.
//
// Readers are deduplicated by resolving symlinks and comparing device/inode
// pairs. All occurrences of "-" are replaced with a single stdin reader
// placed last. Returns nil if nothing could be opened.
func buildSourceFiles(sources []string) *sourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	srcs.files = make([]*os.File, 0, len(sources))
	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		file, ok := openUniqueFile(src, seen)
		if !ok {
			continue
		}

		srcs.files = append(srcs.files, file)
	}

	// Stdin may have been included via "-" or as a named file.
	_, srcs.hasStdin = seen[stdinKey]

	if len(srcs.files) == 0 && !srcs.hasStdin {
		return nil
	}

	return &srcs
}

// openUniqueFile opens the file at path if it hasn't been seen before.
func openUniqueFile(path string, seen map[fileKey]struct{}) (*os.File, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true
}
