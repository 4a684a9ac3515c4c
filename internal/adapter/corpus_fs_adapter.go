// Package adapter contains the process and filesystem adapters of the harness.
package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// CorpusFSAdapter abstracts the filesystem operations the provisioner and the
// orchestrator rely on, so the domain logic can be tested without a corpus on
// disk.
//
//nolint:interfacebloat // Keeps domain code free of direct os access.
type CorpusFSAdapter interface {
	// ReadDir lists a directory in scan order (sorted by file name).
	ReadDir(ctx context.Context, dir m.Path) ([]os.DirEntry, error)

	// FileInfo returns metadata for path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// WriteLines writes one entry per line, newline terminated.
	WriteLines(ctx context.Context, path m.Path, lines []string) error

	// Concatenate writes the bytes of srcs, in order, into dst.
	Concatenate(ctx context.Context, dst m.Path, srcs []m.Path) error

	// OpenSequences opens a sequence file, transparently decompressing gzip.
	OpenSequences(ctx context.Context, path m.Path) (io.ReadCloser, error)

	// CreateGzip creates path and returns a gzip writer over it.
	CreateGzip(ctx context.Context, path m.Path) (io.WriteCloser, error)

	// RemoveAll removes path and everything below it.
	RemoveAll(ctx context.Context, path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalCorpusFSAdapter is the os-backed CorpusFSAdapter.
type LocalCorpusFSAdapter struct{}

// NewLocalCorpusFSAdapter constructs a LocalCorpusFSAdapter.
func NewLocalCorpusFSAdapter() *LocalCorpusFSAdapter {
	return &LocalCorpusFSAdapter{}
}

// ReadDir lists dir sorted by file name.
func (a *LocalCorpusFSAdapter) ReadDir(ctx context.Context, dir m.Path) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadDir(string(dir))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalCorpusFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// MkdirAll creates a directory tree.
func (a *LocalCorpusFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// WriteLines writes lines to path, replacing any existing file.
func (a *LocalCorpusFSAdapter) WriteLines(ctx context.Context, path m.Path, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return os.WriteFile(string(path), []byte(b.String()), 0o600)
}

// Concatenate copies srcs into dst in order.
func (a *LocalCorpusFSAdapter) Concatenate(ctx context.Context, dst m.Path, srcs []m.Path) error {
	// #nosec G304 - dst is a harness-owned work path
	out, err := os.Create(string(dst))
	if err != nil {
		return err
	}

	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			_ = out.Close()
			return err
		}

		if err := appendFile(out, src); err != nil {
			_ = out.Close()
			return fmt.Errorf("append %s: %w", src, err)
		}
	}

	return out.Close()
}

func appendFile(out io.Writer, src m.Path) error {
	// #nosec G304 - src comes from the discovered corpus
	in, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = in.Close() }()

	_, err = io.Copy(out, in)

	return err
}

// OpenSequences opens path for reading. Gzip input is detected by its magic
// bytes rather than by extension, and multi-member streams (concatenated .gz
// files) are read through to the end.
func (a *LocalCorpusFSAdapter) OpenSequences(ctx context.Context, path m.Path) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the corpus or the configuration
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(f)

	magic, err := br.Peek(2)
	if err != nil || magic[0] != 0x1f || magic[1] != 0x8b {
		return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open gzip %s: %w", path, err)
	}

	return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

// CreateGzip creates path and wraps it in a gzip writer. Closing the returned
// writer flushes the gzip stream and closes the file.
func (a *LocalCorpusFSAdapter) CreateGzip(ctx context.Context, path m.Path) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is a harness-owned output path
	f, err := os.Create(string(path))
	if err != nil {
		return nil, err
	}

	zw := gzip.NewWriter(f)

	return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalCorpusFSAdapter) RemoveAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.RemoveAll(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalCorpusFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	return closeAll(r.closers)
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	return closeAll(w.closers)
}

func closeAll(closers []io.Closer) error {
	var first error

	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
