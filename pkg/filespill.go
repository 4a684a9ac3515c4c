// Package pkg holds helpers that do not depend on the harness types.
package pkg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	spillDirMode  = 0o750
	spillFileMode = 0o600
	docSeparator  = "---\n"
)

// FileSpill is an append-only list of items of type T kept in a YAML
// document stream on disk, one document per item. Everything appended is on
// disk before Append returns, so a stream cut short by a crash is still
// readable up to its last complete item.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpillImpl[T any] struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	length uint64
}

// NewFileSpill creates (or truncates) the spill file at path.
func NewFileSpill[T any](path string) (FileSpill[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), spillDirMode); err != nil {
		slog.Error("Failed to create spill directory", "path", path, "error", err)
		return nil, fmt.Errorf("create spill directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, spillFileMode)
	if err != nil {
		slog.Error("Failed to create spill file", "path", path, "error", err)
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	slog.Debug("Created filespill", "path", path)

	return &fileSpillImpl[T]{path: path, file: file}, nil
}

// OpenFileSpill opens an existing spill read-only. A trailing partial
// document is ignored.
func OpenFileSpill[T any](path string) (FileSpill[T], error) {
	spill := &fileSpillImpl[T]{path: path}

	n, err := spill.count()
	if err != nil {
		return nil, err
	}

	spill.length = n

	return spill, nil
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	data, err := yaml.Marshal(item)
	if err != nil {
		slog.Error("Failed to encode item", "path", f.path, "error", err)
		return fmt.Errorf("encode item: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return fmt.Errorf("spill %s is not writable", f.path)
	}

	if _, err := f.file.Write(append([]byte(docSeparator), data...)); err != nil {
		slog.Error("Failed to write item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("write item %d: %w", f.length, err)
	}

	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("sync spill: %w", err)
	}

	f.length++

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// AppendBatch implements FileSpill.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil

	if err != nil {
		slog.Error("Failed to close spill", "path", f.path, "error", err)
		return err
	}

	slog.Debug("Closed filespill", "path", f.path, "length", f.length)

	return nil
}

// Get implements FileSpill.
func (f *fileSpillImpl[T]) Get(index uint64) (T, error) {
	var (
		found T
		ok    bool
	)

	errFound := errors.New("found")

	err := f.Range(func(i uint64, item T) error {
		if i == index {
			found, ok = item, true
			return errFound
		}

		return nil
	})
	if err != nil && !errors.Is(err, errFound) {
		var zero T
		return zero, err
	}

	if !ok {
		var zero T
		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, f.Len())
	}

	return found, nil
}

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range implements FileSpill.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	length := f.length
	f.mu.Unlock()

	return f.decode(length, fn)
}

func (f *fileSpillImpl[T]) count() (uint64, error) {
	var n uint64

	err := f.decode(^uint64(0), func(uint64, T) error {
		n++
		return nil
	})

	return n, err
}

func (f *fileSpillImpl[T]) decode(limit uint64, fn func(index uint64, item T) error) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("read spill: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))

	for i := uint64(0); i < limit; i++ {
		var item T

		if err := decoder.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) || limit == ^uint64(0) {
				// end of stream, or a torn final document while counting
				return nil
			}

			slog.Error("Failed to decode item", "path", f.path, "index", i, "error", err)

			return fmt.Errorf("decode item %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}
