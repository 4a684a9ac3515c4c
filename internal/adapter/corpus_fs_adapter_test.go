package adapter

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

func writeFile(t *testing.T, path string, data []byte) m.Path {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return m.Path(path)
}

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func readAll(t *testing.T, fs *LocalCorpusFSAdapter, path m.Path) string {
	t.Helper()

	rc, err := fs.OpenSequences(context.Background(), path)
	require.NoError(t, err)

	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)

	return string(data)
}

func TestLocalCorpusFSAdapter_OpenSequences(t *testing.T) {
	fs := NewLocalCorpusFSAdapter()
	dir := t.TempDir()
	fasta := ">s1\nACGT\n>s2\nTTGA\n"

	t.Run("plain", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "plain.fna"), []byte(fasta))
		assert.Equal(t, fasta, readAll(t, fs, path))
	})

	t.Run("gzip detected by content", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "compressed.fna"), gzipBytes(t, fasta))
		assert.Equal(t, fasta, readAll(t, fs, path))
	})

	t.Run("concatenated gzip members", func(t *testing.T) {
		data := append(gzipBytes(t, ">a\nAC\n"), gzipBytes(t, ">b\nGT\n")...)
		path := writeFile(t, filepath.Join(dir, "multi.fna.gz"), data)
		assert.Equal(t, ">a\nAC\n>b\nGT\n", readAll(t, fs, path))
	})

	t.Run("single byte file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "tiny.fna"), []byte(">"))
		assert.Equal(t, ">", readAll(t, fs, path))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := fs.OpenSequences(context.Background(), m.Path(filepath.Join(dir, "absent.fna")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalCorpusFSAdapter_CreateGzip(t *testing.T) {
	fs := NewLocalCorpusFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "queries.fna.gz"))

	w, err := fs.CreateGzip(context.Background(), path)
	require.NoError(t, err)

	_, err = io.WriteString(w, ">q0\nACGTACGT\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])

	assert.Equal(t, ">q0\nACGTACGT\n", readAll(t, fs, path))
}

func TestLocalCorpusFSAdapter_Concatenate(t *testing.T) {
	fs := NewLocalCorpusFSAdapter()
	dir := t.TempDir()

	a := writeFile(t, filepath.Join(dir, "a.fna"), []byte(">a\nAAAA\n"))
	b := writeFile(t, filepath.Join(dir, "b.fna"), []byte(">b\nCCCC\n"))
	dst := m.Path(filepath.Join(dir, "all.fna"))

	require.NoError(t, fs.Concatenate(context.Background(), dst, []m.Path{b, a}))

	data, err := os.ReadFile(string(dst))
	require.NoError(t, err)
	assert.Equal(t, ">b\nCCCC\n>a\nAAAA\n", string(data))

	err = fs.Concatenate(context.Background(), dst, []m.Path{a, m.Path(filepath.Join(dir, "absent.fna"))})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalCorpusFSAdapter_WriteLines(t *testing.T) {
	fs := NewLocalCorpusFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "inputs.txt"))

	require.NoError(t, fs.WriteLines(context.Background(), path, []string{"data/a.fna", "data/b.fna"}))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "data/a.fna\ndata/b.fna\n", string(data))

	require.NoError(t, fs.WriteLines(context.Background(), path, nil))

	data, err = os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLocalCorpusFSAdapter_Directories(t *testing.T) {
	fs := NewLocalCorpusFSAdapter()
	ctx := context.Background()
	root := t.TempDir()

	nested := fs.JoinPath(root, "run", "row-0")
	require.NoError(t, fs.MkdirAll(ctx, nested))

	writeFile(t, filepath.Join(string(nested), "b.fna"), []byte(">b\n"))
	writeFile(t, filepath.Join(string(nested), "a.fna"), []byte(">a\n"))

	entries, err := fs.ReadDir(ctx, nested)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.fna", entries[0].Name())
	assert.Equal(t, "b.fna", entries[1].Name())

	info, err := fs.FileInfo(ctx, nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, fs.RemoveAll(ctx, fs.JoinPath(root, "run")))

	_, err = fs.FileInfo(ctx, nested)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalCorpusFSAdapter_CancelledContext(t *testing.T) {
	fs := NewLocalCorpusFSAdapter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := m.Path(t.TempDir())

	_, err := fs.ReadDir(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, fs.MkdirAll(ctx, dir), context.Canceled)
	require.ErrorIs(t, fs.WriteLines(ctx, fs.JoinPath(string(dir), "x"), nil), context.Canceled)
	require.ErrorIs(t, fs.Concatenate(ctx, fs.JoinPath(string(dir), "y"), []m.Path{"z"}), context.Canceled)
}
