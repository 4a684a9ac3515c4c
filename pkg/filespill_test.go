package pkg

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journalEntry struct {
	Index    int           `yaml:"index"`
	Name     string        `yaml:"name"`
	Status   string        `yaml:"status"`
	Duration time.Duration `yaml:"duration"`
	Lines    []int         `yaml:"lines,omitempty"`
}

func spillPath(tb testing.TB) string {
	tb.Helper()
	return filepath.Join(tb.TempDir(), "journal", "rows.yaml")
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates the file and its directory", func(t *testing.T) {
		path := spillPath(t)

		spill, err := NewFileSpill[int](path)
		require.NoError(t, err)
		defer spill.Close()

		assert.Equal(t, path, spill.Path())
		assert.FileExists(t, path)
		assert.Equal(t, uint64(0), spill.Len())
	})

	t.Run("NewFileSpill truncates an existing journal", func(t *testing.T) {
		path := spillPath(t)

		first, err := NewFileSpill[int](path)
		require.NoError(t, err)
		require.NoError(t, first.AppendBatch([]int{1, 2, 3}))
		require.NoError(t, first.Close())

		second, err := NewFileSpill[int](path)
		require.NoError(t, err)
		defer second.Close()

		assert.Equal(t, uint64(0), second.Len())

		_, err = second.Get(0)
		require.Error(t, err)
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[journalEntry](spillPath(t))
		require.NoError(t, err)
		defer spill.Close()

		build := journalEntry{Index: 0, Name: "build-k31", Status: "passed", Duration: 1500 * time.Millisecond}
		query := journalEntry{Index: 4, Name: "0.9-no-yes", Status: "failed", Lines: []int{3, 7}}

		require.NoError(t, spill.Append(build))
		require.NoError(t, spill.Append(query))
		require.Equal(t, uint64(2), spill.Len())

		got, err := spill.Get(0)
		require.NoError(t, err)
		assert.Equal(t, build, got)

		got, err = spill.Get(1)
		require.NoError(t, err)
		assert.Equal(t, query, got)

		got, err = spill.Get(2)
		require.Error(t, err)
		assert.Equal(t, journalEntry{}, got)
	})

	t.Run("Range visits items in append order", func(t *testing.T) {
		spill, err := NewFileSpill[string](spillPath(t))
		require.NoError(t, err)
		defer spill.Close()

		want := []string{"first", "", "third: with a colon", "- looks like a list"}
		require.NoError(t, spill.AppendBatch(want))

		var got []string
		err = spill.Range(func(index uint64, item string) error {
			assert.Equal(t, uint64(len(got)), index)
			got = append(got, item)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Range stops at the first callback error", func(t *testing.T) {
		spill, err := NewFileSpill[int](spillPath(t))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop")
		visited := 0

		err = spill.Range(func(index uint64, _ int) error {
			visited++
			if index == 1 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, err, stop)
		assert.Equal(t, 2, visited)
	})

	t.Run("items stay readable after Close", func(t *testing.T) {
		spill, err := NewFileSpill[int](spillPath(t))
		require.NoError(t, err)

		require.NoError(t, spill.Append(42))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		val, err := spill.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 42, val)

		require.Error(t, spill.Append(43))
	})

	t.Run("numeric edge values survive the round trip", func(t *testing.T) {
		spill, err := NewFileSpill[float64](spillPath(t))
		require.NoError(t, err)
		defer spill.Close()

		values := []float64{0, -1, math.MaxFloat64, math.SmallestNonzeroFloat64, 0.00001}
		require.NoError(t, spill.AppendBatch(values))

		for i, want := range values {
			got, err := spill.Get(uint64(i))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})
}

func TestOpenFileSpill(t *testing.T) {
	t.Run("reads what a previous writer appended", func(t *testing.T) {
		path := spillPath(t)

		writer, err := NewFileSpill[journalEntry](path)
		require.NoError(t, err)
		require.NoError(t, writer.Append(journalEntry{Index: 0, Name: "a", Status: "passed"}))
		require.NoError(t, writer.Append(journalEntry{Index: 1, Name: "b", Status: "errored"}))
		require.NoError(t, writer.Close())

		reader, err := OpenFileSpill[journalEntry](path)
		require.NoError(t, err)
		defer reader.Close()

		require.Equal(t, uint64(2), reader.Len())

		got, err := reader.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "b", got.Name)
		assert.Equal(t, "errored", got.Status)
	})

	t.Run("is read-only", func(t *testing.T) {
		path := spillPath(t)

		writer, err := NewFileSpill[int](path)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		reader, err := OpenFileSpill[int](path)
		require.NoError(t, err)

		require.Error(t, reader.Append(1))
	})

	t.Run("ignores a torn final document", func(t *testing.T) {
		path := spillPath(t)

		writer, err := NewFileSpill[journalEntry](path)
		require.NoError(t, err)
		require.NoError(t, writer.Append(journalEntry{Index: 0, Name: "complete"}))
		require.NoError(t, writer.Close())

		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
		require.NoError(t, err)
		_, err = f.WriteString("---\nindex: 1\nname: [unterminated\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		reader, err := OpenFileSpill[journalEntry](path)
		require.NoError(t, err)

		assert.Equal(t, uint64(1), reader.Len())

		var names []string
		require.NoError(t, reader.Range(func(_ uint64, item journalEntry) error {
			names = append(names, item.Name)
			return nil
		}))
		assert.Equal(t, []string{"complete"}, names)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OpenFileSpill[int](filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

// BenchmarkAppend measures the cost of a synced append.
func BenchmarkAppend(b *testing.B) {
	spill, err := NewFileSpill[journalEntry](spillPath(b))
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	entry := journalEntry{Name: "build-k31-rc-file-roaring", Status: "passed", Duration: time.Second}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entry.Index = i
		_ = spill.Append(entry)
	}
}

// BenchmarkRange measures decoding a journal of 1000 rows.
func BenchmarkRange(b *testing.B) {
	spill, err := NewFileSpill[journalEntry](spillPath(b))
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	for i := 0; i < 1000; i++ {
		_ = spill.Append(journalEntry{Index: i, Name: "row", Status: "passed"})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spill.Range(func(uint64, journalEntry) error { return nil })
	}
}
