package domain

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

func dump(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

func TestCompareReaders(t *testing.T) {
	pass := func(mode m.CompareMode) m.ComparisonResult { return m.PassResult(mode, "", "") }
	fail := func(mode m.CompareMode, v m.Violation, line int) m.ComparisonResult {
		return m.FailResult(mode, v, line, "")
	}

	tests := []struct {
		name      string
		mode      m.CompareMode
		subject   string
		reference string
		want      m.ComparisonResult
	}{
		// multiset
		{"multiset equal up to order", m.CompareMultiset, dump("ACGT 3 1 2", "CGTA"), dump("ACGT 1 2 3", "CGTA"), pass(m.CompareMultiset)},
		{"multiset both empty", m.CompareMultiset, "", "", pass(m.CompareMultiset)},
		{"multiset differing integers", m.CompareMultiset, dump("ACGT 1 2"), dump("ACGT 1 3"), fail(m.CompareMultiset, m.SetMismatch, 0)},
		{"multiset counts duplicates", m.CompareMultiset, dump("ACGT 1 1"), dump("ACGT 1"), fail(m.CompareMultiset, m.SetMismatch, 0)},
		{"multiset key differs", m.CompareMultiset, dump("ACGT 1", "TTTT 2"), dump("ACGT 1", "GGGG 2"), fail(m.CompareMultiset, m.SchemaMismatch, 1)},
		{"multiset keys are positional", m.CompareMultiset, dump("b 1", "a 2"), dump("a 2", "b 1"), fail(m.CompareMultiset, m.SchemaMismatch, 0)},
		{"line count differs", m.CompareMultiset, dump("ACGT 1"), dump("ACGT 1", "CCCC 2"), fail(m.CompareMultiset, m.SchemaMismatch, 1)},
		{"malformed subject", m.CompareMultiset, dump("ACGT x"), dump("ACGT 1"), fail(m.CompareMultiset, m.SchemaMismatch, 0)},
		{"malformed reference", m.CompareMultiset, dump("ACGT 1"), dump("ACGT 1.5"), fail(m.CompareMultiset, m.SchemaMismatch, 0)},
		{"empty mode means multiset", "", dump("q0 2 1"), dump("q0 1 2"), pass(m.CompareMultiset)},

		// sorted
		{"sorted pass against unsorted reference", m.CompareSorted, dump("0 1 2", "1 5"), dump("0 2 1", "1 5"), pass(m.CompareSorted)},
		{"sorted subject integers out of order", m.CompareSorted, dump("0 2 1"), dump("0 1 2"), fail(m.CompareSorted, m.OrderViolation, 0)},
		{"sorted lines swapped", m.CompareSorted, dump("1 4", "0 3"), dump("0 3", "1 4"), fail(m.CompareSorted, m.OrderViolation, 0)},
		{"sorted unknown key", m.CompareSorted, dump("0 3", "7 4"), dump("0 3", "1 4"), fail(m.CompareSorted, m.SchemaMismatch, 1)},
		{"sorted set mismatch", m.CompareSorted, dump("0 1 3"), dump("0 1 2"), fail(m.CompareSorted, m.SetMismatch, 0)},
		{"sorted empty hit list", m.CompareSorted, dump("0", "1 2"), dump("0", "1 2"), pass(m.CompareSorted)},

		// exact
		{"exact identical", m.CompareExact, dump("ACGT 0 4", "TTTT 1"), dump("ACGT 0 4", "TTTT 1"), pass(m.CompareExact)},
		{"exact integer order", m.CompareExact, dump("ACGT 4 0"), dump("ACGT 0 4"), fail(m.CompareExact, m.OrderViolation, 0)},
		{"exact integers differ", m.CompareExact, dump("ACGT 0 5"), dump("ACGT 0 4"), fail(m.CompareExact, m.SetMismatch, 0)},
		{"exact key differs", m.CompareExact, dump("ACGT 0", "AAAA 1"), dump("ACGT 0", "CCCC 1"), fail(m.CompareExact, m.SchemaMismatch, 1)},

		// unordered-lines
		{"unordered lines in any order", m.CompareUnorderedLines, dump("1 5", "0 3 2"), dump("0 2 3", "1 5"), pass(m.CompareUnorderedLines)},
		{"unordered missing key", m.CompareUnorderedLines, dump("0 1", "9 1"), dump("0 1", "1 1"), fail(m.CompareUnorderedLines, m.SchemaMismatch, 1)},
		{"unordered repeated key", m.CompareUnorderedLines, dump("0 1", "0 1"), dump("0 1", "1 1"), fail(m.CompareUnorderedLines, m.SchemaMismatch, 1)},
		{"unordered set mismatch", m.CompareUnorderedLines, dump("1 2", "0 1"), dump("0 1", "1 1"), fail(m.CompareUnorderedLines, m.SetMismatch, 0)},
		{"unordered reference repeats key", m.CompareUnorderedLines, dump("0 1", "1 1"), dump("0 1", "0 1"), fail(m.CompareUnorderedLines, m.SchemaMismatch, 1)},
		{"unordered line count", m.CompareUnorderedLines, dump("0 1"), dump("0 1", "1 1"), fail(m.CompareUnorderedLines, m.SchemaMismatch, 1)},
		{"unordered accepts unsorted hits", m.CompareUnorderedLines, dump("0 3 2"), dump("0 2 3"), pass(m.CompareUnorderedLines)},

		// sorted-hits
		{"sorted hits lines in any order", m.CompareSortedHits, dump("1 5", "0 2 3"), dump("0 3 2", "1 5"), pass(m.CompareSortedHits)},
		{"sorted hits unsorted subject line", m.CompareSortedHits, dump("1 5", "0 3 2"), dump("0 2 3", "1 5"), fail(m.CompareSortedHits, m.OrderViolation, 1)},
		{"sorted hits set mismatch", m.CompareSortedHits, dump("0 2 4"), dump("0 2 3"), fail(m.CompareSortedHits, m.SetMismatch, 0)},
		{"sorted hits missing key", m.CompareSortedHits, dump("7 1"), dump("0 1"), fail(m.CompareSortedHits, m.SchemaMismatch, 0)},
	}

	ignoreDetail := cmpopts.IgnoreFields(m.ComparisonResult{}, "Detail")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareReaders(context.Background(), tt.subject, tt.reference, tt.mode)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got, ignoreDetail); diff != "" {
				t.Errorf("CompareReaders() mismatch (-want +got):\n%s\ndetail: %s", diff, got.Detail)
			}

			if !got.Pass {
				assert.NotEmpty(t, got.Detail)
			}
		})
	}
}

func TestCompareReaders_ExactDetailCarriesDiff(t *testing.T) {
	got, err := CompareReaders(context.Background(), dump("ACGT 0", "TTTT 2 1"), dump("ACGT 0", "TTTT 1 2"), m.CompareExact)
	require.NoError(t, err)

	assert.False(t, got.Pass)
	assert.Contains(t, got.Detail, "-TTTT 1 2")
	assert.Contains(t, got.Detail, "+TTTT 2 1")
}

func TestCompareReaders_Errors(t *testing.T) {
	_, err := CompareReaders(context.Background(), "", "", "fuzzy")
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = CompareReaders(ctx, dump("a 1"), dump("a 1"), m.CompareMultiset)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOracle_Compare(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) m.Path {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return m.Path(path)
	}

	origin := m.Origin{K: 31, ColorMode: m.ColorsFile, Inputs: "fp"}
	subject := m.DumpArtifact{Path: write("sut.colordump", dump("ACGT 1 0")), Kind: m.ColorMatrixDump, Origin: origin}
	reference := m.DumpArtifact{Path: write("ref.colordump", dump("ACGT 0 1")), Kind: m.ColorMatrixDump, Origin: origin}

	oracle := NewOracle(adapter.NewLocalCorpusFSAdapter())

	t.Run("pass records both paths", func(t *testing.T) {
		got, err := oracle.Compare(context.Background(), subject, reference, m.CompareMultiset)
		require.NoError(t, err)

		assert.True(t, got.Pass)
		assert.Equal(t, subject.Path, got.Subject)
		assert.Equal(t, reference.Path, got.Reference)
	})

	t.Run("divergent origins are never compared", func(t *testing.T) {
		other := reference
		other.Origin.K = 100

		got, err := oracle.Compare(context.Background(), subject, other, m.CompareMultiset)
		require.NoError(t, err)

		assert.False(t, got.Pass)
		assert.Equal(t, m.SchemaMismatch, got.Violation)
		assert.Equal(t, -1, got.Line)
		assert.Contains(t, got.Detail, "k differs")
	})

	t.Run("missing dump is an error", func(t *testing.T) {
		missing := subject
		missing.Path = m.Path(filepath.Join(dir, "absent.colordump"))

		_, err := oracle.Compare(context.Background(), missing, reference, m.CompareMultiset)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
