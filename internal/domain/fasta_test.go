package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	header string
	seq    string
}

func collect(t *testing.T, input string) []record {
	t.Helper()

	var got []record

	err := scanRecords(strings.NewReader(input), func(header string, seq []byte) error {
		got = append(got, record{header: header, seq: string(seq)})
		return nil
	})
	require.NoError(t, err)

	return got
}

func TestScanRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []record
	}{
		{name: "empty", input: "", want: nil},
		{name: "single line records", input: ">a\nACGT\n>b desc\nTTGA\n", want: []record{{"a", "ACGT"}, {"b desc", "TTGA"}}},
		{name: "multi line sequence", input: ">a\nAC\nGT\n\nAA\n", want: []record{{"a", "ACGTAA"}}},
		{name: "windows line endings", input: ">a\r\nAC\r\nGT\r\n", want: []record{{"a", "ACGT"}}},
		{name: "empty sequence", input: ">a\n>b\nCC\n", want: []record{{"a", ""}, {"b", "CC"}}},
		{name: "headerless genome", input: "ACGT\nACGT\n", want: []record{{"", "ACGTACGT"}}},
		{name: "no trailing newline", input: ">a\nACGT", want: []record{{"a", "ACGT"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(t, tt.input))
		})
	}
}

func TestFirstRecord(t *testing.T) {
	seq, err := firstRecord(strings.NewReader(">chr\nACGT\nTT\n>plasmid\nGGGG\n"))
	require.NoError(t, err)
	assert.Equal(t, "ACGTTT", string(seq))

	_, err = firstRecord(strings.NewReader("\n\n"))
	require.Error(t, err)
}

func TestCountRecords(t *testing.T) {
	n, err := countRecords(strings.NewReader(">a\nAC\n>b\nGT\n>c\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = countRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
