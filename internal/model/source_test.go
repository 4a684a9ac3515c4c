package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFileSet(t *testing.T) {
	paths := []Path{"a.fna", "b.fna"}
	set := NewInputFileSet(paths)

	paths[0] = "changed.fna"
	assert.Equal(t, []Path{"a.fna", "b.fna"}, set.Paths())
	assert.Equal(t, 2, set.Len())

	got := set.Paths()
	got[1] = "changed.fna"
	assert.Equal(t, Path("b.fna"), set.Paths()[1])
}

func TestInputFileSetFingerprint(t *testing.T) {
	ab := NewInputFileSet([]Path{"a.fna", "b.fna"})
	ba := NewInputFileSet([]Path{"b.fna", "a.fna"})
	joined := NewInputFileSet([]Path{"a.fnab.fna"})

	assert.Len(t, ab.Fingerprint(), 16)
	assert.Equal(t, ab.Fingerprint(), NewInputFileSet(ab.Paths()).Fingerprint())
	assert.NotEqual(t, ab.Fingerprint(), ba.Fingerprint(), "order is part of the input")
	assert.NotEqual(t, ab.Fingerprint(), joined.Fingerprint())
}

func TestSameOrigin(t *testing.T) {
	base := DumpArtifact{
		Kind:   ColorMatrixDump,
		Origin: Origin{K: 31, ColorMode: ColorsFile, Inputs: "abc"},
	}

	tests := []struct {
		name    string
		mutate  func(*DumpArtifact)
		wantErr string
	}{
		{name: "identical", mutate: func(*DumpArtifact) {}},
		{name: "kind", mutate: func(d *DumpArtifact) { d.Kind = PseudoalignmentDump }, wantErr: "dump kinds differ"},
		{name: "k", mutate: func(d *DumpArtifact) { d.Origin.K = 15 }, wantErr: "k differs"},
		{name: "strand", mutate: func(d *DumpArtifact) { d.Origin.ReverseComplement = true }, wantErr: "reverse-complement"},
		{name: "inputs", mutate: func(d *DumpArtifact) { d.Origin.Inputs = "def" }, wantErr: "input file sets differ"},
		{name: "colors", mutate: func(d *DumpArtifact) { d.Origin.ColorMode = ColorsSequence }, wantErr: "color modes differ"},
		{name: "undeclared colors", mutate: func(d *DumpArtifact) { d.Origin.ColorMode = "" }},
		{name: "query", mutate: func(d *DumpArtifact) { d.Origin.Query = "0.9-no-no" }, wantErr: "query parameters differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.mutate(&other)

			err := SameOrigin(base, other)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOriginOf(t *testing.T) {
	cfg := BuildConfiguration{K: 21, D: 3, ReverseComplement: true, ColorMode: ColorsNone, Structure: Roaring}

	assert.Equal(t, Origin{K: 21, ReverseComplement: true, ColorMode: ColorsNone, Inputs: "fp"}, OriginOf(cfg, "fp"))
}
