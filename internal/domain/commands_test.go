package domain

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// argv renders a command one token per line so golden diffs point at the flag.
func argv(cmd adapter.Command) []byte {
	return []byte(strings.Join(append([]string{cmd.Program}, cmd.Args...), "\n") + "\n")
}

func TestCommandLines(t *testing.T) {
	sut := SUTCommands{Binary: "themisto", Threads: 4, TempDir: "tmp"}
	ref := ReferenceCommands{Binary: "themisto_reference_implementation"}

	fileColorsRC := m.BuildConfiguration{K: 31, D: 5, ReverseComplement: true, ColorMode: m.ColorsFile, Structure: m.Roaring}
	manual := m.BuildConfiguration{K: 31, D: 1, ColorMode: m.ColorsManual, ColorFile: "data/colors.txt", Structure: m.SDSLHybrid}
	sequenceRC := m.BuildConfiguration{K: 31, D: 5, ReverseComplement: true, ColorMode: m.ColorsSequence, Structure: m.SDSLHybrid}
	uncolored := m.BuildConfiguration{K: 100, D: 5, ColorMode: m.ColorsNone, Structure: m.SDSLHybrid}

	tests := []struct {
		name string
		cmd  adapter.Command
	}{
		{
			name: "sut_build_fresh",
			cmd:  sut.Build(fileColorsRC, BuildSource{FileList: "run/file_list.txt"}, "run/index"),
		},
		{
			name: "sut_build_manual",
			cmd:  sut.Build(manual, BuildSource{FileList: "run/all_list.txt"}, "run/index"),
		},
		{
			name: "sut_build_no_colors",
			cmd:  sut.WithThreads(1).Build(uncolored, BuildSource{FileList: "run/file_list.txt"}, "run/graph"),
		},
		{
			name: "sut_build_load_dbg",
			cmd:  sut.Build(fileColorsRC.WithStructure(m.SDSLHybrid), BuildSource{FileList: "run/file_list.txt", LoadDBG: true}, "run/graph"),
		},
		{
			name: "sut_build_transform",
			cmd:  sut.Build(fileColorsRC, BuildSource{FromIndex: "run/source"}, "run/index"),
		},
		{
			name: "sut_dump",
			cmd:  sut.DumpColorMatrix("run/index", "run/index.colordump"),
		},
		{
			name: "sut_pseudoalign",
			cmd: sut.Pseudoalign("run/index", "queries.fna.gz", "run/out.txt",
				m.QueryParameterRow{Threshold: 0.9, ReverseComplement: true},
				m.QueryOptions{SortHits: true, SortOutputLines: true, BufferSizeMB: 0.00001}),
		},
		{
			name: "sut_pseudoalign_unsorted",
			cmd: sut.Pseudoalign("run/index", "queries.fna.gz", "run/out.txt",
				m.QueryParameterRow{Threshold: 1, IgnoreUnknown: true},
				m.QueryOptions{}),
		},
		{
			name: "reference_dump_manual",
			cmd:  ref.DumpColorMatrix(manual, "run/all_list.txt", "run/reference.colordump"),
		},
		{
			name: "reference_dump_rc",
			cmd:  ref.DumpColorMatrix(fileColorsRC, "run/file_list.txt", "run/reference.colordump"),
		},
		{
			name: "reference_query",
			cmd: ref.Query(sequenceRC, "run/file_list.txt", "queries.fna.gz", "run/reference.txt",
				m.QueryParameterRow{Threshold: 0.5, IgnoreUnknown: true, ReverseComplement: true}),
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/commands"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Assert(t, tt.name, argv(tt.cmd))
		})
	}
}
