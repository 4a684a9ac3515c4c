package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// MatrixRow is one configuration of the build sweep.
type MatrixRow struct {
	Name    string               `yaml:"name"`
	Kind    m.RowKind            `yaml:"kind"`
	Config  m.BuildConfiguration `yaml:"config"`
	Compare m.CompareMode        `yaml:"compare,omitempty"`
}

// Validate checks the row independently of any fixtures.
func (r MatrixRow) Validate() error {
	if r.Name == "" {
		return errors.New("row without a name")
	}

	if !r.Kind.Valid() {
		return fmt.Errorf("row %s: unknown kind %q", r.Name, r.Kind)
	}

	if _, err := m.ParseCompareMode(string(r.Compare)); err != nil {
		return fmt.Errorf("row %s: %w", r.Name, err)
	}

	cfg := r.Config
	if cfg.ColorMode == m.ColorsManual && cfg.ColorFile == "" {
		// filled from the run fixtures
		cfg.ColorFile = "colors"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("row %s: %w", r.Name, err)
	}

	if r.Config.ColorMode == m.ColorsNone && r.Kind != m.RowAddColors {
		return fmt.Errorf("row %s: an uncolored index has no color matrix to compare", r.Name)
	}

	return nil
}

// CompareMode returns the row's explicit mode, defaulting to exact for rows
// whose dumps both come from the subject and to multiset otherwise.
func (r MatrixRow) CompareMode() m.CompareMode {
	if r.Compare != "" {
		return r.Compare
	}

	if r.Kind == m.RowRoundTrip || r.Kind == m.RowDeterminism {
		return m.CompareExact
	}

	return m.CompareMultiset
}

// DefaultBuildMatrix is the literal table swept by verify. Every color mode
// and structure is built directly and through a transform, at small and
// large k, with and without reverse complements.
func DefaultBuildMatrix() []MatrixRow {
	return []MatrixRow{
		{Name: "k31-fw-seq-sdsl", Kind: m.RowBuild, Config: cfg(31, 5, false, m.ColorsSequence, m.SDSLHybrid)},
		{Name: "k31-rc-seq-sdsl", Kind: m.RowBuild, Config: cfg(31, 5, true, m.ColorsSequence, m.SDSLHybrid)},
		{Name: "k31-fw-seq-roaring", Kind: m.RowBuild, Config: cfg(31, 5, false, m.ColorsSequence, m.Roaring)},
		{Name: "k31-rc-seq-roaring", Kind: m.RowTransform, Config: cfg(31, 5, true, m.ColorsSequence, m.Roaring)},
		{Name: "k31-rc-file-sdsl", Kind: m.RowBuild, Config: cfg(31, 5, true, m.ColorsFile, m.SDSLHybrid)},
		{Name: "k31-rc-file-roaring", Kind: m.RowBuild, Config: cfg(31, 5, true, m.ColorsFile, m.Roaring)},
		{Name: "k31-fw-file-sdsl", Kind: m.RowTransform, Config: cfg(31, 5, false, m.ColorsFile, m.SDSLHybrid)},
		{Name: "k31-d1-fw-manual-sdsl", Kind: m.RowBuild, Config: cfg(31, 1, false, m.ColorsManual, m.SDSLHybrid)},
		{Name: "k31-d1-fw-manual-roaring", Kind: m.RowTransform, Config: cfg(31, 1, false, m.ColorsManual, m.Roaring)},
		{Name: "k31-rc-manual-roaring", Kind: m.RowBuild, Config: cfg(31, 5, true, m.ColorsManual, m.Roaring)},
		{Name: "k100-rc-seq-sdsl", Kind: m.RowBuild, Config: cfg(100, 5, true, m.ColorsSequence, m.SDSLHybrid)},
		{Name: "k100-fw-file-roaring", Kind: m.RowTransform, Config: cfg(100, 5, false, m.ColorsFile, m.Roaring)},
		{Name: "k100-rc-manual-sdsl", Kind: m.RowTransform, Config: cfg(100, 5, true, m.ColorsManual, m.SDSLHybrid)},
		{Name: "k31-rc-none-then-file-sdsl", Kind: m.RowAddColors, Config: cfg(31, 5, true, m.ColorsFile, m.SDSLHybrid)},
		{Name: "k31-fw-none-then-file-roaring", Kind: m.RowAddColors, Config: cfg(31, 5, false, m.ColorsFile, m.Roaring)},
		{Name: "k31-rc-seq-sdsl-roundtrip", Kind: m.RowRoundTrip, Config: cfg(31, 5, true, m.ColorsSequence, m.SDSLHybrid), Compare: m.CompareExact},
		{Name: "k31-fw-file-roaring-roundtrip", Kind: m.RowRoundTrip, Config: cfg(31, 5, false, m.ColorsFile, m.Roaring), Compare: m.CompareExact},
		{Name: "k31-rc-seq-roaring-threads", Kind: m.RowDeterminism, Config: cfg(31, 5, true, m.ColorsSequence, m.Roaring), Compare: m.CompareExact},
	}
}

func cfg(k, d int, rc bool, colors m.ColorMode, structure m.StructureType) m.BuildConfiguration {
	return m.BuildConfiguration{K: k, D: d, ReverseComplement: rc, ColorMode: colors, Structure: structure}
}

type matrixFile struct {
	Rows []MatrixRow `yaml:"rows"`
}

// LoadMatrix reads a YAML build matrix. Unknown fields are rejected.
func LoadMatrix(path m.Path) ([]MatrixRow, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read matrix %s: %w", path, err)
	}

	return ParseMatrix(data)
}

// ParseMatrix decodes and validates a YAML build matrix.
func ParseMatrix(data []byte) ([]MatrixRow, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file matrixFile
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	if len(file.Rows) == 0 {
		return nil, errors.New("matrix has no rows")
	}

	seen := make(map[string]struct{}, len(file.Rows))

	for _, row := range file.Rows {
		if err := row.Validate(); err != nil {
			return nil, err
		}

		if _, dup := seen[row.Name]; dup {
			return nil, fmt.Errorf("duplicate row name %q", row.Name)
		}

		seen[row.Name] = struct{}{}
	}

	return file.Rows, nil
}

// RowSelection narrows a sweep to a shard and a name filter.
type RowSelection struct {
	ShardIndex  int
	TotalShards int
	Only        *regexp.Regexp
}

// Select returns the rows of a sweep this selection runs, in matrix order,
// paired with their index in the full matrix. Shards take rows round-robin.
func (s RowSelection) Select(names []string) []int {
	var picked []int

	for i, name := range names {
		if s.Only != nil && !s.Only.MatchString(name) {
			continue
		}

		if s.TotalShards > 1 && i%s.TotalShards != s.ShardIndex {
			continue
		}

		picked = append(picked, i)
	}

	return picked
}

// rowNames lists the row names of a matrix.
func rowNames(rows []MatrixRow) []string {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}

	return names
}
