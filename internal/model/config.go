// Package model defines the value types shared by the verification harness.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorMode selects how colors are assigned to k-mers during a build.
type ColorMode string

const (
	// ColorsSequence gives every input sequence its own color.
	ColorsSequence ColorMode = "sequence-colors"
	// ColorsFile gives every input file its own color.
	ColorsFile ColorMode = "file-colors"
	// ColorsManual reads one color per input record from a color file.
	ColorsManual ColorMode = "manual-colors"
	// ColorsNone builds the graph without a coloring.
	ColorsNone ColorMode = "no-colors"
)

// ColorModes lists every color mode in matrix order.
var ColorModes = []ColorMode{ColorsSequence, ColorsFile, ColorsManual, ColorsNone}

// Valid reports whether c is a known color mode.
func (c ColorMode) Valid() bool {
	for _, mode := range ColorModes {
		if c == mode {
			return true
		}
	}

	return false
}

// StructureType is the on-disk encoding of the k-mer to color-set mapping.
type StructureType string

const (
	// SDSLHybrid is the hybrid bit-vector / integer list encoding.
	SDSLHybrid StructureType = "sdsl-hybrid"
	// Roaring is the compressed bitmap encoding.
	Roaring StructureType = "roaring"
)

// StructureTypes lists every coloring structure in matrix order.
var StructureTypes = []StructureType{SDSLHybrid, Roaring}

// Valid reports whether s is a known structure type.
func (s StructureType) Valid() bool {
	return s == SDSLHybrid || s == Roaring
}

// Other returns the structure a transform from s converts into.
func (s StructureType) Other() StructureType {
	if s == Roaring {
		return SDSLHybrid
	}

	return Roaring
}

// BuildConfiguration drives exactly one build invocation.
type BuildConfiguration struct {
	K                 int           `yaml:"k"`
	D                 int           `yaml:"d"`
	ReverseComplement bool          `yaml:"rc"`
	ColorMode         ColorMode     `yaml:"colors"`
	ColorFile         Path          `yaml:"color_file,omitempty"`
	Structure         StructureType `yaml:"structure"`
}

// Validate checks that the configuration can be handed to the build stage.
func (c BuildConfiguration) Validate() error {
	if c.K <= 0 {
		return fmt.Errorf("k must be positive, got %d", c.K)
	}

	if c.D <= 0 {
		return fmt.Errorf("d must be positive, got %d", c.D)
	}

	if !c.ColorMode.Valid() {
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}

	if !c.Structure.Valid() {
		return fmt.Errorf("unknown coloring structure type %q", c.Structure)
	}

	if c.ColorMode == ColorsManual && c.ColorFile == "" {
		return fmt.Errorf("manual colors need a color file")
	}

	return nil
}

// Key returns a filename-safe string unique to the configuration's parameters.
func (c BuildConfiguration) Key() string {
	strand := "fw"
	if c.ReverseComplement {
		strand = "rc"
	}

	return fmt.Sprintf("k%d-d%d-%s-%s-%s", c.K, c.D, strand, c.ColorMode, c.Structure)
}

// WithStructure returns a copy of c using structure s.
func (c BuildConfiguration) WithStructure(s StructureType) BuildConfiguration {
	c.Structure = s
	return c
}

// QueryParameterRow is one row of the query parameter table.
type QueryParameterRow struct {
	Threshold         float64 `yaml:"threshold"`
	IgnoreUnknown     bool    `yaml:"ignore_unknown"`
	ReverseComplement bool    `yaml:"rc"`
}

// Key mirrors the row as it appears in the parameter table, e.g. "0.9-no-yes".
func (r QueryParameterRow) Key() string {
	return fmt.Sprintf("%s-%s-%s", FormatThreshold(r.Threshold), yesNo(r.IgnoreUnknown), yesNo(r.ReverseComplement))
}

// QueryOptions are the query flags that do not come from the parameter table.
type QueryOptions struct {
	SortHits        bool    `yaml:"sort_hits"`
	SortOutputLines bool    `yaml:"sort_output_lines"`
	BufferSizeMB    float64 `yaml:"buffer_size_mb"`
}

// FormatThreshold renders a float flag value without trailing zeros.
func FormatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseYesNo parses the yes/no columns of the parameter table.
func ParseYesNo(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false", "":
		return false, nil
	}

	return false, fmt.Errorf("expected yes or no, got %q", value)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
