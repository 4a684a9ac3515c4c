package model

import "fmt"

// IndexArtifact is the path prefix of an index produced by a build stage.
// It is passed to later stages and never inspected.
type IndexArtifact struct {
	Prefix Path
	Config BuildConfiguration
	Inputs string // InputFileSet fingerprint the index was built from
}

// DumpKind distinguishes the two line-oriented dump formats.
type DumpKind string

const (
	// ColorMatrixDump lines are "<k-mer> <color ids>".
	ColorMatrixDump DumpKind = "color-matrix"
	// PseudoalignmentDump lines are "<query id> <hit ids>".
	PseudoalignmentDump DumpKind = "pseudoalignment"
)

// Origin records the semantic parameters a dump was produced from.
type Origin struct {
	K                 int
	ReverseComplement bool
	ColorMode         ColorMode
	Inputs            string
	Query             string // query parameter key, empty for color-matrix dumps
}

// OriginOf derives the semantic origin of a build configuration over inputs.
func OriginOf(cfg BuildConfiguration, inputs string) Origin {
	return Origin{
		K:                 cfg.K,
		ReverseComplement: cfg.ReverseComplement,
		ColorMode:         cfg.ColorMode,
		Inputs:            inputs,
	}
}

// DumpArtifact is a text file produced once per comparison point.
type DumpArtifact struct {
	Path   Path
	Kind   DumpKind
	Origin Origin
}

// SameOrigin reports whether two dumps may be compared. Color mode is only
// checked when both sides declare one: the manual and file color modes are
// translated to each other for the reference, so the harness records the
// logical mode on both.
func SameOrigin(a, b DumpArtifact) error {
	if a.Kind != b.Kind {
		return fmt.Errorf("dump kinds differ: %s vs %s", a.Kind, b.Kind)
	}

	if a.Origin.K != b.Origin.K {
		return fmt.Errorf("k differs: %d vs %d", a.Origin.K, b.Origin.K)
	}

	if a.Origin.ReverseComplement != b.Origin.ReverseComplement {
		return fmt.Errorf("reverse-complement flag differs: %t vs %t", a.Origin.ReverseComplement, b.Origin.ReverseComplement)
	}

	if a.Origin.Inputs != b.Origin.Inputs {
		return fmt.Errorf("input file sets differ: %s vs %s", a.Origin.Inputs, b.Origin.Inputs)
	}

	if a.Origin.ColorMode != "" && b.Origin.ColorMode != "" && a.Origin.ColorMode != b.Origin.ColorMode {
		return fmt.Errorf("color modes differ: %s vs %s", a.Origin.ColorMode, b.Origin.ColorMode)
	}

	if a.Origin.Query != b.Origin.Query {
		return fmt.Errorf("query parameters differ: %s vs %s", a.Origin.Query, b.Origin.Query)
	}

	return nil
}
