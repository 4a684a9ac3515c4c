package model

import (
	"crypto/sha256"
	"fmt"
)

// Path represents a file system path.
type Path string

// InputFileSet is an ordered, immutable list of input files.
//
// The position of a file is its implicit color (file-colors mode) and fixes the
// order in which per-sequence colors are assigned, so two sets with the same
// members in a different order are different inputs.
type InputFileSet struct {
	paths []Path
}

// NewInputFileSet copies paths into a new InputFileSet.
func NewInputFileSet(paths []Path) InputFileSet {
	cp := make([]Path, len(paths))
	copy(cp, paths)

	return InputFileSet{paths: cp}
}

// Paths returns a copy of the ordered paths.
func (s InputFileSet) Paths() []Path {
	cp := make([]Path, len(s.paths))
	copy(cp, s.paths)

	return cp
}

// Len returns the number of files in the set.
func (s InputFileSet) Len() int {
	return len(s.paths)
}

// Fingerprint identifies the logical input: same paths in the same order.
func (s InputFileSet) Fingerprint() string {
	h := sha256.New()
	for _, p := range s.paths {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}

	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
