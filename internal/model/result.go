package model

import "fmt"

// CompareMode selects the equality the oracle enforces.
type CompareMode string

const (
	// CompareMultiset matches keys by position and integers as multisets.
	CompareMultiset CompareMode = "multiset"
	// CompareSorted additionally requires the subject's integers to be sorted
	// and its lines to follow the reference's line order.
	CompareSorted CompareMode = "sorted"
	// CompareExact requires identical lines in identical order.
	CompareExact CompareMode = "exact"
	// CompareUnorderedLines matches lines by key regardless of position.
	CompareUnorderedLines CompareMode = "unordered-lines"
	// CompareSortedHits matches lines by key regardless of position and
	// requires the subject's integers on every line to be sorted.
	CompareSortedHits CompareMode = "sorted-hits"
)

// ParseCompareMode parses a mode name.
func ParseCompareMode(value string) (CompareMode, error) {
	switch mode := CompareMode(value); mode {
	case CompareMultiset, CompareSorted, CompareExact, CompareUnorderedLines, CompareSortedHits:
		return mode, nil
	case "":
		return CompareMultiset, nil
	}

	return "", fmt.Errorf("unknown compare mode %q", value)
}

// Violation names the invariant a failing comparison broke.
type Violation string

const (
	// NoViolation marks a passing comparison.
	NoViolation Violation = ""
	// SchemaMismatch: line counts differ, keys differ or a line is malformed.
	SchemaMismatch Violation = "schema-mismatch"
	// SetMismatch: the integer multisets of a line differ.
	SetMismatch Violation = "set-mismatch"
	// OrderViolation: promised ordering does not hold.
	OrderViolation Violation = "order-violation"
)

func (v Violation) sentinel() error {
	switch v {
	case SchemaMismatch:
		return ErrSchemaMismatch
	case SetMismatch:
		return ErrSetMismatch
	case OrderViolation:
		return ErrOrderViolation
	case NoViolation:
	}

	return nil
}

// ComparisonResult is the oracle's verdict on one subject/reference pair.
type ComparisonResult struct {
	Pass      bool        `yaml:"pass"`
	Mode      CompareMode `yaml:"mode"`
	Violation Violation   `yaml:"violation,omitempty"`
	Line      int         `yaml:"line"`
	Detail    string      `yaml:"detail,omitempty"`
	Subject   Path        `yaml:"subject"`
	Reference Path        `yaml:"reference"`
}

// PassResult builds a passing result.
func PassResult(mode CompareMode, subject, reference Path) ComparisonResult {
	return ComparisonResult{Pass: true, Mode: mode, Line: -1, Subject: subject, Reference: reference}
}

// FailResult builds a failing result for the given line.
func FailResult(mode CompareMode, violation Violation, line int, detail string) ComparisonResult {
	return ComparisonResult{Mode: mode, Violation: violation, Line: line, Detail: detail}
}

// Err returns nil for a passing result and a *MismatchError otherwise.
func (r ComparisonResult) Err() error {
	if r.Pass {
		return nil
	}

	return &MismatchError{Violation: r.Violation, Line: r.Line, Detail: r.Detail}
}
