package model

import (
	"time"
)

// RowKind is the pipeline shape a matrix row runs.
type RowKind string

const (
	// RowBuild builds directly in the row's structure and compares against the reference.
	RowBuild RowKind = "build"
	// RowTransform builds in the other structure and converts into the row's structure.
	RowTransform RowKind = "transform"
	// RowRoundTrip converts A to B and back to A and requires an exact match.
	RowRoundTrip RowKind = "roundtrip"
	// RowAddColors builds without colors and adds file colors to the loaded graph.
	RowAddColors RowKind = "add-colors"
	// RowDeterminism builds with one and with several threads and requires identical dumps.
	RowDeterminism RowKind = "determinism"
	// RowQuery runs one query parameter row against the reference.
	RowQuery RowKind = "query"
)

// RowKinds lists the kinds accepted in matrix files.
var RowKinds = []RowKind{RowBuild, RowTransform, RowRoundTrip, RowAddColors, RowDeterminism}

// Valid reports whether k may appear in a build matrix.
func (k RowKind) Valid() bool {
	for _, kind := range RowKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// RowStatus represents the outcome of one matrix row.
type RowStatus int

const (
	// Passed indicates every comparison of the row passed.
	Passed RowStatus = iota
	// Failed indicates at least one comparison failed.
	Failed
	// Errored indicates the pipeline stopped before comparing (command or I/O failure).
	Errored
)

func (s RowStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	}

	return "unknown"
}

// MarshalYAML stores the status by name.
func (s RowStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a status stored by name.
func (s *RowStatus) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	switch name {
	case "passed":
		*s = Passed
	case "failed":
		*s = Failed
	default:
		*s = Errored
	}

	return nil
}

// RowReport is the outcome of one configuration.
type RowReport struct {
	Index       int                `yaml:"index"`
	Name        string             `yaml:"name"`
	Kind        RowKind            `yaml:"kind"`
	ConfigKey   string             `yaml:"config"`
	Status      RowStatus          `yaml:"status"`
	Comparisons []ComparisonResult `yaml:"comparisons,omitempty"`
	Error       string             `yaml:"error,omitempty"`
	Duration    time.Duration      `yaml:"duration"`
}

// Settle derives the row status from its comparisons and error.
func (r *RowReport) Settle(err error) {
	if err != nil {
		r.Status = Errored
		r.Error = err.Error()

		return
	}

	r.Status = Passed

	for _, c := range r.Comparisons {
		if !c.Pass {
			r.Status = Failed
			return
		}
	}
}

// RunReport aggregates every row of one sweep.
type RunReport struct {
	RunID      string      `yaml:"run_id"`
	Command    string      `yaml:"command"`
	Shard      string      `yaml:"shard,omitempty"`
	StartedAt  time.Time   `yaml:"started_at"`
	FinishedAt time.Time   `yaml:"finished_at"`
	Rows       []RowReport `yaml:"rows"`
}

// Count returns how many rows ended with status.
func (r RunReport) Count(status RowStatus) int {
	n := 0

	for _, row := range r.Rows {
		if row.Status == status {
			n++
		}
	}

	return n
}

// Failed reports whether any row failed or errored.
func (r RunReport) Failed() bool {
	return r.Count(Failed)+r.Count(Errored) > 0
}
