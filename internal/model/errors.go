package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProvisioning reports a missing or empty corpus or an unusable fixture.
	ErrProvisioning = errors.New("provisioning error")
	// ErrCommandFailure reports an external process that failed or could not start.
	ErrCommandFailure = errors.New("command failure")
	// ErrSchemaMismatch reports differing line counts, keys or malformed lines.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrSetMismatch reports differing integer multisets on a line.
	ErrSetMismatch = errors.New("set mismatch")
	// ErrOrderViolation reports unsorted output where sorted output was promised.
	ErrOrderViolation = errors.New("order violation")
)

// CommandError describes a failed external command.
type CommandError struct {
	Program  string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s", e.Program, strings.Join(e.Args, " "))

	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	if tail := strings.TrimSpace(e.Stderr); tail != "" {
		fmt.Fprintf(&b, "\nstderr: %s", tail)
	}

	return b.String()
}

// Is makes errors.Is(err, ErrCommandFailure) hold for every CommandError.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailure
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// MismatchError is the error form of a failing ComparisonResult.
type MismatchError struct {
	Violation Violation
	Line      int
	Detail    string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.Violation, e.Line, e.Detail)
}

func (e *MismatchError) Unwrap() error {
	return e.Violation.sentinel()
}
