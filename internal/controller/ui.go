// Package controller renders sweep progress and verification reports.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSweep StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	title string
}

// WithSweepMode shows live progress while rows run.
func WithSweepMode(title string) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSweep
		c.title = title
	}
}

// WithViewMode shows a stored report and waits for the user to close it.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// RunInfo describes the sweep about to start.
type RunInfo struct {
	RunID      string
	Rows       int
	Parallel   int
	ShardIndex int
	ShardCount int
	WorkDir    m.Path
}

// MatrixEntry is one selected row of a listed matrix.
type MatrixEntry struct {
	Index   int
	Name    string
	Kind    m.RowKind
	Config  string
	Compare m.CompareMode
}

// UI displays the progress and outcome of a sweep.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayRowStarted(ctx context.Context, index int, name string, worker int)
	DisplayRowCompleted(ctx context.Context, row m.RowReport)
	DisplayReport(ctx context.Context, report m.RunReport) error
	DisplayComparison(ctx context.Context, result m.ComparisonResult) error
	DisplayMatrix(ctx context.Context, entries []MatrixEntry) error
}

// NewUI returns the interactive TUI when interactive is set and the plain
// table output otherwise. interrupt is called when the user aborts the TUI.
func NewUI(cmd *cobra.Command, interactive bool, interrupt func()) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout(), interrupt)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
