package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

func update(t *testing.T, model sweepModel, msg tea.Msg) (sweepModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)

	sm, ok := next.(sweepModel)
	require.True(t, ok, "Update returned %T", next)

	return sm, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSweepModel_Progress(t *testing.T) {
	model := newSweepModel(StartConfig{mode: ModeSweep, title: "kmeroracle verify"}, nil)
	require.NotNil(t, model.Init())

	model, _ = update(t, model, runInfoMsg{RunID: "run-1", Rows: 3, Parallel: 2})
	model, _ = update(t, model, rowStartedMsg{index: 1, name: "k31-rc-seq-sdsl", worker: 0})
	model, _ = update(t, model, rowStartedMsg{index: 0, name: "k31-fw-seq-sdsl", worker: 1})

	view := model.View()
	assert.Contains(t, view, "kmeroracle verify")
	assert.Contains(t, view, "run run-1")
	assert.Contains(t, view, "0/3 rows")
	assert.Contains(t, view, "q: abort")
	assert.Less(t, strings.Index(view, "#0 k31-fw-seq-sdsl"), strings.Index(view, "#1 k31-rc-seq-sdsl"), "running rows are listed by index")

	model, cmd := update(t, model, rowCompletedMsg{Index: 1, Name: "k31-rc-seq-sdsl", Status: m.Failed, Duration: time.Second})
	assert.Nil(t, cmd)

	view = model.View()
	assert.Contains(t, view, "1/3 rows")
	assert.Contains(t, view, "failed #1 k31-rc-seq-sdsl")
	assert.Len(t, model.running, 1)
}

func TestSweepModel_RecentRowsOnly(t *testing.T) {
	model := newSweepModel(StartConfig{mode: ModeSweep, title: "t"}, nil)
	model, _ = update(t, model, runInfoMsg{Rows: 20})

	for i := 0; i < 12; i++ {
		model, _ = update(t, model, rowCompletedMsg{Index: i, Name: fmt.Sprintf("row-%02d", i), Status: m.Passed})
	}

	view := model.View()
	assert.Contains(t, view, "12/20 rows")
	assert.NotContains(t, view, "row-03")
	assert.Contains(t, view, "row-04")
	assert.Contains(t, view, "row-11")
}

func TestSweepModel_ReportEndsSweep(t *testing.T) {
	model := newSweepModel(StartConfig{mode: ModeSweep, title: "t"}, nil)

	model, cmd := update(t, model, reportMsg(sampleRunReport()))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.quitting)

	view := model.View()
	assert.Contains(t, view, "k31-rc-file-roaring")
	assert.Contains(t, view, "set-mismatch at line 3")
	assert.NotContains(t, view, "q: abort")
}

func TestSweepModel_ViewModeWaitsAndScrolls(t *testing.T) {
	report := m.RunReport{RunID: "r"}
	for i := 0; i < 30; i++ {
		report.Rows = append(report.Rows, m.RowReport{Index: i, Name: fmt.Sprintf("row-%02d", i), Status: m.Passed})
	}

	model := newSweepModel(StartConfig{mode: ModeView, title: "report"}, nil)
	assert.Nil(t, model.Init())

	model, _ = update(t, model, tea.WindowSizeMsg{Width: 120, Height: 16})
	model, cmd := update(t, model, reportMsg(report))
	assert.Nil(t, cmd, "view mode stays open")

	view := model.View()
	assert.Contains(t, view, "row-00")
	assert.NotContains(t, view, "row-29")
	assert.Contains(t, view, "q: quit")

	model, _ = update(t, model, keyRune('j'))
	assert.Equal(t, 1, model.offset)

	model, _ = update(t, model, keyRune('k'))
	model, _ = update(t, model, keyRune('k'))
	assert.Equal(t, 0, model.offset)

	model, _ = update(t, model, keyRune('G'))
	assert.Equal(t, model.maxOffset(), model.offset)
	assert.Positive(t, model.offset)
	assert.Contains(t, model.View(), "row-29")

	model, _ = update(t, model, keyRune('g'))
	assert.Equal(t, 0, model.offset)

	_, cmd = update(t, model, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSweepModel_QuitInterruptsRunningSweep(t *testing.T) {
	tests := []struct {
		name          string
		mode          StartMode
		withReport    bool
		key           tea.KeyMsg
		wantInterrupt bool
	}{
		{name: "q during sweep", mode: ModeSweep, key: keyRune('q'), wantInterrupt: true},
		{name: "ctrl+c during sweep", mode: ModeSweep, key: tea.KeyMsg{Type: tea.KeyCtrlC}, wantInterrupt: true},
		{name: "esc after report", mode: ModeSweep, withReport: true, key: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "q in view mode", mode: ModeView, key: keyRune('q')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interrupted := false
			model := newSweepModel(StartConfig{mode: tt.mode, title: "t"}, func() { interrupted = true })

			if tt.withReport {
				model.report = &m.RunReport{}
			}

			model, cmd := update(t, model, tt.key)
			require.NotNil(t, cmd)
			assert.True(t, model.quitting)
			assert.Equal(t, tt.wantInterrupt, interrupted)
		})
	}
}

func TestSweepModel_ComparisonAndMatrix(t *testing.T) {
	model := newSweepModel(StartConfig{mode: ModeSweep, title: "kmeroracle compare"}, nil)

	model, cmd := update(t, model, comparisonMsg(m.FailResult(m.CompareExact, m.SchemaMismatch, 0, "line counts differ")))
	require.NotNil(t, cmd)
	assert.Contains(t, model.View(), "schema-mismatch at line 0")

	model = newSweepModel(StartConfig{mode: ModeSweep, title: "kmeroracle list"}, nil)

	model, cmd = update(t, model, matrixMsg([]MatrixEntry{{Index: 3, Name: "k31-rc-seq-roaring", Kind: m.RowTransform, Compare: m.CompareMultiset}}))
	require.NotNil(t, cmd)
	assert.Contains(t, model.View(), "k31-rc-seq-roaring")
}

func TestSweepModel_WindowSize(t *testing.T) {
	model := newSweepModel(StartConfig{mode: ModeSweep}, nil)

	model, _ = update(t, model, tea.WindowSizeMsg{Width: 30, Height: 40})
	assert.Equal(t, 20, model.progress.Width)
	assert.Equal(t, 40, model.height)

	model, _ = update(t, model, tea.WindowSizeMsg{Width: 300, Height: 40})
	assert.Equal(t, maxProgressWidth, model.progress.Width)
}

func TestTUI_NotStarted(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf, nil)
	ctx := context.Background()

	tui.DisplayRunInfo(ctx, RunInfo{RunID: "x"})
	tui.DisplayRowStarted(ctx, 0, "x", 0)
	tui.DisplayRowCompleted(ctx, m.RowReport{})
	require.NoError(t, tui.DisplayReport(ctx, m.RunReport{}))
	tui.Wait(ctx)
	tui.Close(ctx)

	assert.Empty(t, buf.String())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	require.ErrorIs(t, tui.Start(cancelled), context.Canceled)
	require.ErrorIs(t, tui.DisplayComparison(cancelled, m.ComparisonResult{}), context.Canceled)
	require.ErrorIs(t, tui.DisplayMatrix(cancelled, nil), context.Canceled)
}
