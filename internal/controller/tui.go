package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	recentRows       = 8
	maxProgressWidth = 60
	viewReserved     = 6
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output    io.Writer
	interrupt func()

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI. interrupt is called when the user aborts a
// running sweep and may be nil.
func NewTUI(output io.Writer, interrupt func()) *TUI {
	return &TUI{output: output, interrupt: interrupt}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{mode: ModeSweep, title: "kmeroracle"}
	for _, option := range options {
		option(&cfg)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	t.program = tea.NewProgram(newSweepModel(cfg, t.interrupt), tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("TUI stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the program and waits for the terminal to be restored.
func (t *TUI) Close(ctx context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Wait blocks until the user closes the UI.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.current()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayRunInfo sets the header of the progress view.
func (t *TUI) DisplayRunInfo(_ context.Context, info RunInfo) {
	t.send(runInfoMsg(info))
}

// DisplayRowStarted marks a row as running.
func (t *TUI) DisplayRowStarted(_ context.Context, index int, name string, worker int) {
	t.send(rowStartedMsg{index: index, name: name, worker: worker})
}

// DisplayRowCompleted moves a row to the completed list.
func (t *TUI) DisplayRowCompleted(_ context.Context, row m.RowReport) {
	t.send(rowCompletedMsg(row))
}

// DisplayReport shows the final summary.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(reportMsg(report))

	return nil
}

// DisplayComparison shows the verdict of a single comparison.
func (t *TUI) DisplayComparison(ctx context.Context, result m.ComparisonResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(comparisonMsg(result))

	return nil
}

// DisplayMatrix shows the rows a sweep would run.
func (t *TUI) DisplayMatrix(ctx context.Context, entries []MatrixEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(matrixMsg(entries))

	return nil
}

func (t *TUI) current() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	if program, _ := t.current(); program != nil {
		program.Send(msg)
	}
}

type (
	runInfoMsg      RunInfo
	rowCompletedMsg m.RowReport
	reportMsg       m.RunReport
	comparisonMsg   m.ComparisonResult
	matrixMsg       []MatrixEntry
	rowStartedMsg   struct {
		index  int
		name   string
		worker int
	}
)

// sweepModel is the Bubble Tea model behind the TUI.
type sweepModel struct {
	mode      StartMode
	title     string
	interrupt func()

	spinner  spinner.Model
	progress progress.Model

	info       RunInfo
	running    map[int]string
	completed  []m.RowReport
	report     *m.RunReport
	comparison *m.ComparisonResult
	matrix     []MatrixEntry

	height   int
	offset   int
	quitting bool
}

func newSweepModel(cfg StartConfig, interrupt func()) sweepModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = faintStyle

	return sweepModel{
		mode:      cfg.mode,
		title:     cfg.title,
		interrupt: interrupt,
		spinner:   sp,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxProgressWidth)),
		running:   make(map[int]string),
	}
}

func (sm sweepModel) Init() tea.Cmd {
	if sm.mode == ModeSweep {
		return sm.spinner.Tick
	}

	return nil
}

func (sm sweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.progress.Width = min(max(msg.Width-10, 10), maxProgressWidth)

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd

	case runInfoMsg:
		sm.info = RunInfo(msg)

	case rowStartedMsg:
		sm.running[msg.index] = msg.name

	case rowCompletedMsg:
		delete(sm.running, msg.Index)
		sm.completed = append(sm.completed, m.RowReport(msg))

	case reportMsg:
		report := m.RunReport(msg)
		sm.report = &report

		if sm.mode == ModeSweep {
			sm.quitting = true
			return sm, tea.Quit
		}

	case comparisonMsg:
		result := m.ComparisonResult(msg)
		sm.comparison = &result
		sm.quitting = true

		return sm, tea.Quit

	case matrixMsg:
		sm.matrix = []MatrixEntry(msg)
		sm.quitting = true

		return sm, tea.Quit
	}

	return sm, nil
}

//nolint:exhaustive // We only handle specific navigation keys
func (sm sweepModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return sm.quit()
	default:
	}

	switch msg.String() {
	case "q":
		return sm.quit()
	case "down", "j":
		sm.offset = min(sm.offset+1, sm.maxOffset())
	case "up", "k":
		sm.offset = max(sm.offset-1, 0)
	case "g", "home":
		sm.offset = 0
	case "G", "end":
		sm.offset = sm.maxOffset()
	}

	return sm, nil
}

func (sm sweepModel) quit() (tea.Model, tea.Cmd) {
	if sm.mode == ModeSweep && sm.report == nil && sm.interrupt != nil {
		sm.interrupt()
	}

	sm.quitting = true

	return sm, tea.Quit
}

func (sm sweepModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(sm.title))
	b.WriteString("\n")

	switch {
	case sm.comparison != nil:
		b.WriteString(describeComparison(*sm.comparison))
		b.WriteString("\n")
	case sm.matrix != nil:
		b.WriteString(renderMatrixTable(sm.matrix))
	case sm.report != nil:
		sm.renderReport(&b)
	default:
		sm.renderProgress(&b)
	}

	return b.String()
}

func (sm sweepModel) renderProgress(b *strings.Builder) {
	if sm.info.RunID != "" {
		fmt.Fprintf(b, "%s\n", faintStyle.Render("run "+sm.info.RunID))
	}

	done := len(sm.completed)

	fraction := 0.0
	if sm.info.Rows > 0 {
		fraction = float64(done) / float64(sm.info.Rows)
	}

	fmt.Fprintf(b, "\n%s %d/%d rows\n", sm.spinner.View(), done, sm.info.Rows)
	fmt.Fprintf(b, "%s\n\n", sm.progress.ViewAs(fraction))

	indexes := make([]int, 0, len(sm.running))
	for index := range sm.running {
		indexes = append(indexes, index)
	}

	sort.Ints(indexes)

	for _, index := range indexes {
		fmt.Fprintf(b, "  %s #%d %s\n", sm.spinner.View(), index, sm.running[index])
	}

	start := max(len(sm.completed)-recentRows, 0)
	for _, row := range sm.completed[start:] {
		fmt.Fprintf(b, "  %s #%d %s %s\n", renderStatus(row.Status), row.Index, row.Name,
			faintStyle.Render(row.Duration.Round(time.Millisecond).String()))
	}

	if !sm.quitting {
		fmt.Fprintf(b, "\n%s\n", faintStyle.Render("q: abort"))
	}
}

func (sm sweepModel) renderReport(b *strings.Builder) {
	lines := sm.reportLines()

	if sm.mode == ModeView && sm.height > viewReserved && len(lines) > sm.height-viewReserved {
		end := min(sm.offset+sm.height-viewReserved, len(lines))
		lines = lines[sm.offset:end]
	}

	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	if sm.mode == ModeView && !sm.quitting {
		fmt.Fprintf(b, "\n%s\n", faintStyle.Render("↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
	}
}

func (sm sweepModel) reportLines() []string {
	if sm.report == nil {
		return nil
	}

	content := renderReportTable(*sm.report)

	for _, row := range sm.report.Rows {
		if row.Status != m.Passed {
			content += fmt.Sprintf("\n%s %s\n%s\n", renderStatus(row.Status), row.Name, indent(firstProblem(row), "  "))
		}
	}

	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

func (sm sweepModel) maxOffset() int {
	if sm.height <= viewReserved {
		return 0
	}

	return max(len(sm.reportLines())-(sm.height-viewReserved), 0)
}
