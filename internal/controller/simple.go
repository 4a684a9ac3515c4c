package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// SimpleUI implements UI by printing to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayRunInfo prints the run id and the amount of work.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Run %s: %d row(s) with %d worker(s)", info.RunID, info.Rows, max(info.Parallel, 1))

	if info.ShardCount > 1 {
		s.printf(" (shard %d/%d)", info.ShardIndex, info.ShardCount)
	}

	s.printf("\n")

	if info.WorkDir != "" {
		s.printf("Artifacts: %s\n", info.WorkDir)
	}
}

// DisplayRowStarted prints the row about to run.
func (s *SimpleUI) DisplayRowStarted(ctx context.Context, index int, name string, _ int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Starting #%d %s\n", index, name)
}

// DisplayRowCompleted prints the row status and the first problem, if any.
func (s *SimpleUI) DisplayRowCompleted(ctx context.Context, row m.RowReport) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Completed #%d %s -> %s (%s)\n", row.Index, row.Name, renderStatus(row.Status), row.Duration.Round(time.Millisecond))

	if problem := firstProblem(row); problem != "" {
		s.printf("%s\n", indent(problem, "    "))
	}
}

// DisplayReport prints the summary table of a run.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderReportTable(report))

	for _, row := range report.Rows {
		if row.Status == m.Passed {
			continue
		}

		s.printf("\n%s %s\n%s\n", renderStatus(row.Status), row.Name, indent(firstProblem(row), "  "))
	}

	return nil
}

// DisplayComparison prints the verdict of a single comparison.
func (s *SimpleUI) DisplayComparison(ctx context.Context, result m.ComparisonResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", describeComparison(result))

	return nil
}

// DisplayMatrix prints the rows a sweep would run.
func (s *SimpleUI) DisplayMatrix(ctx context.Context, entries []MatrixEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderMatrixTable(entries))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderReportTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Row", "Kind", "Config", "Status", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT,
	})

	var total time.Duration

	for _, row := range report.Rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Index),
			row.Name,
			string(row.Kind),
			row.ConfigKey,
			renderStatus(row.Status),
			row.Duration.Round(time.Millisecond).String(),
		})

		total += row.Duration
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total %d", len(report.Rows)),
		"",
		fmt.Sprintf("passed %d failed %d errored %d", report.Count(m.Passed), report.Count(m.Failed), report.Count(m.Errored)),
		"",
		total.Round(time.Millisecond).String(),
	})

	table.Render()

	return tableBuffer.String()
}

func renderMatrixTable(entries []MatrixEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Row", "Kind", "Config", "Compare"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, entry := range entries {
		table.Append([]string{
			fmt.Sprintf("%d", entry.Index),
			entry.Name,
			string(entry.Kind),
			entry.Config,
			string(entry.Compare),
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(entries)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func describeComparison(result m.ComparisonResult) string {
	if result.Pass {
		return fmt.Sprintf("%s %s: %s matches %s", passedStyle.Render("PASS"), result.Mode, result.Subject, result.Reference)
	}

	where := "artifacts"
	if result.Line >= 0 {
		where = fmt.Sprintf("line %d", result.Line)
	}

	return fmt.Sprintf("%s %s: %s at %s\n%s", failedStyle.Render("FAIL"), result.Mode, result.Violation, where, indent(result.Detail, "  "))
}

func firstProblem(row m.RowReport) string {
	if row.Error != "" {
		return row.Error
	}

	for _, c := range row.Comparisons {
		if !c.Pass {
			return describeComparison(c)
		}
	}

	return ""
}

func indent(text, prefix string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}
