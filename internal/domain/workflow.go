// Package domain provides the verification harness: fixtures, pipelines,
// the equivalence oracle and the sweeps that drive them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	"kmeroracle.dev/pkg/kmeroracle/internal/controller"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
	"kmeroracle.dev/pkg/kmeroracle/pkg"
)

const (
	journalFileName = "rows.yaml"
	fixturesDirName = "fixtures"
	queryCorpusName = "queries.fasta.gz"
	queryIndexName  = "query-index/index"
)

// ErrSweepFailed is returned after a sweep in which at least one row failed
// or errored. The full report has been saved and displayed by then.
var ErrSweepFailed = errors.New("sweep failed")

// SweepOptions are shared by the verify and query sweeps.
type SweepOptions struct {
	// Reports is the directory receiving report.yaml; the run directory when empty.
	Reports     m.Path
	Parallel    int
	ShardIndex  int
	TotalShards int
	Only        *regexp.Regexp
	// Clean removes the run's artifacts after a sweep in which every row passed.
	Clean bool
}

// VerifyArgs configures a build matrix sweep.
type VerifyArgs struct {
	SweepOptions
	// Matrix replaces DefaultBuildMatrix when non-empty.
	Matrix []MatrixRow
}

// QueryArgs configures a query sweep.
type QueryArgs struct {
	SweepOptions
	Sweep QuerySweep
	// Index is the configuration of the single index every row queries.
	Index m.BuildConfiguration
	// Query is the query corpus. When empty a mutated corpus is generated from
	// QueryReference, or from the first corpus file.
	Query          m.Path
	QueryReference m.Path
}

// CompareArgs configures a single dump comparison.
type CompareArgs struct {
	Subject   m.Path
	Reference m.Path
	Kind      m.DumpKind
	Mode      m.CompareMode
}

// ViewArgs selects a stored report.
type ViewArgs struct {
	Reports m.Path
}

// MergeArgs selects a directory of shard reports.
type MergeArgs struct {
	Reports m.Path
}

// Workflow runs the harness commands.
type Workflow interface {
	Verify(ctx context.Context, args VerifyArgs) error
	List(ctx context.Context, args VerifyArgs) error
	Query(ctx context.Context, args QueryArgs) error
	Compare(ctx context.Context, args CompareArgs) error
	GenerateQueries(ctx context.Context, params MutationParams) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

// OrchestratorFactory returns the orchestrator of a run directory.
type OrchestratorFactory func(runDir m.Path) Orchestrator

// LocalOrchestratorFactory runs stages through runner.
func LocalOrchestratorFactory(runner adapter.CommandRunnerAdapter, fs adapter.CorpusFSAdapter, settings Settings) OrchestratorFactory {
	return func(runDir m.Path) Orchestrator {
		return NewOrchestrator(runner, fs, settings, runDir)
	}
}

type workflow struct {
	settings      Settings
	fs            adapter.CorpusFSAdapter
	store         adapter.ReportStore
	ui            controller.UI
	provisioner   Provisioner
	oracle        Oracle
	orchestrators OrchestratorFactory
	mutator       *SequenceMutator

	newRunID func() string
	now      func() time.Time
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	settings Settings,
	fs adapter.CorpusFSAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	provisioner Provisioner,
	oracle Oracle,
	orchestrators OrchestratorFactory,
) Workflow {
	return &workflow{
		settings:      settings,
		fs:            fs,
		store:         store,
		ui:            ui,
		provisioner:   provisioner,
		oracle:        oracle,
		orchestrators: orchestrators,
		mutator:       NewSequenceMutator(fs),
		newRunID:      uuid.NewString,
		now:           time.Now,
	}
}

type rowTask struct {
	index     int
	name      string
	kind      m.RowKind
	configKey string
	run       func(ctx context.Context) ([]m.ComparisonResult, error)
}

func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	if err := w.settings.Validate(); err != nil {
		return err
	}

	rows, selected, err := selectMatrix(args)
	if err != nil {
		return err
	}

	runID, runDir := w.newRun()

	fx, err := w.provisioner.Prepare(ctx, w.settings.CorpusDir, w.fs.JoinPath(string(runDir), fixturesDirName))
	if err != nil {
		slog.Error("Failed to provision fixtures", "error", err)
		return err
	}

	orchestrator := w.orchestrators(runDir)
	verifier := NewRoundTripVerifier(orchestrator, w.oracle)

	tasks := make([]rowTask, 0, len(selected))

	for _, i := range selected {
		row := rows[i]
		tasks = append(tasks, rowTask{
			index:     i,
			name:      row.Name,
			kind:      row.Kind,
			configKey: fx.WithColorFile(row.Config).Key(),
			run: func(ctx context.Context) ([]m.ComparisonResult, error) {
				if row.Kind == m.RowRoundTrip {
					result, err := verifier.Verify(ctx, fx.WithColorFile(row.Config), fx, row.Name)
					if err != nil {
						return nil, err
					}

					return []m.ComparisonResult{result}, nil
				}

				pairs, err := orchestrator.RunRow(ctx, row, fx)
				if err != nil {
					return nil, err
				}

				return w.comparePairs(ctx, pairs)
			},
		})
	}

	return w.sweep(ctx, "verify", runID, runDir, tasks, args.SweepOptions)
}

// List displays the matrix rows Verify would run with the same arguments.
func (w *workflow) List(ctx context.Context, args VerifyArgs) error {
	rows, selected, err := selectMatrix(args)
	if err != nil {
		return err
	}

	entries := make([]controller.MatrixEntry, 0, len(selected))
	for _, i := range selected {
		row := rows[i]
		entries = append(entries, controller.MatrixEntry{
			Index:   i,
			Name:    row.Name,
			Kind:    row.Kind,
			Config:  row.Config.Key(),
			Compare: row.CompareMode(),
		})
	}

	if err := w.ui.Start(ctx, controller.WithSweepMode("kmeroracle list")); err != nil {
		return err
	}

	if err := w.ui.DisplayMatrix(ctx, entries); err != nil {
		w.ui.Close(ctx)
		return err
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

func selectMatrix(args VerifyArgs) ([]MatrixRow, []int, error) {
	rows := args.Matrix
	if len(rows) == 0 {
		rows = DefaultBuildMatrix()
	}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, nil, fmt.Errorf("build matrix: %w", err)
		}
	}

	selected := selection(args.SweepOptions).Select(rowNames(rows))
	if len(selected) == 0 {
		return nil, nil, errors.New("no matrix rows selected")
	}

	return rows, selected, nil
}

func (w *workflow) Query(ctx context.Context, args QueryArgs) error {
	if err := w.settings.Validate(); err != nil {
		return err
	}

	sweep := args.Sweep
	if len(sweep.Rows) == 0 {
		sweep.Rows = DefaultQueryTable()
	}

	if mode := sweep.compareMode(); mode != sweep.Compare {
		slog.Info("Query compare mode adjusted to output options", "requested", sweep.Compare, "mode", mode)
		sweep.Compare = mode
	}

	names := make([]string, len(sweep.Rows), len(sweep.Rows)+1)
	for i, row := range sweep.Rows {
		names[i] = row.Key()
	}

	if sweep.checksBuffer() {
		names = append(names, bufferCheckRowName)
	}

	selected := selection(args.SweepOptions).Select(names)
	if len(selected) == 0 {
		return errors.New("no query rows selected")
	}

	runID, runDir := w.newRun()

	fx, err := w.provisioner.Prepare(ctx, w.settings.CorpusDir, w.fs.JoinPath(string(runDir), fixturesDirName))
	if err != nil {
		slog.Error("Failed to provision fixtures", "error", err)
		return err
	}

	query, err := w.queryCorpus(ctx, args, fx, runDir)
	if err != nil {
		return err
	}

	orchestrator := w.orchestrators(runDir)
	cfg := fx.WithColorFile(args.Index)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("query index: %w", err)
	}

	index, buildErr := orchestrator.Build(ctx, BuildRequest{Name: queryIndexName, Config: cfg, Fixtures: fx})
	if buildErr != nil {
		slog.Error("Failed to build query index", "error", buildErr)
		buildErr = fmt.Errorf("query index: %w", buildErr)
	}

	tasks := make([]rowTask, 0, len(selected))

	for _, i := range selected {
		if i == len(sweep.Rows) {
			tasks = append(tasks, rowTask{
				index:     i,
				name:      names[i],
				kind:      m.RowDeterminism,
				configKey: cfg.Key(),
				run: func(ctx context.Context) ([]m.ComparisonResult, error) {
					if buildErr != nil {
						return nil, buildErr
					}

					return w.compareBuffers(ctx, orchestrator, index, query, sweep)
				},
			})

			continue
		}

		row := sweep.Rows[i]
		name := names[i]
		tasks = append(tasks, rowTask{
			index:     i,
			name:      name,
			kind:      m.RowQuery,
			configKey: cfg.Key(),
			run: func(ctx context.Context) ([]m.ComparisonResult, error) {
				if buildErr != nil {
					return nil, buildErr
				}

				subject, err := orchestrator.Pseudoalign(ctx, index, query, row, sweep.Options, "query-"+name+"/subject"+queryDumpExt)
				if err != nil {
					return nil, err
				}

				reference, err := orchestrator.ReferenceQuery(ctx, cfg, fx, query, row, "query-"+name+"/reference"+queryDumpExt)
				if err != nil {
					return nil, err
				}

				return w.comparePairs(ctx, []DumpPair{{Name: name, Subject: subject, Reference: reference, Mode: sweep.Compare}})
			},
		})
	}

	return w.sweep(ctx, "query", runID, runDir, tasks, args.SweepOptions)
}

// compareBuffers runs the first parameter row with the configured and the
// check buffer size. Buffer size only affects flushing, never the output.
func (w *workflow) compareBuffers(ctx context.Context, orchestrator Orchestrator, index m.IndexArtifact, query m.Path, sweep QuerySweep) ([]m.ComparisonResult, error) {
	row := sweep.Rows[0]
	check := sweep.Options
	check.BufferSizeMB = sweep.BufferCheckMB

	configured, err := orchestrator.Pseudoalign(ctx, index, query, row, sweep.Options,
		bufferCheckRowName+"/buffer-"+m.FormatThreshold(sweep.Options.BufferSizeMB)+queryDumpExt)
	if err != nil {
		return nil, err
	}

	checked, err := orchestrator.Pseudoalign(ctx, index, query, row, check,
		bufferCheckRowName+"/buffer-"+m.FormatThreshold(check.BufferSizeMB)+queryDumpExt)
	if err != nil {
		return nil, err
	}

	return w.comparePairs(ctx, []DumpPair{{Name: bufferCheckRowName, Subject: configured, Reference: checked, Mode: sweep.bufferCheckMode()}})
}

func (w *workflow) queryCorpus(ctx context.Context, args QueryArgs, fx Fixtures, runDir m.Path) (m.Path, error) {
	if args.Query != "" {
		return args.Query, nil
	}

	reference := args.QueryReference
	if reference == "" {
		reference = fx.Inputs.Paths()[0]
	}

	out := w.fs.JoinPath(string(runDir), fixturesDirName, queryCorpusName)
	if err := w.mutator.Generate(ctx, DefaultMutationParams(reference, out)); err != nil {
		slog.Error("Failed to generate query corpus", "reference", reference, "error", err)
		return "", fmt.Errorf("generate query corpus: %w", err)
	}

	return out, nil
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	kind := args.Kind
	if kind == "" {
		kind = m.ColorMatrixDump
	}

	mode, err := m.ParseCompareMode(string(args.Mode))
	if err != nil {
		return err
	}

	result, err := w.oracle.Compare(ctx,
		m.DumpArtifact{Path: args.Subject, Kind: kind},
		m.DumpArtifact{Path: args.Reference, Kind: kind},
		mode,
	)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithSweepMode("kmeroracle compare")); err != nil {
		return err
	}

	if err := w.ui.DisplayComparison(ctx, result); err != nil {
		w.ui.Close(ctx)
		return err
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return result.Err()
}

func (w *workflow) GenerateQueries(ctx context.Context, params MutationParams) error {
	return w.mutator.Generate(ctx, params)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.store.LoadReport(ctx, args.Reports)
	if errors.Is(err, os.ErrNotExist) {
		report, err = w.loadJournal(args.Reports)
	}

	if err != nil {
		slog.Error("Failed to load report", "dir", args.Reports, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}

	if err := w.ui.DisplayReport(ctx, report); err != nil {
		w.ui.Close(ctx)
		return err
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

// loadJournal rebuilds the report of a run that stopped before saving one.
func (w *workflow) loadJournal(dir m.Path) (m.RunReport, error) {
	spill, err := pkg.OpenFileSpill[m.RowReport](string(w.fs.JoinPath(string(dir), journalFileName)))
	if err != nil {
		return m.RunReport{}, err
	}

	defer func() { _ = spill.Close() }()

	report := m.RunReport{RunID: string(dir), Command: "interrupted"}

	err = spill.Range(func(_ uint64, row m.RowReport) error {
		report.Rows = append(report.Rows, row)
		return nil
	})
	if err != nil {
		return m.RunReport{}, err
	}

	sortRows(report.Rows)

	return report, nil
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	dirs, err := w.store.ShardDirs(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("list shard reports: %w", err)
	}

	if len(dirs) == 0 {
		return fmt.Errorf("no shard reports in %s", args.Reports)
	}

	var (
		merged m.RunReport
		ids    []string
	)

	for _, dir := range dirs {
		report, err := w.store.LoadReport(ctx, dir)
		if err != nil {
			return fmt.Errorf("load shard report %s: %w", dir, err)
		}

		if merged.Command == "" {
			merged.Command = report.Command
			merged.StartedAt = report.StartedAt
		}

		if report.StartedAt.Before(merged.StartedAt) {
			merged.StartedAt = report.StartedAt
		}

		if report.FinishedAt.After(merged.FinishedAt) {
			merged.FinishedAt = report.FinishedAt
		}

		ids = append(ids, report.RunID)
		merged.Rows = append(merged.Rows, report.Rows...)
	}

	merged.RunID = strings.Join(ids, ",")
	sortRows(merged.Rows)

	if err := w.store.SaveReport(ctx, args.Reports, merged); err != nil {
		return fmt.Errorf("save merged report: %w", err)
	}

	slog.Info("Merged shard reports", "shards", len(dirs), "rows", len(merged.Rows))

	return w.present(ctx, "kmeroracle merge", merged)
}

func (w *workflow) newRun() (string, m.Path) {
	runID := w.newRunID()
	return runID, w.fs.JoinPath(string(w.settings.WorkDir), runID)
}

func (w *workflow) comparePairs(ctx context.Context, pairs []DumpPair) ([]m.ComparisonResult, error) {
	results := make([]m.ComparisonResult, 0, len(pairs))

	for _, pair := range pairs {
		result, err := w.oracle.Compare(ctx, pair.Subject, pair.Reference, pair.Mode)
		if err != nil {
			return results, fmt.Errorf("compare %s: %w", pair.Name, err)
		}

		if !result.Pass {
			slog.Warn("Comparison failed", "pair", pair.Name, "violation", result.Violation, "line", result.Line)
		}

		results = append(results, result)
	}

	return results, nil
}

// sweep runs every task, records a RowReport per task even when its
// pipeline fails, then saves and displays the run report.
func (w *workflow) sweep(ctx context.Context, command, runID string, runDir m.Path, tasks []rowTask, opts SweepOptions) error {
	parallel := max(opts.Parallel, 1)

	if err := w.fs.MkdirAll(ctx, runDir); err != nil {
		return fmt.Errorf("create run directory: %w", err)
	}

	journal, err := pkg.NewFileSpill[m.RowReport](string(w.fs.JoinPath(string(runDir), journalFileName)))
	if err != nil {
		return fmt.Errorf("create row journal: %w", err)
	}

	defer func() { _ = journal.Close() }()

	report := m.RunReport{
		RunID:     runID,
		Command:   command,
		Shard:     shardLabel(opts),
		StartedAt: w.now(),
		Rows:      make([]m.RowReport, len(tasks)),
	}

	if err := w.ui.Start(ctx, controller.WithSweepMode("kmeroracle "+command)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	w.ui.DisplayRunInfo(ctx, controller.RunInfo{
		RunID:      runID,
		Rows:       len(tasks),
		Parallel:   parallel,
		ShardIndex: opts.ShardIndex,
		ShardCount: opts.TotalShards,
		WorkDir:    runDir,
	})

	workers := make(chan int, parallel)
	for id := 0; id < parallel; id++ {
		workers <- id
	}

	var group errgroup.Group

	group.SetLimit(parallel)

	for slot, task := range tasks {
		slot, task := slot, task
		group.Go(func() error {
			worker := <-workers
			defer func() { workers <- worker }()

			w.ui.DisplayRowStarted(ctx, task.index, task.name, worker)

			row := w.runTask(ctx, task)
			report.Rows[slot] = row

			if err := journal.Append(row); err != nil {
				slog.Error("Failed to journal row", "row", row.Name, "error", err)
			}

			w.ui.DisplayRowCompleted(ctx, row)

			return nil
		})
	}

	_ = group.Wait()

	report.FinishedAt = w.now()

	reportsDir := opts.Reports
	if reportsDir == "" {
		reportsDir = runDir
	}

	if opts.TotalShards > 1 {
		reportsDir = adapter.ShardDir(reportsDir, opts.ShardIndex)
	}

	if err := w.store.SaveReport(ctx, reportsDir, report); err != nil {
		w.ui.Close(ctx)
		slog.Error("Failed to save report", "dir", reportsDir, "error", err)

		return fmt.Errorf("save report: %w", err)
	}

	if opts.Clean && !report.Failed() && opts.Reports != "" {
		if err := w.fs.RemoveAll(ctx, runDir); err != nil {
			slog.Warn("Failed to remove run directory", "dir", runDir, "error", err)
		}
	}

	if err := w.ui.DisplayReport(ctx, report); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Close(ctx)

	return sweepError(report)
}

func (w *workflow) runTask(ctx context.Context, task rowTask) m.RowReport {
	row := m.RowReport{Index: task.index, Name: task.name, Kind: task.kind, ConfigKey: task.configKey}
	start := w.now()

	var (
		comparisons []m.ComparisonResult
		err         = ctx.Err()
	)

	if err == nil {
		comparisons, err = task.run(ctx)
	}

	row.Comparisons = comparisons
	row.Duration = w.now().Sub(start)
	row.Settle(err)

	slog.Info("Row completed", "row", row.Name, "status", row.Status, "duration", row.Duration)

	return row
}

func (w *workflow) present(ctx context.Context, title string, report m.RunReport) error {
	if err := w.ui.Start(ctx, controller.WithSweepMode(title)); err != nil {
		return err
	}

	if err := w.ui.DisplayReport(ctx, report); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Close(ctx)

	return sweepError(report)
}

func sweepError(report m.RunReport) error {
	if !report.Failed() {
		return nil
	}

	bad := report.Count(m.Failed) + report.Count(m.Errored)

	return fmt.Errorf("%w: %d of %d rows did not pass", ErrSweepFailed, bad, len(report.Rows))
}

func selection(opts SweepOptions) RowSelection {
	return RowSelection{ShardIndex: opts.ShardIndex, TotalShards: opts.TotalShards, Only: opts.Only}
}

func shardLabel(opts SweepOptions) string {
	if opts.TotalShards <= 1 {
		return ""
	}

	return fmt.Sprintf("%d/%d", opts.ShardIndex, opts.TotalShards)
}

func sortRows(rows []m.RowReport) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
}
