package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	colorDumpExt = ".colordump"
	queryDumpExt = ".txt"
)

// BuildRequest describes one build stage.
type BuildRequest struct {
	// Name is the artifact path relative to the run directory.
	Name     string
	Config   m.BuildConfiguration
	Fixtures Fixtures
	// FromIndex converts an existing index into Config.Structure.
	FromIndex *m.IndexArtifact
	// LoadDBG adds colors to the graph already stored under Name.
	LoadDBG bool
	// Threads overrides the configured thread count when positive.
	Threads int
}

// DumpPair is a subject dump and the dump it must be equivalent to.
type DumpPair struct {
	Name      string
	Subject   m.DumpArtifact
	Reference m.DumpArtifact
	Mode      m.CompareMode
}

// Orchestrator sequences the external stages of one configuration. Every
// artifact is written below the run directory, under the name it is given.
type Orchestrator interface {
	Build(ctx context.Context, req BuildRequest) (m.IndexArtifact, error)
	Dump(ctx context.Context, index m.IndexArtifact, name string) (m.DumpArtifact, error)
	Pseudoalign(ctx context.Context, index m.IndexArtifact, query m.Path, row m.QueryParameterRow, opts m.QueryOptions, name string) (m.DumpArtifact, error)
	ReferenceDump(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, name string) (m.DumpArtifact, error)
	ReferenceQuery(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, query m.Path, row m.QueryParameterRow, name string) (m.DumpArtifact, error)
	// RoundTrip builds in cfg's structure, converts to the other structure and
	// back, and pairs the dumps of the original and the round-tripped index.
	RoundTrip(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, namespace string) (DumpPair, error)
	// RunRow runs the stages of a build matrix row and returns the dumps to compare.
	RunRow(ctx context.Context, row MatrixRow, fx Fixtures) ([]DumpPair, error)
}

type orchestrator struct {
	runner     adapter.CommandRunnerAdapter
	fs         adapter.CorpusFSAdapter
	sut        SUTCommands
	ref        ReferenceCommands
	runDir     m.Path
	maxThreads int
}

// NewOrchestrator constructs an Orchestrator writing below runDir.
func NewOrchestrator(runner adapter.CommandRunnerAdapter, fs adapter.CorpusFSAdapter, settings Settings, runDir m.Path) Orchestrator {
	return &orchestrator{
		runner: runner,
		fs:     fs,
		sut: SUTCommands{
			Binary:  settings.SUTBinary,
			Threads: settings.threads(),
			TempDir: settings.tempDir(),
		},
		ref:        ReferenceCommands{Binary: settings.ReferenceBinary},
		runDir:     runDir,
		maxThreads: settings.maxThreads(),
	}
}

func (o *orchestrator) Build(ctx context.Context, req BuildRequest) (m.IndexArtifact, error) {
	cfg := req.Fixtures.WithColorFile(req.Config)
	if err := cfg.Validate(); err != nil {
		return m.IndexArtifact{}, fmt.Errorf("build %s: %w", req.Name, err)
	}

	prefix, err := o.artifactPath(ctx, req.Name)
	if err != nil {
		return m.IndexArtifact{}, err
	}

	fileList, inputs := req.Fixtures.InputFor(cfg)
	src := BuildSource{FileList: fileList, LoadDBG: req.LoadDBG}

	if req.FromIndex != nil {
		src = BuildSource{FromIndex: req.FromIndex.Prefix}
		inputs = req.FromIndex.Inputs
		cfg = req.FromIndex.Config.WithStructure(cfg.Structure)
	}

	sut := o.sut
	if req.Threads > 0 {
		sut = sut.WithThreads(req.Threads)
	}

	if err := o.run(ctx, "build", sut.Build(cfg, src, prefix)); err != nil {
		return m.IndexArtifact{}, err
	}

	return m.IndexArtifact{Prefix: prefix, Config: cfg, Inputs: inputs}, nil
}

func (o *orchestrator) Dump(ctx context.Context, index m.IndexArtifact, name string) (m.DumpArtifact, error) {
	out, err := o.artifactPath(ctx, name)
	if err != nil {
		return m.DumpArtifact{}, err
	}

	if err := o.run(ctx, "dump", o.sut.DumpColorMatrix(index.Prefix, out)); err != nil {
		return m.DumpArtifact{}, err
	}

	return m.DumpArtifact{Path: out, Kind: m.ColorMatrixDump, Origin: m.OriginOf(index.Config, index.Inputs)}, nil
}

func (o *orchestrator) Pseudoalign(ctx context.Context, index m.IndexArtifact, query m.Path, row m.QueryParameterRow, opts m.QueryOptions, name string) (m.DumpArtifact, error) {
	out, err := o.artifactPath(ctx, name)
	if err != nil {
		return m.DumpArtifact{}, err
	}

	if err := o.run(ctx, "pseudoalign", o.sut.Pseudoalign(index.Prefix, query, out, row, opts)); err != nil {
		return m.DumpArtifact{}, err
	}

	origin := m.OriginOf(index.Config, index.Inputs)
	origin.Query = queryOrigin(query, row)

	return m.DumpArtifact{Path: out, Kind: m.PseudoalignmentDump, Origin: origin}, nil
}

func (o *orchestrator) ReferenceDump(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, name string) (m.DumpArtifact, error) {
	cfg = fx.WithColorFile(cfg)
	fileList, inputs := fx.InputFor(cfg)

	out, err := o.artifactPath(ctx, name)
	if err != nil {
		return m.DumpArtifact{}, err
	}

	if err := o.run(ctx, "reference dump", o.ref.DumpColorMatrix(cfg, fileList, out)); err != nil {
		return m.DumpArtifact{}, err
	}

	return m.DumpArtifact{Path: out, Kind: m.ColorMatrixDump, Origin: m.OriginOf(cfg, inputs)}, nil
}

func (o *orchestrator) ReferenceQuery(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, query m.Path, row m.QueryParameterRow, name string) (m.DumpArtifact, error) {
	cfg = fx.WithColorFile(cfg)
	fileList, inputs := fx.InputFor(cfg)

	out, err := o.artifactPath(ctx, name)
	if err != nil {
		return m.DumpArtifact{}, err
	}

	if err := o.run(ctx, "reference query", o.ref.Query(cfg, fileList, query, out, row)); err != nil {
		return m.DumpArtifact{}, err
	}

	origin := m.OriginOf(cfg, inputs)
	origin.Query = queryOrigin(query, row)

	return m.DumpArtifact{Path: out, Kind: m.PseudoalignmentDump, Origin: origin}, nil
}

func (o *orchestrator) RoundTrip(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, namespace string) (DumpPair, error) {
	original, err := o.Build(ctx, BuildRequest{Name: namespace + "/a", Config: cfg, Fixtures: fx})
	if err != nil {
		return DumpPair{}, err
	}

	other, err := o.Build(ctx, BuildRequest{
		Name:      namespace + "/b",
		Config:    cfg.WithStructure(cfg.Structure.Other()),
		Fixtures:  fx,
		FromIndex: &original,
	})
	if err != nil {
		return DumpPair{}, err
	}

	back, err := o.Build(ctx, BuildRequest{Name: namespace + "/a-b-a", Config: cfg, Fixtures: fx, FromIndex: &other})
	if err != nil {
		return DumpPair{}, err
	}

	return o.dumpPair(ctx, "round-trip", back, original, m.CompareExact)
}

func (o *orchestrator) RunRow(ctx context.Context, row MatrixRow, fx Fixtures) ([]DumpPair, error) {
	ns := row.Name
	cfg := fx.WithColorFile(row.Config)
	mode := row.CompareMode()

	slog.Info("Running matrix row", "row", ns, "kind", row.Kind, "config", cfg.Key())

	switch row.Kind {
	case m.RowBuild:
		index, err := o.Build(ctx, BuildRequest{Name: ns + "/index", Config: cfg, Fixtures: fx})
		if err != nil {
			return nil, err
		}

		pair, err := o.referencePair(ctx, index, fx, ns, mode)
		if err != nil {
			return nil, err
		}

		return []DumpPair{pair}, nil

	case m.RowTransform:
		source, err := o.Build(ctx, BuildRequest{
			Name:     ns + "/source",
			Config:   cfg.WithStructure(cfg.Structure.Other()),
			Fixtures: fx,
		})
		if err != nil {
			return nil, err
		}

		index, err := o.Build(ctx, BuildRequest{Name: ns + "/index", Config: cfg, Fixtures: fx, FromIndex: &source})
		if err != nil {
			return nil, err
		}

		pair, err := o.referencePair(ctx, index, fx, ns, mode)
		if err != nil {
			return nil, err
		}

		return []DumpPair{pair}, nil

	case m.RowAddColors:
		return o.addColors(ctx, cfg, fx, ns, mode)

	case m.RowDeterminism:
		one, err := o.Build(ctx, BuildRequest{Name: ns + "/threads-1", Config: cfg, Fixtures: fx, Threads: 1})
		if err != nil {
			return nil, err
		}

		many, err := o.Build(ctx, BuildRequest{
			Name:     fmt.Sprintf("%s/threads-%d", ns, o.maxThreads),
			Config:   cfg,
			Fixtures: fx,
			Threads:  o.maxThreads,
		})
		if err != nil {
			return nil, err
		}

		pair, err := o.dumpPair(ctx, "thread-count", one, many, mode)
		if err != nil {
			return nil, err
		}

		return []DumpPair{pair}, nil

	case m.RowRoundTrip:
		pair, err := o.RoundTrip(ctx, cfg, fx, ns)
		if err != nil {
			return nil, err
		}

		return []DumpPair{pair}, nil

	case m.RowQuery:
	}

	return nil, fmt.Errorf("row %s: kind %q is not a build matrix kind", ns, row.Kind)
}

// addColors builds the graph without colors, colors it in place, and checks
// the result against a from-scratch colored build and against the reference.
func (o *orchestrator) addColors(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, ns string, mode m.CompareMode) ([]DumpPair, error) {
	uncolored := cfg
	uncolored.ColorMode = m.ColorsNone
	uncolored.ColorFile = ""

	if _, err := o.Build(ctx, BuildRequest{Name: ns + "/graph", Config: uncolored, Fixtures: fx}); err != nil {
		return nil, err
	}

	colored, err := o.Build(ctx, BuildRequest{Name: ns + "/graph", Config: cfg, Fixtures: fx, LoadDBG: true})
	if err != nil {
		return nil, err
	}

	scratch, err := o.Build(ctx, BuildRequest{Name: ns + "/scratch", Config: cfg, Fixtures: fx})
	if err != nil {
		return nil, err
	}

	fromScratch, err := o.dumpPair(ctx, "from-scratch", colored, scratch, mode)
	if err != nil {
		return nil, err
	}

	ref, err := o.ReferenceDump(ctx, cfg, fx, ns+"/reference"+colorDumpExt)
	if err != nil {
		return nil, err
	}

	return []DumpPair{
		fromScratch,
		{Name: "reference", Subject: fromScratch.Subject, Reference: ref, Mode: mode},
	}, nil
}

func (o *orchestrator) referencePair(ctx context.Context, index m.IndexArtifact, fx Fixtures, ns string, mode m.CompareMode) (DumpPair, error) {
	subject, err := o.Dump(ctx, index, o.relative(index.Prefix)+colorDumpExt)
	if err != nil {
		return DumpPair{}, err
	}

	ref, err := o.ReferenceDump(ctx, index.Config, fx, ns+"/reference"+colorDumpExt)
	if err != nil {
		return DumpPair{}, err
	}

	return DumpPair{Name: "reference", Subject: subject, Reference: ref, Mode: mode}, nil
}

func (o *orchestrator) dumpPair(ctx context.Context, name string, subject, reference m.IndexArtifact, mode m.CompareMode) (DumpPair, error) {
	s, err := o.Dump(ctx, subject, o.relative(subject.Prefix)+colorDumpExt)
	if err != nil {
		return DumpPair{}, err
	}

	r, err := o.Dump(ctx, reference, o.relative(reference.Prefix)+colorDumpExt)
	if err != nil {
		return DumpPair{}, err
	}

	return DumpPair{Name: name, Subject: s, Reference: r, Mode: mode}, nil
}

// artifactPath resolves name below the run directory and creates its parent.
func (o *orchestrator) artifactPath(ctx context.Context, name string) (m.Path, error) {
	path := o.fs.JoinPath(string(o.runDir), name)

	if err := o.fs.MkdirAll(ctx, m.Path(filepath.Dir(string(path)))); err != nil {
		return "", fmt.Errorf("create artifact dir for %s: %w", name, err)
	}

	return path, nil
}

func (o *orchestrator) relative(path m.Path) string {
	rel, err := filepath.Rel(string(o.runDir), string(path))
	if err != nil {
		return filepath.Base(string(path))
	}

	return filepath.ToSlash(rel)
}

func (o *orchestrator) run(ctx context.Context, stage string, command adapter.Command) error {
	slog.Debug("Running stage", "stage", stage, "command", command.String())

	if err := o.runner.Run(ctx, command); err != nil {
		slog.Error("Stage failed", "stage", stage, "error", err)
		return fmt.Errorf("%s stage: %w", stage, err)
	}

	return nil
}

func queryOrigin(query m.Path, row m.QueryParameterRow) string {
	return row.Key() + "@" + filepath.Base(string(query))
}
