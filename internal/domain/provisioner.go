package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	fileListName   = "file_list.txt"
	corpusName     = "all.fasta.gz"
	corpusListName = "all_list.txt"
	colorFileName  = "colors.txt"
)

// Fixtures are the derived inputs shared by every row of a run.
type Fixtures struct {
	Inputs     m.InputFileSet
	FileList   m.Path // one line per file of Inputs
	Corpus     m.Path // byte concatenation of Inputs
	CorpusList m.Path // file list naming only Corpus
	ColorFile  m.Path // one color per record of Corpus
}

// InputFor returns the file list a configuration reads and the fingerprint of
// the logical input behind it. Manual colors are assigned per record of the
// concatenated corpus, so those builds read the corpus instead of the files.
func (f Fixtures) InputFor(cfg m.BuildConfiguration) (m.Path, string) {
	if cfg.ColorMode == m.ColorsManual {
		return f.CorpusList, "corpus:" + f.Inputs.Fingerprint()
	}

	return f.FileList, f.Inputs.Fingerprint()
}

// WithColorFile fills in the color file of manual-color configurations.
func (f Fixtures) WithColorFile(cfg m.BuildConfiguration) m.BuildConfiguration {
	if cfg.ColorMode == m.ColorsManual && cfg.ColorFile == "" {
		cfg.ColorFile = f.ColorFile
	}

	return cfg
}

// Provisioner discovers and derives the input file sets of a run.
type Provisioner interface {
	// Discover selects the corpus files matching the fixture pattern in scan order.
	Discover(ctx context.Context, corpusDir m.Path) (m.InputFileSet, error)
	// Prepare discovers the corpus and writes every derived fixture into dir.
	Prepare(ctx context.Context, corpusDir, dir m.Path) (Fixtures, error)
	WriteFileList(ctx context.Context, set m.InputFileSet, dst m.Path) error
	Concatenate(ctx context.Context, set m.InputFileSet, dst m.Path) error
	WriteColorFile(ctx context.Context, set m.InputFileSet, dst m.Path) error
}

type provisioner struct {
	fs        adapter.CorpusFSAdapter
	pattern   *regexp.Regexp
	colorFile m.Path
}

// NewProvisioner builds a Provisioner selecting files whose path matches
// pattern. A non-empty colorFile is used as-is instead of a generated one.
func NewProvisioner(fs adapter.CorpusFSAdapter, pattern string, colorFile m.Path) (Provisioner, error) {
	if pattern == "" {
		pattern = DefaultFixturePattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("fixture pattern: %w", err)
	}

	return &provisioner{fs: fs, pattern: re, colorFile: colorFile}, nil
}

func (p *provisioner) Discover(ctx context.Context, corpusDir m.Path) (m.InputFileSet, error) {
	if corpusDir == "" {
		return m.InputFileSet{}, fmt.Errorf("%w: no corpus directory configured", m.ErrProvisioning)
	}

	info, err := p.fs.FileInfo(ctx, corpusDir)
	if err != nil {
		return m.InputFileSet{}, fmt.Errorf("%w: corpus directory %s: %w", m.ErrProvisioning, corpusDir, err)
	}

	if !info.IsDir() {
		return m.InputFileSet{}, fmt.Errorf("%w: %s is not a directory", m.ErrProvisioning, corpusDir)
	}

	var paths []m.Path
	if err := p.walk(ctx, corpusDir, &paths); err != nil {
		return m.InputFileSet{}, fmt.Errorf("%w: scan %s: %w", m.ErrProvisioning, corpusDir, err)
	}

	if len(paths) == 0 {
		return m.InputFileSet{}, fmt.Errorf("%w: no files matching %q in %s", m.ErrProvisioning, p.pattern, corpusDir)
	}

	slog.Info("Discovered corpus", "dir", corpusDir, "files", len(paths))

	return m.NewInputFileSet(paths), nil
}

func (p *provisioner) walk(ctx context.Context, dir m.Path, out *[]m.Path) error {
	entries, err := p.fs.ReadDir(ctx, dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := p.fs.JoinPath(string(dir), entry.Name())

		if entry.IsDir() {
			if err := p.walk(ctx, path, out); err != nil {
				return err
			}

			continue
		}

		if entry.Type().IsRegular() && p.pattern.MatchString(filepath.ToSlash(string(path))) {
			*out = append(*out, path)
		}
	}

	return nil
}

func (p *provisioner) Prepare(ctx context.Context, corpusDir, dir m.Path) (Fixtures, error) {
	set, err := p.Discover(ctx, corpusDir)
	if err != nil {
		return Fixtures{}, err
	}

	if err := p.fs.MkdirAll(ctx, dir); err != nil {
		return Fixtures{}, fmt.Errorf("create fixtures dir: %w", err)
	}

	fx := Fixtures{
		Inputs:     set,
		FileList:   p.fs.JoinPath(string(dir), fileListName),
		Corpus:     p.fs.JoinPath(string(dir), corpusName),
		CorpusList: p.fs.JoinPath(string(dir), corpusListName),
		ColorFile:  p.colorFile,
	}

	if err := p.WriteFileList(ctx, set, fx.FileList); err != nil {
		return Fixtures{}, err
	}

	if err := p.Concatenate(ctx, set, fx.Corpus); err != nil {
		return Fixtures{}, err
	}

	if err := p.WriteFileList(ctx, m.NewInputFileSet([]m.Path{fx.Corpus}), fx.CorpusList); err != nil {
		return Fixtures{}, err
	}

	if fx.ColorFile == "" {
		fx.ColorFile = p.fs.JoinPath(string(dir), colorFileName)
		if err := p.WriteColorFile(ctx, set, fx.ColorFile); err != nil {
			return Fixtures{}, err
		}
	}

	return fx, nil
}

func (p *provisioner) WriteFileList(ctx context.Context, set m.InputFileSet, dst m.Path) error {
	paths := set.Paths()
	lines := make([]string, 0, len(paths))

	for _, path := range paths {
		abs, err := filepath.Abs(string(path))
		if err != nil {
			abs = string(path)
		}

		lines = append(lines, abs)
	}

	if err := p.fs.WriteLines(ctx, dst, lines); err != nil {
		return fmt.Errorf("write file list %s: %w", dst, err)
	}

	return nil
}

func (p *provisioner) Concatenate(ctx context.Context, set m.InputFileSet, dst m.Path) error {
	if err := p.fs.Concatenate(ctx, dst, set.Paths()); err != nil {
		return fmt.Errorf("concatenate corpus into %s: %w", dst, err)
	}

	return nil
}

// WriteColorFile assigns every record the index of the file it came from.
func (p *provisioner) WriteColorFile(ctx context.Context, set m.InputFileSet, dst m.Path) error {
	var lines []string

	for color, path := range set.Paths() {
		n, err := p.countRecords(ctx, path)
		if err != nil {
			return fmt.Errorf("%w: count records of %s: %w", m.ErrProvisioning, path, err)
		}

		for i := 0; i < n; i++ {
			lines = append(lines, strconv.Itoa(color))
		}
	}

	if err := p.fs.WriteLines(ctx, dst, lines); err != nil {
		return fmt.Errorf("write color file %s: %w", dst, err)
	}

	return nil
}

func (p *provisioner) countRecords(ctx context.Context, path m.Path) (int, error) {
	r, err := p.fs.OpenSequences(ctx, path)
	if err != nil {
		return 0, err
	}

	defer func() { _ = r.Close() }()

	return countRecords(r)
}
