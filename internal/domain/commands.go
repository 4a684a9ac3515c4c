package domain

import (
	"strconv"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// SUTCommands builds argument lists for the subject under test. Thread count
// and temp directory are attached to every command that accepts them; they
// must not change any output.
type SUTCommands struct {
	Binary  string
	Threads int
	TempDir m.Path
}

// WithThreads returns a copy using n threads.
func (c SUTCommands) WithThreads(n int) SUTCommands {
	c.Threads = n
	return c
}

// BuildSource says what a build reads from.
type BuildSource struct {
	// FileList is the input file list of a fresh build.
	FileList m.Path
	// FromIndex converts an existing index instead of reading sequences.
	FromIndex m.Path
	// LoadDBG reuses the graph already stored at the output prefix and only
	// computes the coloring.
	LoadDBG bool
}

// Build returns the build (or transform) command writing the index to out.
func (c SUTCommands) Build(cfg m.BuildConfiguration, src BuildSource, out m.Path) adapter.Command {
	args := []string{"build", "--n-threads", strconv.Itoa(c.Threads)}

	if src.FromIndex != "" {
		args = append(args,
			"--from-index", string(src.FromIndex),
			"-o", string(out),
			"--temp-dir", string(c.TempDir),
			"--coloring-structure-type", string(cfg.Structure),
		)

		return adapter.Command{Program: c.Binary, Args: args}
	}

	args = append(args,
		"-k", strconv.Itoa(cfg.K),
		"-i", string(src.FileList),
		"-o", string(out),
		"--temp-dir", string(c.TempDir),
	)

	if cfg.ReverseComplement {
		args = append(args, "--reverse-complements")
	}

	args = append(args, "-d", strconv.Itoa(cfg.D))
	args = append(args, sutColorFlags(cfg)...)
	args = append(args, "--coloring-structure-type", string(cfg.Structure))

	if src.LoadDBG {
		args = append(args, "--load-dbg")
	}

	return adapter.Command{Program: c.Binary, Args: args}
}

func sutColorFlags(cfg m.BuildConfiguration) []string {
	switch cfg.ColorMode {
	case m.ColorsSequence:
		return []string{"--sequence-colors"}
	case m.ColorsFile:
		return []string{"--file-colors"}
	case m.ColorsManual:
		return []string{"--manual-colors", string(cfg.ColorFile)}
	case m.ColorsNone:
		return []string{"--no-colors"}
	}

	return nil
}

// DumpColorMatrix returns the sparse color matrix dump of index into out.
func (c SUTCommands) DumpColorMatrix(index, out m.Path) adapter.Command {
	return adapter.Command{
		Program: c.Binary,
		Args:    []string{"dump-color-matrix", "-i", string(index), "-o", string(out), "--sparse"},
	}
}

// Pseudoalign returns the query command for one parameter row.
func (c SUTCommands) Pseudoalign(index, query, out m.Path, row m.QueryParameterRow, opts m.QueryOptions) adapter.Command {
	args := []string{
		"pseudoalign",
		"-q", string(query),
		"-i", string(index),
		"-o", string(out),
		"--temp-dir", string(c.TempDir),
		"--threshold", m.FormatThreshold(row.Threshold),
	}

	if row.IgnoreUnknown {
		args = append(args, "--ignore-unknown-kmers")
	} else {
		args = append(args, "--include-unknown-kmers")
	}

	if row.ReverseComplement {
		args = append(args, "--rc")
	}

	if opts.SortHits {
		args = append(args, "--sort-hits")
	}

	if opts.SortOutputLines {
		args = append(args, "--sort-output-lines")
	}

	args = append(args, "--n-threads", strconv.Itoa(c.Threads))

	if opts.BufferSizeMB > 0 {
		args = append(args, "--buffer-size-megas", m.FormatThreshold(opts.BufferSizeMB))
	}

	return adapter.Command{Program: c.Binary, Args: args}
}

// ReferenceCommands builds argument lists for the reference implementation,
// which takes the same logical parameters under its own flag names.
type ReferenceCommands struct {
	Binary string
}

// DumpColorMatrix returns the reference color matrix dump for cfg over the
// inputs listed in fileList.
func (c ReferenceCommands) DumpColorMatrix(cfg m.BuildConfiguration, fileList, out m.Path) adapter.Command {
	args := []string{
		"dump-color-matrix",
		"-k", strconv.Itoa(cfg.K),
		"-i", string(fileList),
		"-o", string(out),
	}

	if cfg.ReverseComplement {
		args = append(args, "--rc")
	}

	args = append(args, referenceColorFlags(cfg)...)

	return adapter.Command{Program: c.Binary, Args: args}
}

// Query returns the reference query command for one parameter row.
func (c ReferenceCommands) Query(cfg m.BuildConfiguration, fileList, query, out m.Path, row m.QueryParameterRow) adapter.Command {
	args := []string{
		"query",
		"-k", strconv.Itoa(cfg.K),
		"-i", string(fileList),
		"-q", string(query),
		"-o", string(out),
		"--threshold", m.FormatThreshold(row.Threshold),
	}

	if row.IgnoreUnknown {
		args = append(args, "--ignore-unknown-kmers")
	} else {
		args = append(args, "--include-unknown-kmers")
	}

	if row.ReverseComplement {
		args = append(args, "--rc")
	}

	args = append(args, referenceColorFlags(cfg)...)

	return adapter.Command{Program: c.Binary, Args: args}
}

func referenceColorFlags(cfg m.BuildConfiguration) []string {
	switch cfg.ColorMode {
	case m.ColorsSequence:
		return []string{"--sequence-colors"}
	case m.ColorsFile:
		return []string{"--file-colors"}
	case m.ColorsManual:
		return []string{"-c", string(cfg.ColorFile)}
	case m.ColorsNone:
	}

	return nil
}
