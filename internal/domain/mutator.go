package domain

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const nucleotides = "ACGT"

// MutationParams describe a synthetic query corpus: a slice of a reference
// genome that accumulates one random point substitution per generation.
type MutationParams struct {
	Reference   m.Path
	Output      m.Path
	Start       int
	Length      int
	Generations int
	Seed        int64
}

// DefaultMutationParams returns the slice and generation settings of the
// standard query corpus.
func DefaultMutationParams(reference, output m.Path) MutationParams {
	return MutationParams{
		Reference:   reference,
		Output:      output,
		Start:       1000,
		Length:      2000,
		Generations: 100,
		Seed:        42,
	}
}

// SequenceMutator writes synthetic query corpora.
type SequenceMutator struct {
	fs adapter.CorpusFSAdapter
}

// NewSequenceMutator returns a SequenceMutator using fs for I/O.
func NewSequenceMutator(fs adapter.CorpusFSAdapter) *SequenceMutator {
	return &SequenceMutator{fs: fs}
}

// Generate writes params.Generations records named 0..N-1 to a gzip FASTA
// file. Record i holds the slice after i+1 substitutions. The output is a
// function of the reference and params alone.
func (g *SequenceMutator) Generate(ctx context.Context, params MutationParams) error {
	if params.Generations <= 0 || params.Length <= 0 || params.Start < 0 {
		return fmt.Errorf("%w: invalid mutation parameters %+v", m.ErrProvisioning, params)
	}

	sample, err := g.slice(ctx, params)
	if err != nil {
		return err
	}

	if err := g.fs.MkdirAll(ctx, m.Path(filepath.Dir(string(params.Output)))); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	out, err := g.fs.CreateGzip(ctx, params.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", params.Output, err)
	}

	w := bufio.NewWriter(out)
	rng := rand.New(rand.NewSource(params.Seed)) //nolint:gosec // reproducible corpus, not security sensitive

	for i := 0; i < params.Generations; i++ {
		if err := ctx.Err(); err != nil {
			_ = out.Close()
			return err
		}

		sample[rng.Intn(len(sample))] = nucleotides[rng.Intn(len(nucleotides))]

		if _, err := fmt.Fprintf(w, ">%d\n%s\n", i, sample); err != nil {
			_ = out.Close()
			return fmt.Errorf("write %s: %w", params.Output, err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", params.Output, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", params.Output, err)
	}

	slog.Info("Generated query corpus", "output", params.Output, "records", params.Generations, "seed", params.Seed)

	return nil
}

func (g *SequenceMutator) slice(ctx context.Context, params MutationParams) ([]byte, error) {
	in, err := g.fs.OpenSequences(ctx, params.Reference)
	if err != nil {
		return nil, fmt.Errorf("%w: open reference %s: %w", m.ErrProvisioning, params.Reference, err)
	}

	defer func() { _ = in.Close() }()

	seq, err := firstRecord(in)
	if err != nil {
		return nil, fmt.Errorf("%w: reference %s: %w", m.ErrProvisioning, params.Reference, err)
	}

	end := params.Start + params.Length
	if end > len(seq) {
		return nil, fmt.Errorf("%w: slice [%d,%d) exceeds reference length %d", m.ErrProvisioning, params.Start, end, len(seq))
	}

	return append([]byte{}, seq[params.Start:end]...), nil
}
