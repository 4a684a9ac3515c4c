package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

var (
	genStartFlag       int
	genLengthFlag      int
	genGenerationsFlag int
	genSeedFlag        int64
)

// genQueriesCmd represents the gen-queries command.
var genQueriesCmd = newGenQueriesCmd()

func newGenQueriesCmd() *cobra.Command {
	defaults := domain.DefaultMutationParams("", "")

	cmd := &cobra.Command{
		Use:   "gen-queries <reference> <output>",
		Short: "Generate a mutated query corpus",
		Long: `Take a slice of the first record of <reference> and write one gzipped
FASTA record per generation, each carrying one more random point mutation
than the previous one. The same seed always yields the same file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow(cmd, func(ctx context.Context, wf domain.Workflow) error {
				return wf.GenerateQueries(ctx, domain.MutationParams{
					Reference:   m.Path(args[0]),
					Output:      m.Path(args[1]),
					Start:       genStartFlag,
					Length:      genLengthFlag,
					Generations: genGenerationsFlag,
					Seed:        genSeedFlag,
				})
			})
		},
	}

	cmd.Flags().IntVar(&genStartFlag, "start", defaults.Start, "offset of the slice in the first record")
	cmd.Flags().IntVar(&genLengthFlag, "length", defaults.Length, "length of the slice")
	cmd.Flags().IntVar(&genGenerationsFlag, "generations", defaults.Generations, "number of records written")
	cmd.Flags().Int64Var(&genSeedFlag, "seed", defaults.Seed, "random seed")

	return cmd
}

func init() {
	rootCmd.AddCommand(genQueriesCmd)
}
