package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	modeFlagName = "mode"
	kindFlagName = "kind"
)

var (
	compareModeFlag string
	compareKindFlag string
)

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <subject> <reference>",
		Short: "Compare two existing dump files",
		Long: `Compare a dump of the tool under test with a dump of the reference
implementation. Both files hold one "<key> <integers...>" line per k-mer or
query. The command fails when the dumps are not equivalent under --mode.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := m.DumpKind(compareKindFlag)
			if kind != m.ColorMatrixDump && kind != m.PseudoalignmentDump {
				return fmt.Errorf("unknown dump kind %q", compareKindFlag)
			}

			mode, err := m.ParseCompareMode(compareModeFlag)
			if err != nil {
				return err
			}

			return runWorkflow(cmd, func(ctx context.Context, wf domain.Workflow) error {
				return wf.Compare(ctx, domain.CompareArgs{
					Subject:   m.Path(args[0]),
					Reference: m.Path(args[1]),
					Kind:      kind,
					Mode:      mode,
				})
			})
		},
	}

	cmd.Flags().StringVar(&compareModeFlag, modeFlagName, string(m.CompareMultiset), "compare mode: multiset, sorted, exact, unordered-lines or sorted-hits")
	cmd.Flags().StringVar(&compareKindFlag, kindFlagName, string(m.ColorMatrixDump), "dump kind: color-matrix or pseudoalignment")

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
