package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the build matrix rows",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := verifyArgs(cmd)
			if err != nil {
				return err
			}

			return runWorkflow(cmd, func(ctx context.Context, wf domain.Workflow) error {
				return wf.List(ctx, args)
			})
		},
	}

	configureSweepFlags(cmd)
	configureMatrixFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
