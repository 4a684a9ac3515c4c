package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge sharded reports into a single report",
		Long:  "Merge the reports of shard_* subdirectories into a single report in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(reportsDirKey))

			return runWorkflow(cmd, func(ctx context.Context, wf domain.Workflow) error {
				return wf.Merge(ctx, domain.MergeArgs{Reports: reportsPath})
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
