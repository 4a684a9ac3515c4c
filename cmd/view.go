package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved run report",
		Long: `View the run report saved in the reports directory. For a run that was
interrupted before saving its report, point --output at the run directory
to view the rows it completed.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(reportsDirKey))

			return runWorkflow(cmd, func(ctx context.Context, wf domain.Workflow) error {
				return wf.View(ctx, domain.ViewArgs{Reports: reportsPath})
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
