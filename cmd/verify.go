package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const matrixFlagName = "matrix"

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify index builds against the reference",
		Long:  verifyLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := verifyArgs(cmd)
			if err != nil {
				return err
			}

			return runWorkflow(cmd, func(ctx context.Context, wf domain.Workflow) error {
				return wf.Verify(ctx, args)
			})
		},
	}

	configureSweepFlags(cmd)
	configureMatrixFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func configureMatrixFlag(cmd *cobra.Command) {
	cmd.Flags().String(matrixFlagName, "", "YAML file replacing the built-in build matrix")
}

// verifyArgs collects the arguments shared by verify and list.
func verifyArgs(cmd *cobra.Command) (domain.VerifyArgs, error) {
	bindFlagToConfig(cmd.Flags().Lookup(matrixFlagName), matrixFileKey)

	opts, err := sweepOptions(cmd)
	if err != nil {
		return domain.VerifyArgs{}, err
	}

	args := domain.VerifyArgs{SweepOptions: opts}

	if path := viper.GetString(matrixFileKey); path != "" {
		rows, err := domain.LoadMatrix(m.Path(path))
		if err != nil {
			return domain.VerifyArgs{}, err
		}

		args.Matrix = rows
	}

	return args, nil
}
