package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default kmeroracle.yaml configuration file",
		Long: `Create a kmeroracle.yaml in the current working directory holding the
binaries, corpus paths, run limits and query options currently in effect, so
a CI job can pin them. An existing file is never overwritten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s (sut %s, reference %s)\n", targetPath,
				viper.GetString(sutBinaryKey), viper.GetString(referenceBinaryKey))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
