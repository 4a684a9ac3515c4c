package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version and the programs under comparison",
		Long: `Displays the kmeroracle build version, the Go version used to build it and
the tool under test and reference binaries the current configuration points at.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("kmeroracle version\t unknown")
			} else {
				cmd.Println("kmeroracle version\t", info.Main.Version)
				cmd.Println("go version\t\t", info.GoVersion)
			}

			cmd.Println("sut binary\t\t", viper.GetString(sutBinaryKey))
			cmd.Println("reference binary\t", viper.GetString(referenceBinaryKey))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
