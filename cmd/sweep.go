package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	shardFlagName = "shard"
	onlyFlagName  = "only"
	cleanFlagName = "clean"
)

// configureSweepFlags adds the row selection flags shared by verify, query and list.
func configureSweepFlags(cmd *cobra.Command) {
	cmd.Flags().IntP(parallelFlagName, "p", defaultParallel, "number of rows run concurrently")
	cmd.Flags().StringP(shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().String(onlyFlagName, "", "only run rows whose name matches this regular expression")
	cmd.Flags().Bool(cleanFlagName, false, "remove run artifacts when every row passed")
}

// sweepOptions reads the sweep flags of the command being executed. The
// parallel flag is bound here because several commands declare it.
func sweepOptions(cmd *cobra.Command) (domain.SweepOptions, error) {
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelKey)

	shard, _ := cmd.Flags().GetString(shardFlagName)

	shardIndex, totalShards, err := parseShardFlag(shard)
	if err != nil {
		return domain.SweepOptions{}, err
	}

	pattern, _ := cmd.Flags().GetString(onlyFlagName)

	only, err := parseOnlyFlag(pattern)
	if err != nil {
		return domain.SweepOptions{}, err
	}

	clean, _ := cmd.Flags().GetBool(cleanFlagName)

	return domain.SweepOptions{
		Reports:     m.Path(viper.GetString(reportsDirKey)),
		Parallel:    viper.GetInt(parallelKey),
		ShardIndex:  shardIndex,
		TotalShards: totalShards,
		Only:        only,
		Clean:       clean,
	}, nil
}
