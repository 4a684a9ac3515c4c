package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	tableFlagName          = "table"
	queryFlagName          = "query"
	queryReferenceFlagName = "query-reference"
	compareFlagName        = "compare"
	sortHitsFlagName       = "sort-hits"
	sortLinesFlagName      = "sort-output-lines"
	bufferSizeFlagName     = "buffer-size-megas"
	bufferCheckFlagName    = "buffer-check-megas"
	kFlagName              = "k"
	dFlagName              = "d"
	colorsFlagName         = "colors"
	structureFlagName      = "structure"
	rcFlagName             = "rc"
)

var (
	queryTableFlag     string
	queryFileFlag      string
	queryReferenceFlag string
	queryCompareFlag   string
	querySortHitsFlag  bool
	querySortLinesFlag bool
	queryBufferFlag    float64
	queryBufferChkFlag float64
	queryKFlag         int
	queryDFlag         int
	queryColorsFlag    string
	queryStructureFlag string
	queryRCFlag        bool
)

// queryCmd represents the query command.
var queryCmd = newQueryCmd()

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Verify pseudoalignment results against the reference",
		Long:  queryLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := queryArgs(cmd)
			if err != nil {
				return err
			}

			return runWorkflow(cmd, func(ctx context.Context, wf domain.Workflow) error {
				return wf.Query(ctx, args)
			})
		},
	}

	configureSweepFlags(cmd)
	configureQueryFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func configureQueryFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&queryTableFlag, tableFlagName, "", "CSV parameter table (threshold,ignore,revcomp) replacing the built-in one")
	bindFlagToConfig(flags.Lookup(tableFlagName), queryTableKey)

	flags.StringVar(&queryFileFlag, queryFlagName, "", "query FASTA file; generated when empty")
	flags.StringVar(&queryReferenceFlag, queryReferenceFlagName, "", "sequence file the generated queries are mutated from")

	flags.StringVar(&queryCompareFlag, compareFlagName, defaultQueryCompare, "compare mode: multiset, sorted, exact, unordered-lines or sorted-hits")
	bindFlagToConfig(flags.Lookup(compareFlagName), queryCompareKey)

	flags.BoolVar(&querySortHitsFlag, sortHitsFlagName, true, "ask the tool under test to sort the colors of each hit")
	bindFlagToConfig(flags.Lookup(sortHitsFlagName), querySortHitsKey)

	flags.BoolVar(&querySortLinesFlag, sortLinesFlagName, true, "ask the tool under test to sort output lines by query id")
	bindFlagToConfig(flags.Lookup(sortLinesFlagName), querySortLinesKey)

	flags.Float64Var(&queryBufferFlag, bufferSizeFlagName, defaultQueryBufferMB, "query buffer size in megabytes")
	bindFlagToConfig(flags.Lookup(bufferSizeFlagName), queryBufferKey)

	flags.Float64Var(&queryBufferChkFlag, bufferCheckFlagName, domain.DefaultBufferCheckMB, "second buffer size the first row is rerun with; its output must not change (0 disables)")
	bindFlagToConfig(flags.Lookup(bufferCheckFlagName), queryBufferCheckKey)

	flags.IntVar(&queryKFlag, kFlagName, defaultQueryK, "k of the queried index")
	bindFlagToConfig(flags.Lookup(kFlagName), queryKKey)

	flags.IntVar(&queryDFlag, dFlagName, defaultQueryD, "color set sampling distance of the queried index")
	bindFlagToConfig(flags.Lookup(dFlagName), queryDKey)

	flags.StringVar(&queryColorsFlag, colorsFlagName, defaultQueryColors, "coloring of the queried index: sequence-colors, file-colors or manual-colors")
	bindFlagToConfig(flags.Lookup(colorsFlagName), queryColorsKey)

	flags.StringVar(&queryStructureFlag, structureFlagName, defaultQueryStructure, "coloring structure of the queried index: sdsl-hybrid or roaring")
	bindFlagToConfig(flags.Lookup(structureFlagName), queryStructureKey)

	flags.BoolVar(&queryRCFlag, rcFlagName, false, "index reverse complements")
	bindFlagToConfig(flags.Lookup(rcFlagName), queryRCKey)
}

func queryArgs(cmd *cobra.Command) (domain.QueryArgs, error) {
	opts, err := sweepOptions(cmd)
	if err != nil {
		return domain.QueryArgs{}, err
	}

	mode, err := m.ParseCompareMode(viper.GetString(queryCompareKey))
	if err != nil {
		return domain.QueryArgs{}, err
	}

	sweep := domain.DefaultQuerySweep()
	sweep.Compare = mode
	sweep.Options = m.QueryOptions{
		SortHits:        viper.GetBool(querySortHitsKey),
		SortOutputLines: viper.GetBool(querySortLinesKey),
		BufferSizeMB:    viper.GetFloat64(queryBufferKey),
	}
	sweep.BufferCheckMB = viper.GetFloat64(queryBufferCheckKey)

	if table := viper.GetString(queryTableKey); table != "" {
		rows, err := domain.LoadQueryTable(m.Path(table))
		if err != nil {
			return domain.QueryArgs{}, err
		}

		sweep.Rows = rows
	}

	return domain.QueryArgs{
		SweepOptions: opts,
		Sweep:        sweep,
		Index: m.BuildConfiguration{
			K:                 viper.GetInt(queryKKey),
			D:                 viper.GetInt(queryDKey),
			ReverseComplement: viper.GetBool(queryRCKey),
			ColorMode:         m.ColorMode(viper.GetString(queryColorsKey)),
			Structure:         m.StructureType(viper.GetString(queryStructureKey)),
		},
		Query:          m.Path(queryFileFlag),
		QueryReference: m.Path(queryReferenceFlag),
	}, nil
}
