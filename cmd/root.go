// Package cmd provides the root command and CLI setup for kmeroracle.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kmeroracle.dev/pkg/kmeroracle/internal/adapter"
	"kmeroracle.dev/pkg/kmeroracle/internal/controller"
	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
)

// workflow is built from the configuration on first use. Tests replace it.
var workflow domain.Workflow

var (
	reportsOutputDirFlag string
	sutBinaryFlag        string
	referenceBinaryFlag  string
	corpusDirFlag        string
	workDirFlag          string
	threadsFlag          int
	commandTimeoutFlag   int64
	verboseFlag          bool
	logFileFlag          string
)

const selectionHelp = `Rows can be restricted with --only REGEX (matched against row names) and
split across CI jobs with --shard INDEX/TOTAL; shard reports are combined
with "kmeroracle merge".`

const rootLongDescription = `kmeroracle checks a k-mer indexing and pseudoalignment tool against a
brute-force reference implementation.

It builds indexes over a FASTA corpus for every combination of k, strand,
coloring mode and coloring structure, dumps the color matrices and query
results of both programs, and compares them line by line. Every run ends
with a report listing each configuration as passed, failed or errored.

` + selectionHelp

const verifyLongDescription = `Run the build matrix: fresh builds, structure transforms, color
additions, round trips and determinism checks.

` + selectionHelp

const queryLongDescription = `Build one index and run every row of the query parameter table
against both programs. Without --query a mutated query corpus is
generated from the first corpus file.

` + selectionHelp

const listLongDescription = `List the build matrix rows "verify" would run with the same flags.

` + selectionHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "kmeroracle",
		Short:        "Correctness oracle for k-mer index builds and queries",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&reportsOutputDirFlag, outputFlagName, "o", defaultReportsDir, "directory for run reports")
	bindFlagToConfig(flags.Lookup(outputFlagName), reportsDirKey)

	flags.StringVar(&sutBinaryFlag, sutFlagName, defaultSUTBinary, "path of the indexing tool under test")
	bindFlagToConfig(flags.Lookup(sutFlagName), sutBinaryKey)

	flags.StringVar(&referenceBinaryFlag, referenceFlagName, defaultReferenceBinary, "path of the reference implementation")
	bindFlagToConfig(flags.Lookup(referenceFlagName), referenceBinaryKey)

	flags.StringVar(&corpusDirFlag, corpusFlagName, defaultCorpusDir, "directory holding the FASTA corpus")
	bindFlagToConfig(flags.Lookup(corpusFlagName), corpusDirKey)

	flags.StringVar(&workDirFlag, workDirFlagName, defaultWorkDir, "directory receiving per-run artifacts")
	bindFlagToConfig(flags.Lookup(workDirFlagName), workDirKey)

	flags.IntVarP(&threadsFlag, threadsFlagName, "t", defaultThreads, "threads passed to every build and query")
	bindFlagToConfig(flags.Lookup(threadsFlagName), threadsKey)

	flags.Int64Var(&commandTimeoutFlag, commandTimeoutName, int64(defaultCommandTimeout.Seconds()), "seconds before a single external command is killed (0 disables)")
	bindFlagToConfig(flags.Lookup(commandTimeoutName), commandTimeoutKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, "log-file", defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup("log-file"), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// runWorkflow calls fn with a context that is cancelled on SIGINT, SIGTERM
// or when the user aborts the interactive UI.
func runWorkflow(cmd *cobra.Command, fn func(ctx context.Context, wf domain.Workflow) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wf, err := resolveWorkflow(cmd, stop)
	if err != nil {
		return err
	}

	return fn(ctx, wf)
}

func resolveWorkflow(cmd *cobra.Command, interrupt func()) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	settings := settingsFromConfig()
	interactive := controller.IsTTY(os.Stdout)

	// Child process output would corrupt the TUI, so it goes to the log.
	var childOutput io.Writer = cmd.ErrOrStderr()
	if interactive {
		childOutput = logWriter
	}

	fs := adapter.NewLocalCorpusFSAdapter()
	runner := adapter.NewLocalCommandRunnerAdapter(childOutput, childOutput, commandTimeout())

	provisioner, err := domain.NewProvisioner(fs, settings.FixturePattern, settings.ColorFile)
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(
		settings,
		fs,
		adapter.NewReportStore(),
		controller.NewUI(cmd, interactive, interrupt),
		provisioner,
		domain.NewOracle(fs),
		domain.LocalOrchestratorFactory(runner, fs, settings),
	), nil
}

// parseShardFlag parses INDEX/TOTAL. An empty value selects every row.
func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1, fmt.Errorf("invalid shard %q: want INDEX/TOTAL with 0 <= INDEX < TOTAL", shard)
	}

	return index, total, nil
}

func parseOnlyFlag(only string) (*regexp.Regexp, error) {
	if only == "" {
		return nil, nil
	}

	re, err := regexp.Compile(only)
	if err != nil {
		return nil, fmt.Errorf("invalid --only pattern: %w", err)
	}

	return re, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
