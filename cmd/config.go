package cmd

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"kmeroracle.dev/pkg/kmeroracle/internal/domain"
	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "kmeroracle"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName     = "output"
	sutFlagName        = "sut"
	referenceFlagName  = "reference"
	corpusFlagName     = "corpus"
	workDirFlagName    = "work-dir"
	threadsFlagName    = "threads"
	parallelFlagName   = "parallel"
	verboseFlagName    = "verbose"
	commandTimeoutName = "command-timeout"

	sutBinaryKey        = "sut.binary"
	referenceBinaryKey  = "reference.binary"
	corpusDirKey        = "paths.corpus"
	workDirKey          = "paths.work"
	tempDirKey          = "paths.temp"
	reportsDirKey       = "paths.reports"
	fixturePatternKey   = "fixtures.pattern"
	colorFileKey        = "fixtures.color_file"
	threadsKey          = "run.threads"
	maxThreadsKey       = "run.max_threads"
	parallelKey         = "run.parallel"
	commandTimeoutKey   = "run.command_timeout"
	matrixFileKey       = "verify.matrix"
	queryTableKey       = "query.table"
	queryCompareKey     = "query.compare"
	querySortHitsKey    = "query.sort_hits"
	querySortLinesKey   = "query.sort_output_lines"
	queryBufferKey      = "query.buffer_size_mb"
	queryBufferCheckKey = "query.buffer_check_mb"
	queryKKey           = "query.k"
	queryDKey           = "query.d"
	queryColorsKey      = "query.colors"
	queryStructureKey   = "query.structure"
	queryRCKey          = "query.reverse_complements"

	defaultSUTBinary       = "themisto"
	defaultReferenceBinary = "themisto_reference_implementation"
	defaultCorpusDir       = "./data"
	defaultWorkDir         = ".kmeroracle-runs"
	defaultReportsDir      = ".kmeroracle-reports"
	defaultThreads         = 4
	defaultMaxThreads      = 4
	defaultParallel        = 1
	defaultCommandTimeout  = 30 * time.Minute

	defaultQueryK         = 31
	defaultQueryD         = 5
	defaultQueryBufferMB  = 0.00001
	defaultQueryCompare   = string(m.CompareSorted)
	defaultQueryColors    = string(m.ColorsSequence)
	defaultQueryStructure = string(m.SDSLHybrid)

	envPrefix = "KMERORACLE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".kmeroracle.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	globalLogger *slog.Logger
	// logWriter also receives the output of child processes while the TUI
	// owns the terminal.
	logWriter io.Writer = io.Discard
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(sutBinaryKey, defaultSUTBinary)
	viper.SetDefault(referenceBinaryKey, defaultReferenceBinary)
	viper.SetDefault(corpusDirKey, defaultCorpusDir)
	viper.SetDefault(workDirKey, defaultWorkDir)
	viper.SetDefault(tempDirKey, "")
	viper.SetDefault(reportsDirKey, defaultReportsDir)
	viper.SetDefault(fixturePatternKey, domain.DefaultFixturePattern)
	viper.SetDefault(colorFileKey, "")
	viper.SetDefault(threadsKey, defaultThreads)
	viper.SetDefault(maxThreadsKey, defaultMaxThreads)
	viper.SetDefault(parallelKey, defaultParallel)
	viper.SetDefault(commandTimeoutKey, int64(defaultCommandTimeout.Seconds()))
	viper.SetDefault(matrixFileKey, "")

	viper.SetDefault(queryTableKey, "")
	viper.SetDefault(queryCompareKey, defaultQueryCompare)
	viper.SetDefault(querySortHitsKey, true)
	viper.SetDefault(querySortLinesKey, true)
	viper.SetDefault(queryBufferKey, defaultQueryBufferMB)
	viper.SetDefault(queryBufferCheckKey, domain.DefaultBufferCheckMB)
	viper.SetDefault(queryKKey, defaultQueryK)
	viper.SetDefault(queryDKey, defaultQueryD)
	viper.SetDefault(queryColorsKey, defaultQueryColors)
	viper.SetDefault(queryStructureKey, defaultQueryStructure)
	viper.SetDefault(queryRCKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// settingsFromConfig collects the harness settings from flags, environment
// and the config file.
func settingsFromConfig() domain.Settings {
	return domain.Settings{
		SUTBinary:       viper.GetString(sutBinaryKey),
		ReferenceBinary: viper.GetString(referenceBinaryKey),
		CorpusDir:       m.Path(viper.GetString(corpusDirKey)),
		FixturePattern:  viper.GetString(fixturePatternKey),
		ColorFile:       m.Path(viper.GetString(colorFileKey)),
		WorkDir:         m.Path(viper.GetString(workDirKey)),
		TempDir:         m.Path(viper.GetString(tempDirKey)),
		Threads:         viper.GetInt(threadsKey),
		MaxThreads:      viper.GetInt(maxThreadsKey),
	}
}

func commandTimeout() time.Duration {
	return time.Duration(viper.GetInt64(commandTimeoutKey)) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	rotating := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(rotating, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	logWriter = rotating
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
