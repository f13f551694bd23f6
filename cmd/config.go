package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"droidtest.dev/pkg/droidtest/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "droidtest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	fqnsFlagName     = "fqns"
	parallelFlagName = "parallel"
	excludeFlagName  = "exclude"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"

	locPathKey             = "loc.path"
	locExtensionsKey       = "loc.extensions"
	locIgnoreWhitespaceKey = "loc.ignore_whitespace"

	scanRootKey          = "scan.root"
	scanReportKey        = "scan.report"
	scanFQNsKey          = "scan.fqns"
	scanGithubBaseURLKey = "scan.github_base_url"
	scanExcludeKey       = "scan.exclude"
	scanParallelKey      = "scan.parallel"
	scanSummaryKey       = "scan.summary"

	runFQNsKey    = "run.fqns"
	runTaskKey    = "run.task"
	runWrapperKey = "run.wrapper"

	syncTestRootKey = "sync.test_root"

	viewFQNsKey = "view.fqns"

	defaultLocPath      = "app/src/main/java"
	defaultScanRoot     = "."
	defaultReportFile   = "ui_test_report.txt"
	defaultFQNsFile     = "ui_test_fqns.txt"
	defaultScanParallel = 4

	envPrefix = "DROIDTEST"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".droidtest.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultLocExtensions = []string{".kt"}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("config file not loaded", "error", err)
		}
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(locPathKey, defaultLocPath)
	viper.SetDefault(locExtensionsKey, defaultLocExtensions)
	viper.SetDefault(locIgnoreWhitespaceKey, false)

	viper.SetDefault(scanRootKey, defaultScanRoot)
	viper.SetDefault(scanReportKey, defaultReportFile)
	viper.SetDefault(scanFQNsKey, defaultFQNsFile)
	viper.SetDefault(scanGithubBaseURLKey, "")
	viper.SetDefault(scanExcludeKey, []string{})
	viper.SetDefault(scanParallelKey, defaultScanParallel)
	viper.SetDefault(scanSummaryKey, "")

	viper.SetDefault(runFQNsKey, defaultFQNsFile)
	viper.SetDefault(runTaskKey, domain.DefaultGradleTask)
	viper.SetDefault(runWrapperKey, "")

	viper.SetDefault(syncTestRootKey, domain.DefaultTestRoot)

	viper.SetDefault(viewFQNsKey, defaultFQNsFile)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger routes the global slog logger to a rotating log file.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
