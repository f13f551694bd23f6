// Package cmd provides the root command and CLI setup for droidtest.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"droidtest.dev/pkg/droidtest/internal/adapter"
	"droidtest.dev/pkg/droidtest/internal/controller"
	"droidtest.dev/pkg/droidtest/internal/domain"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var gitCLI adapter.GitCLIAdapter
var gitRepo adapter.GitRepoAdapter
var buildRunner adapter.BuildRunnerAdapter
var workflow domain.Workflow
var ui controller.UI

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	gitCLI = adapter.NewLocalGitCLIAdapter()
	gitRepo = adapter.NewGoGitRepoAdapter()
	buildRunner = adapter.NewLocalBuildRunnerAdapter()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		gitCLI,
		gitRepo,
		buildRunner,
		ui,
	)
}

const rootLongDescription = `droidtest bundles the tools used to maintain the UI-test suite of an
Android project:

  loc    count lines added and deleted between two git refs
  scan   find Compose/Espresso UI-test methods and write the reports
  run    re-run the listed tests through the Gradle wrapper
  sync   copy test files from an old ref onto a new one, keeping only listed tests

Defaults can be stored in droidtest.yaml (see "droidtest init") or set through
DROIDTEST_* environment variables.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "droidtest",
		Short:        "Android UI-test maintenance tools",
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
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug entries to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// A failing child process makes droidtest exit with the child's code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cmdErr *m.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}

	return 1
}
