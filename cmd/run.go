package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"droidtest.dev/pkg/droidtest/internal/adapter"
	"droidtest.dev/pkg/droidtest/internal/domain"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

const (
	runTaskFlagName    = "task"
	runWrapperFlagName = "wrapper"
)

var runFQNsFlag string
var runTaskFlag string
var runWrapperFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Re-run the listed tests through Gradle",
		Long: `Read a list of fully qualified test names (one per line, '#' starts a
comment) and run them in a single Gradle invocation:

  <wrapper> <task> --rerun-tasks --tests <name> ...

The Gradle exit code becomes droidtest's exit code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wrapper := viper.GetString(runWrapperKey)
			if wrapper == "" {
				wrapper = adapter.GradleWrapper(runtime.GOOS)
			}

			return workflow.RunTests(cmd.Context(), domain.RunArgs{
				Dir:     ".",
				FQNs:    m.Path(viper.GetString(runFQNsKey)),
				Task:    viper.GetString(runTaskKey),
				Wrapper: wrapper,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&runFQNsFlag, fqnsFlagName, viper.GetString(runFQNsKey), "file listing the tests to run")
	bindFlagToConfig(cmd.Flags().Lookup(fqnsFlagName), runFQNsKey)

	cmd.Flags().StringVar(&runTaskFlag, runTaskFlagName, viper.GetString(runTaskKey), "Gradle task running the unit tests")
	bindFlagToConfig(cmd.Flags().Lookup(runTaskFlagName), runTaskKey)

	cmd.Flags().StringVar(&runWrapperFlag, runWrapperFlagName, viper.GetString(runWrapperKey), "Gradle executable (default ./gradlew, .\\gradlew.bat on Windows)")
	bindFlagToConfig(cmd.Flags().Lookup(runWrapperFlagName), runWrapperKey)
}
