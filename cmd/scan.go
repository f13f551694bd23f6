package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"droidtest.dev/pkg/droidtest/internal/domain"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

const (
	scanRootFlagName          = "root"
	scanReportFlagName        = "report"
	scanGithubBaseURLFlagName = "github-base-url"
	scanSummaryFlagName       = "summary"
)

var scanRootFlag string
var scanReportFlag string
var scanFQNsFlag string
var scanGithubBaseURLFlag string
var scanExcludeFlag []string
var scanParallelFlag int
var scanSummaryFlag string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find UI-test methods and write the reports",
		Long: `Walk the project for Kotlin and Java test sources that use Compose or
Espresso test APIs and list every @Test method whose body performs UI calls.

Two reports are written: a spreadsheet-friendly list with one HYPERLINK
formula per file followed by its UI-test methods, and a list of fully
qualified method names usable as Gradle --tests patterns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Scan(cmd.Context(), domain.ScanArgs{
				Root:     m.Path(viper.GetString(scanRootKey)),
				Report:   m.Path(viper.GetString(scanReportKey)),
				FQNs:     m.Path(viper.GetString(scanFQNsKey)),
				Summary:  m.Path(viper.GetString(scanSummaryKey)),
				BaseURL:  viper.GetString(scanGithubBaseURLKey),
				Exclude:  viper.GetStringSlice(scanExcludeKey),
				Parallel: viper.GetInt(scanParallelKey),
			})

			return err
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scanRootFlag, scanRootFlagName, viper.GetString(scanRootKey), "project directory to scan")
	bindFlagToConfig(cmd.Flags().Lookup(scanRootFlagName), scanRootKey)

	cmd.Flags().StringVar(&scanReportFlag, scanReportFlagName, viper.GetString(scanReportKey), "output path of the hyperlink report")
	bindFlagToConfig(cmd.Flags().Lookup(scanReportFlagName), scanReportKey)

	cmd.Flags().StringVar(&scanFQNsFlag, fqnsFlagName, viper.GetString(scanFQNsKey), "output path of the fully qualified method list")
	bindFlagToConfig(cmd.Flags().Lookup(fqnsFlagName), scanFQNsKey)

	cmd.Flags().StringVar(&scanGithubBaseURLFlag, scanGithubBaseURLFlagName, viper.GetString(scanGithubBaseURLKey),
		"base URL for file links, e.g. https://github.com/org/repo/blob/main")
	bindFlagToConfig(cmd.Flags().Lookup(scanGithubBaseURLFlagName), scanGithubBaseURLKey)

	cmd.Flags().StringArrayVarP(&scanExcludeFlag, excludeFlagName, "x", viper.GetStringSlice(scanExcludeKey), "skip files matching a glob relative to the root (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), scanExcludeKey)

	cmd.Flags().IntVarP(&scanParallelFlag, parallelFlagName, "p", viper.GetInt(scanParallelKey), "number of files read concurrently (0 = unbounded)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), scanParallelKey)

	cmd.Flags().StringVar(&scanSummaryFlag, scanSummaryFlagName, viper.GetString(scanSummaryKey), "also write a YAML inventory to this path")
	bindFlagToConfig(cmd.Flags().Lookup(scanSummaryFlagName), scanSummaryKey)
}
