package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"droidtest.dev/pkg/droidtest/internal/domain"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

const (
	syncRepoFlagName     = "repo"
	syncOldFlagName      = "old"
	syncNewFlagName      = "new"
	syncTestRootFlagName = "test-root"
	syncDryRunFlagName   = "dry-run"
)

type syncFlags struct {
	repo     string
	oldRef   string
	newRef   string
	fqns     string
	testRoot string
	dryRun   bool
}

// syncCmd represents the sync command.
var syncCmd = newSyncCmd()

func newSyncCmd() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy test files from an old ref onto a new one, keeping only listed tests",
		Long: `Read the list of wanted tests from the old ref, locate each listed class
under the test root, check out the new ref and overwrite those files with
their old-ref content minus every @Test method that is not listed.
The rewritten files are staged; nothing is committed.`,
		Example: `  droidtest sync --repo . --old v2025.1.2 --new v2025.2.0 --fqns app/ui_test_fqns.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Sync(cmd.Context(), domain.SyncArgs{
				Repo:     m.Path(flags.repo),
				OldRef:   flags.oldRef,
				NewRef:   flags.newRef,
				FQNs:     flags.fqns,
				TestRoot: viper.GetString(syncTestRootKey),
				DryRun:   flags.dryRun,
			})

			return err
		},
	}

	configureSyncFlags(cmd, flags)

	return cmd
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func configureSyncFlags(cmd *cobra.Command, flags *syncFlags) {
	cmd.Flags().StringVar(&flags.repo, syncRepoFlagName, "", "path to the git repository")
	cmd.Flags().StringVar(&flags.oldRef, syncOldFlagName, "", "older branch, tag or commit holding the tests")
	cmd.Flags().StringVar(&flags.newRef, syncNewFlagName, "", "newer branch, tag or commit to copy the tests onto")
	cmd.Flags().StringVar(&flags.fqns, fqnsFlagName, "", "path of the FQN list inside the repository")

	for _, name := range []string{syncRepoFlagName, syncOldFlagName, syncNewFlagName, fqnsFlagName} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}

	cmd.Flags().StringVar(&flags.testRoot, syncTestRootFlagName, viper.GetString(syncTestRootKey), "directory inside the repository that holds the tests")
	bindFlagToConfig(cmd.Flags().Lookup(syncTestRootFlagName), syncTestRootKey)

	cmd.Flags().BoolVar(&flags.dryRun, syncDryRunFlagName, false, "print the pruned diffs without checking out or writing anything")
}
