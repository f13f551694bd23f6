package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"droidtest.dev/pkg/droidtest/internal/domain"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

var viewFQNsFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a generated FQN list",
		Long:  "Show the tests of a fully qualified method list grouped by class.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{FQNs: m.Path(viper.GetString(viewFQNsKey))})
		},
	}

	cmd.Flags().StringVar(&viewFQNsFlag, fqnsFlagName, viper.GetString(viewFQNsKey), "FQN list to show")
	bindFlagToConfig(cmd.Flags().Lookup(fqnsFlagName), viewFQNsKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
