package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"droidtest.dev/pkg/droidtest/internal/domain"
)

const (
	locPathFlagName             = "path"
	locExtFlagName              = "ext"
	locIgnoreWhitespaceFlagName = "ignore-whitespace"
)

var locPathFlag string
var locExtFlag []string
var locIgnoreWhitespaceFlag bool

// locCmd represents the loc command.
var locCmd = newLocCmd()

func newLocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loc <base> <compare>",
		Short: "Count lines added and deleted between two git refs",
		Long: `Count the lines added and deleted between two git refs (branches, tags or
commits) for the configured source path, using git diff --numstat.
Binary files are ignored. When git fails its output is printed and droidtest
exits with git's exit code.

Extensions may be repeated (-e .kt -e .java), comma separated (-e .kt,.java)
or listed after the refs (-e .kt .java). Arguments starting with a dot are
always read as extensions, since git refs cannot start with one.`,
		Example: `  droidtest loc release/1.2 release/1.3
  droidtest loc v1.0 HEAD -e .kt .java -i`,
		Args: locArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, trailing := splitLocArgs(args)
			exts := append(append([]string{}, viper.GetStringSlice(locExtensionsKey)...), trailing...)

			_, err := workflow.CountLines(cmd.Context(), domain.LineCountArgs{
				Dir:              ".",
				Base:             refs[0],
				Compare:          refs[1],
				Path:             viper.GetString(locPathKey),
				Extensions:       parseExtensions(exts),
				IgnoreWhitespace: viper.GetBool(locIgnoreWhitespaceKey),
			})

			return err
		},
	}

	configureLocFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(locCmd)
}

func configureLocFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&locPathFlag, locPathFlagName, viper.GetString(locPathKey), "path inside the repository to diff")
	bindFlagToConfig(cmd.Flags().Lookup(locPathFlagName), locPathKey)

	cmd.Flags().StringSliceVarP(&locExtFlag, locExtFlagName, "e", viper.GetStringSlice(locExtensionsKey), "file extensions to include, repeatable or space/comma separated")
	bindFlagToConfig(cmd.Flags().Lookup(locExtFlagName), locExtensionsKey)

	cmd.Flags().BoolVarP(&locIgnoreWhitespaceFlag, locIgnoreWhitespaceFlagName, "i", viper.GetBool(locIgnoreWhitespaceKey), "ignore whitespace-only changes (git diff -w)")
	bindFlagToConfig(cmd.Flags().Lookup(locIgnoreWhitespaceFlagName), locIgnoreWhitespaceKey)
}

func locArgs(_ *cobra.Command, args []string) error {
	refs, _ := splitLocArgs(args)
	if len(refs) != 2 {
		return fmt.Errorf("accepts 2 ref arg(s), received %d", len(refs))
	}

	return nil
}

// splitLocArgs separates the two refs from extensions given as positional
// arguments.
func splitLocArgs(args []string) ([]string, []string) {
	var refs, exts []string

	for _, arg := range args {
		if strings.HasPrefix(arg, ".") {
			exts = append(exts, arg)
			continue
		}

		refs = append(refs, arg)
	}

	return refs, exts
}

// parseExtensions flattens extension values that may themselves hold several
// space or comma separated entries.
func parseExtensions(values []string) []string {
	var exts []string

	for _, value := range values {
		for _, field := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			exts = append(exts, field)
		}
	}

	return exts
}
