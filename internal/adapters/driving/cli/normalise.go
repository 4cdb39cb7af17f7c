package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var normaliseCmd = &cobra.Command{
	Use:     "normalise [line...]",
	Aliases: []string{"normalize"},
	Short:   "Show a line as the parser sees it",
	Long: `Print each line after cleanup. HTML entities are decoded, fractions become
decimals, unicode dashes and slashes are folded to ASCII, and a leading "a" or
"an" becomes "1".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalise,
}

func init() {
	rootCmd.AddCommand(normaliseCmd)
}

func runNormalise(cmd *cobra.Command, args []string) error {
	if err := requireParse(); err != nil {
		return err
	}
	for _, line := range args {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), parseService.Normalise(line)); err != nil {
			return err
		}
	}
	return nil
}
