package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/nameparts/internal/partner"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <text>",
	Short: "Split a joint name into one name per person",
	Long: `Split text naming two or more people into separate names, one per line.
"&" is read as "and".

Example:
  nameparts split "Mr and Mrs John Smith"
  nameparts split "John Smith & Jane Doe"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	for _, name := range partner.SplitJointName(strings.Join(args, " ")) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}
	return nil
}
