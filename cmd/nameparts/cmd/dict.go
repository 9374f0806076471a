package cmd

import (
	"github.com/spf13/cobra"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspect the name dictionary",
}

var dictShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active dictionary as YAML",
	Long: `Print the salutations, suffixes, surname particles and vowels that the
parser uses. The output can be saved, edited and passed back with --dictionary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary(settings())
		if err != nil {
			return err
		}
		out, err := dict.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	dictCmd.AddCommand(dictShowCmd)
	rootCmd.AddCommand(dictCmd)
}
