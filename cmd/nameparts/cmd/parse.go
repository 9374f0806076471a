package cmd

import (
	"fmt"

	"github.com/f3rmion/nameparts/internal/batch"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [name...]",
	Short: "Parse one or more names",
	Long: `Parse each argument as a full name and print its parts.
With no arguments, names are read from stdin, one per line.

Example:
  nameparts parse "Dr John Q. Public Jr."
  nameparts parse -f json "Mary-Jane O'Brien (Janie)"
  cat names.txt | nameparts parse -f csv`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := settings()
	logger := newLogger(cfg)
	defer logger.Sync()

	p, err := newParser(cfg, logger)
	if err != nil {
		return err
	}
	out, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		if names, err = batch.ReadLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	results, err := batch.ParseAll(cmd.Context(), p, names, batch.Options{
		Workers:       cfg.Workers,
		SplitPartners: cfg.SplitPartners,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if err := out.Write(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
