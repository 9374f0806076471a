package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/nameparts/internal/batch"
	"github.com/f3rmion/nameparts/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	csvColumn string
	saveBatch bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Parse a file of names",
	Long: `Parse every name in a file. Names are read one per line, or from a
CSV column with --csv-column. Use "-" to read stdin.

Results keep input order. With --save (or --db) they are also stored in
the SQLite database.

Example:
  nameparts batch names.txt -f csv
  nameparts batch contacts.csv --csv-column "Full Name" --split --workers 8
  nameparts batch names.txt --db names.db`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&csvColumn, "csv-column", "", "read names from this CSV column")
	batchCmd.Flags().Int("workers", 0, "number of parallel workers")
	batchCmd.Flags().BoolVar(&saveBatch, "save", false, "store results in the database")
	viper.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
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

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var names []string
	if csvColumn != "" {
		names, err = batch.ReadCSVColumn(r, csvColumn)
	} else {
		names, err = batch.ReadLines(r)
	}
	if err != nil {
		return err
	}

	results, err := batch.ParseAll(cmd.Context(), p, names, batch.Options{
		Workers:       cfg.Workers,
		SplitPartners: cfg.SplitPartners,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if saveBatch || cmd.Flags().Changed("db") {
		path := databasePath(cfg)
		s, err := store.Open(cmd.Context(), path)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.SaveAll(cmd.Context(), results); err != nil {
			return err
		}
		logger.Info("results stored", zap.String("database", path), zap.Int("count", len(results)))
	}

	if err := out.Write(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
