package cmd

import (
	"fmt"

	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/f3rmion/nameparts/internal/store"
	"github.com/spf13/cobra"
)

var listLimit int

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Query stored parse results",
	Long: `Query results stored by 'nameparts batch --save'.

The database is --db, or names.db in the config directory.`,
}

var dbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored results, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.Store) ([]store.Entry, error) {
			return s.List(cmd.Context(), listLimit)
		})
	},
}

var dbFindCmd = &cobra.Command{
	Use:   "find <last-name>",
	Short: "Find stored results by surname",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.Store) ([]store.Entry, error) {
			return s.FindByLastName(cmd.Context(), args[0])
		})
	},
}

var dbCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count stored results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(cmd.Context(), databasePath(settings()))
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.Count(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
		return err
	},
}

func init() {
	dbListCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum results (0 for all)")

	dbCmd.AddCommand(dbListCmd, dbFindCmd, dbCountCmd)
	rootCmd.AddCommand(dbCmd)
}

func withStore(cmd *cobra.Command, query func(*store.Store) ([]store.Entry, error)) error {
	cfg := settings()
	out, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	s, err := store.Open(cmd.Context(), databasePath(cfg))
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := query(s)
	if err != nil {
		return err
	}

	results := make([]nameparts.Result, len(entries))
	for i, e := range entries {
		results[i] = e.Result
	}
	if err := out.Write(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
