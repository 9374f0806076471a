package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/nameparts/internal/config"
	"github.com/f3rmion/nameparts/internal/dictionary"
	"github.com/spf13/cobra"
)

const dictionaryFile = "dictionary.yaml"

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and dictionary",
	Long: `Create the config directory and write config.yaml and dictionary.yaml.

The written config points at dictionary.yaml, so edits to the word lists
take effect on the next run. Existing files are kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := getConfigDir()
	if err := config.EnsureDir(dir); err != nil {
		return err
	}

	dictPath := filepath.Join(dir, dictionaryFile)
	written, err := writeIfMissing(dictPath, func() error {
		return dictionary.Default().SaveToFile(dictPath)
	})
	if err != nil {
		return err
	}
	report(cmd, dictPath, written)

	cfgPath := filepath.Join(dir, config.FileName)
	written, err = writeIfMissing(cfgPath, func() error {
		cfg := config.Default()
		cfg.Dictionary = dictPath
		cfg.Database = filepath.Join(dir, "names.db")
		return config.Save(cfgPath, cfg)
	})
	if err != nil {
		return err
	}
	report(cmd, cfgPath, written)

	return nil
}

func writeIfMissing(path string, write func() error) (bool, error) {
	if !forceInit {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := write(); err != nil {
		return false, err
	}
	return true, nil
}

func report(cmd *cobra.Command, path string, written bool) {
	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s\n", path)
	}
}
