// Package cmd contains all CLI commands for the nameparts tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/f3rmion/nameparts/internal/config"
	"github.com/f3rmion/nameparts/internal/dictionary"
	"github.com/f3rmion/nameparts/internal/format"
	"github.com/f3rmion/nameparts/internal/logging"
	"github.com/f3rmion/nameparts/internal/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nameparts",
	Short: "Split full names into salutation, given name, surname and suffix",
	Long: `nameparts parses free-form personal names into their parts:

  Salutation   Mr, Dr, Prof
  First name   given name, kept whole when it is a camel-case word
  Initials     middle initials, uppercased
  Last name    surname including particles such as "van der"
  Suffix       Jr, III, PhD, MD
  Nickname     text in parentheses or double quotes

Running 'nameparts' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/nameparts)")
	flags.Bool("verbose", false, "verbose output")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.StringP("format", "f", "", "output format: json, yaml, csv, tsv, table, template")
	flags.String("template", "", "text/template used by the template format")
	flags.String("dictionary", "", "custom dictionary YAML file")
	flags.String("db", "", "SQLite database for stored results")
	flags.Bool("split", false, "split joint names such as \"John and Jane Smith\" before parsing")

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("template", flags.Lookup("template"))
	viper.BindPFlag("dictionary", flags.Lookup("dictionary"))
	viper.BindPFlag("database", flags.Lookup("db"))
	viper.BindPFlag("split_partners", flags.Lookup("split"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	dir := cfgDir
	if dir == "" {
		var err error
		dir, err = config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
	}
	viper.Set("config_dir", dir)

	defaults := config.Default()
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("workers", defaults.Workers)

	viper.SetEnvPrefix("NAMEPARTS")
	viper.AutomaticEnv()

	viper.SetConfigFile(filepath.Join(dir, config.FileName))
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: could not read config:", err)
	}
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// settings resolves the effective configuration from flags, env, file and defaults.
func settings() *config.Config {
	cfg := &config.Config{
		Dictionary:         viper.GetString("dictionary"),
		NicknameExclusions: viper.GetStringSlice("nickname_exclusions"),
		Format:             viper.GetString("format"),
		Template:           viper.GetString("template"),
		Database:           viper.GetString("database"),
		Workers:            viper.GetInt("workers"),
		SplitPartners:      viper.GetBool("split_partners"),
		LogLevel:           viper.GetString("log_level"),
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg
}

func newLogger(cfg *config.Config) *zap.Logger {
	return logging.New(logging.Level(viper.GetBool("verbose"), cfg.LogLevel), os.Stderr)
}

func loadDictionary(cfg *config.Config) (*dictionary.Dictionary, error) {
	if cfg.Dictionary == "" {
		return dictionary.Default(), nil
	}
	dict, err := dictionary.LoadFromFile(cfg.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	return dict, nil
}

func newParser(cfg *config.Config, logger *zap.Logger) (*parser.Parser, error) {
	dict, err := loadDictionary(cfg)
	if err != nil {
		return nil, err
	}
	return parser.New(dict,
		parser.WithNicknameExclusions(cfg.NicknameExclusions...),
		parser.WithLogger(logger.Named("parser")),
	), nil
}

func newFormatter(cfg *config.Config) (*format.Formatter, error) {
	return format.New(cfg.Format, cfg.Template)
}

// databasePath returns the configured database, falling back to names.db in
// the config directory.
func databasePath(cfg *config.Config) string {
	if cfg.Database != "" {
		return cfg.Database
	}
	return filepath.Join(getConfigDir(), "names.db")
}
