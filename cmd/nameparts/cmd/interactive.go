package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/nameparts/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for parsing names.

Controls:
  Enter    Parse name
  Tab      Toggle partner splitting
  ←/→      Switch between people
  Ctrl+Y   Copy the record as JSON
  Esc      Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := settings()
	logger := newLogger(cfg)
	defer logger.Sync()

	p, err := newParser(cfg, logger)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(
		tui.New(p, cfg.SplitPartners),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
