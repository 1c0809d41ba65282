package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagMenuName string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, Esc returns to the menu.

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game config file (.yaml or .toml)")
	menuCmd.Flags().StringVar(&flagMenuName, "name", defaultPlayer(), "Player name stored with scores")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	newGame, err := gameFactory(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(newGame, store, logger, runtimeConfig(), flagMenuName)
}
