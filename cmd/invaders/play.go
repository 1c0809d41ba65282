package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing in this terminal.

Controls:
  Left/A/H     - Move left (keeps moving until stopped)
  Right/D/L    - Move right
  Down/S/J     - Stop
  Space/Up/W   - Fire
  Enter        - Start / play again
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when not playing)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

The game configuration is read from --config, then
~/.invaders/configs/invaders.{yaml,toml}, then ./configs/, then the
built-in defaults.

Examples:
  invaders play
  invaders play --name ace
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game config file (.yaml or .toml)")
	playCmd.Flags().StringVar(&flagName, "name", defaultPlayer(), "Player name stored with scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	newGame, err := gameFactory(logger)
	if err != nil {
		return err
	}
	game, err := newGame()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, logger, runtimeConfig(), flagName)
}
