// invaders is a terminal Space Invaders: play locally or host an SSH arcade.
//
// Usage:
//
//	invaders play            - Play a game in this terminal
//	invaders menu            - Start the menu (play, high scores)
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the high score table
//	invaders config          - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Shared by play, menu and serve
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "TUI Invaders - defend the bottom line in your terminal",
	Long: `TUI Invaders is a terminal remake of the classic fixed shooter.
A grid of enemies marches sideways, drops at every wall and speeds up
each time you clear it. Shoot them all before they reach your line.

Available commands:
  play     - Play directly in this terminal
  menu     - Menu with play and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  invaders play
  invaders play --config ./fast.toml
  invaders menu --fps 30
  invaders serve --ssh :2222
  invaders scores --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger. Without --log-file, output goes to
// fallback; interactive commands pass io.Discard because the game owns the screen.
// The returned close function releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, closeFn, nil
}

// gameFactory loads the game configuration once and returns a factory
// creating a fresh game from it.
func gameFactory(logger *log.Logger) (tui.GameFactory, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return nil, err
	}
	params := invaders.ParamsFromConfig(cfg)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger.Debug("game config loaded", "path", flagConfig, "rows", cfg.Formation.Rows, "cols", cfg.Formation.Cols)

	return func() (tui.Game, error) {
		g, err := invaders.NewWithParams(params)
		if err != nil {
			return nil, err
		}
		return g, nil
	}, nil
}

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openStore opens the score database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// defaultPlayer returns the local user name for saved scores.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
