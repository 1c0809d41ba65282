package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Game is the contract the host drives: a fixed-tick simulation that
// consumes input frames and draws itself onto a character screen.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	SetHighScore(score int)
}

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// GameModel is the Bubble Tea model running one game.
// It is used directly by `invaders play` and embedded by SessionModel.
type GameModel struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	runID      string
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been saved
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game, loads the best score and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.store != nil {
		if best, err := m.store.HighScore(); err == nil {
			m.game.SetHighScore(best)
		} else {
			m.logger.Warn("could not load high score", "error", err)
		}
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Game actions are queued for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Back is ignored during active play
		if m.gameState.Started && !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one simulation step and reacts to its events.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A new run begins on the first start and on every restart
	if m.gameState.Started && !m.gameState.GameOver && (!prev.Started || prev.GameOver) {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.logger.Debug("game started", "run", m.runID, "player", m.player)
	}

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventLevelCleared:
			m.logger.Debug("level cleared", "run", m.runID, "level", ev.Value, "score", m.gameState.Score)
		case core.EventGameOver:
			m.logger.Debug("game over",
				"run", m.runID,
				"score", ev.Value,
				"level", m.gameState.Level,
				"reason", m.gameState.Reason,
			)
			m.saveScore()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run once. Failures are logged, play goes on.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.gameState.Score == 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:  m.runID,
		Player: m.player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	})
	if err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "error", err)
		return
	}
	if best, err := m.store.HighScore(); err == nil {
		m.game.SetHighScore(best)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game followed by the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + dimStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunID returns the identifier of the current run, empty before the first start.
func (m GameModel) RunID() string {
	return m.runID
}

// Run plays a single game in the local terminal until the player quits.
func Run(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, logger, cfg, player)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
