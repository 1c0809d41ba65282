package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame is a scripted Game: tests set its state and pending events directly.
type fakeGame struct {
	state   core.GameState
	pending []core.Event
	seen    [][]core.Action
	high    int
	resets  int
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(core.RuntimeConfig) {
	f.resets++
	f.state = core.GameState{Level: 1}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.seen = append(f.seen, in.Actions())

	if in.Has(core.ActionConfirm) && (!f.state.Started || f.state.GameOver) {
		f.state = core.GameState{Started: true, Level: 1}
	}
	events := f.pending
	f.pending = nil
	return core.StepResult{State: f.state, Events: events}
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE FIELD", core.ColorLime)
}

func (f *fakeGame) State() core.GameState { return f.state }
func (f *fakeGame) SetHighScore(s int)    { f.high = s }

func (f *fakeGame) finish(score, level int) {
	f.state.Score = score
	f.state.Level = level
	f.state.GameOver = true
	f.state.Reason = "Breach"
	f.pending = []core.Event{{Kind: core.EventGameOver, Value: score}}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func updateGame(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func tick() tea.Msg { return TickMsg(time.Now()) }

func TestGameModelQueuesActionsUntilTick(t *testing.T) {
	game := &fakeGame{}
	m := NewGameModel(game, nil, nil, testConfig(), "ann")
	m.Init()

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(game.seen) != 0 {
		t.Fatal("keys reached the game before a tick")
	}

	m, cmd := updateGame(t, m, tick())
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if len(game.seen) != 1 || len(game.seen[0]) != 2 {
		t.Fatalf("first step saw %v, expected left and fire", game.seen)
	}

	// The frame is cleared after each step
	updateGame(t, m, tick())
	if len(game.seen[1]) != 0 {
		t.Errorf("second step saw %v, expected no actions", game.seen[1])
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	game := &fakeGame{}
	m := NewGameModel(game, store, nil, testConfig(), "ann")
	m.Init()

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateGame(t, m, tick())
	firstRun := m.RunID()
	if firstRun == "" {
		t.Fatal("no run ID after start")
	}

	game.finish(120, 2)
	m, _ = updateGame(t, m, tick())
	game.pending = []core.Event{{Kind: core.EventGameOver, Value: 120}}
	m, _ = updateGame(t, m, tick())

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	if got := scores[0]; got.RunID != firstRun || got.Player != "ann" || got.Score != 120 || got.Level != 2 {
		t.Errorf("saved entry = %+v", got)
	}
	if game.high != 120 {
		t.Errorf("high score pushed to game = %d, expected 120", game.high)
	}

	// Restart starts a new run
	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateGame(t, m, tick())
	if m.RunID() == firstRun || m.RunID() == "" {
		t.Errorf("restart kept run ID %q", m.RunID())
	}
	game.finish(50, 1)
	updateGame(t, m, tick())

	if scores, _ := store.TopScores(10); len(scores) != 2 {
		t.Errorf("expected 2 saved scores after the second run, got %d", len(scores))
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	game := &fakeGame{}
	m := NewGameModel(game, store, nil, testConfig(), "ann")

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateGame(t, m, tick())
	game.finish(0, 1)
	updateGame(t, m, tick())

	if scores, _ := store.TopScores(10); len(scores) != 0 {
		t.Errorf("expected no saved score for an empty run, got %d", len(scores))
	}
}

func TestGameModelBack(t *testing.T) {
	game := &fakeGame{}
	m := NewGameModel(game, nil, nil, testConfig(), "ann")

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateGame(t, m, tick())

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Error("back accepted during active play")
	}

	game.finish(10, 1)
	m, _ = updateGame(t, m, tick())
	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("back ignored after game over")
	}

	standalone := NewGameModel(&fakeGame{}, nil, nil, testConfig(), "ann")
	standalone.standalone = true
	standalone, cmd := updateGame(t, standalone, runeKey('b'))
	if !standalone.IsQuitting() || cmd == nil {
		t.Error("standalone back should quit the program")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&fakeGame{}, nil, nil, testConfig(), "ann")

	m, cmd := updateGame(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelResizeAndView(t *testing.T) {
	m := NewGameModel(&fakeGame{}, nil, nil, testConfig(), "ann")

	m, _ = updateGame(t, m, tea.WindowSizeMsg{Width: 70, Height: 25})
	if m.screen.Width() != 70 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 70x24", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "FAKE FIELD") {
		t.Error("View() does not contain the game render")
	}
	if !strings.Contains(view, "fire") {
		t.Error("View() does not contain the help footer")
	}
}

func TestGameModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewGameModel(&fakeGame{}, nil, nil, testConfig(), "ann")
	updateGame(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(home, ".invaders", "screenshots", "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (err %v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "FAKE FIELD") {
		t.Errorf("screenshot starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xy", core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "abcd") {
		t.Errorf("same-color cells should form one run, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "xy") {
		t.Errorf("second line = %q", lines[1])
	}
}
