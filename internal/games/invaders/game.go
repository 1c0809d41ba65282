// Package invaders provides the Invaders shooter for the terminal arcade.
// It drives the simulation in the core subpackage from platform input frames
// and draws its scenes onto a character screen.
package invaders

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/config"
	platformcore "github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/core"
)

// maxCellUnits is the coarsest scale still considered playable:
// 20 playfield pixels per column gives a 24x16 cell field at 480x640.
const maxCellUnits = 20

// Row colors from the top row down.
var rowColors = []platformcore.Color{
	platformcore.ColorRed,
	platformcore.ColorCoral,
	platformcore.ColorOrange,
	platformcore.ColorGold,
	platformcore.ColorLime,
}

// Game adapts the simulation to the platform game contract.
// It owns the simulated clock: each step advances it by one frame,
// so pacing does not depend on how regularly the terminal delivers ticks.
type Game struct {
	params core.Params
	world  *core.World

	frameMs float64
	now     float64

	paused    bool
	highScore int
}

// New creates a game with the classic parameters.
func New() *Game {
	g, err := NewWithParams(core.DefaultParams())
	if err != nil {
		panic(err) // Default params are always valid
	}
	return g
}

// NewWithConfig creates a game from a loaded configuration.
func NewWithConfig(cfg config.InvadersConfig) (*Game, error) {
	return NewWithParams(ParamsFromConfig(cfg))
}

// NewWithParams creates a game from engine parameters.
func NewWithParams(p core.Params) (*Game, error) {
	world, err := core.NewWorld(p)
	if err != nil {
		return nil, err
	}
	return &Game{
		params:  p,
		world:   world,
		frameMs: platformcore.DefaultConfig().FrameMillis(),
	}, nil
}

// ParamsFromConfig maps configuration values onto engine parameters.
func ParamsFromConfig(cfg config.InvadersConfig) core.Params {
	return core.Params{
		CanvasWidth:  cfg.Field.Width,
		CanvasHeight: cfg.Field.Height,

		PlayerWidth:        cfg.Player.Width,
		PlayerHeight:       cfg.Player.Height,
		PlayerSpeed:        cfg.Player.Speed,
		PlayerBottomMargin: cfg.Player.BottomMargin,

		BulletWidth:  cfg.Bullet.Width,
		BulletHeight: cfg.Bullet.Height,
		BulletSpeed:  cfg.Bullet.Speed,
		FireCooldown: cfg.Bullet.CooldownMs,

		EnemyWidth:   cfg.Formation.EnemyWidth,
		EnemyHeight:  cfg.Formation.EnemyHeight,
		Rows:         cfg.Formation.Rows,
		Cols:         cfg.Formation.Cols,
		EnemyPadding: cfg.Formation.Padding,
		GridTop:      cfg.Formation.Top,

		Step:             cfg.Formation.Step,
		Drop:             cfg.Formation.Drop,
		MoveInterval:     cfg.Formation.MoveIntervalMs,
		MinMoveInterval:  cfg.Formation.MinIntervalMs,
		SpeedUp:          cfg.Formation.SpeedUp,
		RemainingSpeedup: cfg.Formation.RemainingSpeedup,

		PointsPerKill: cfg.Scoring.PointsPerKill,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset discards the current world and waits for a new start.
// The screen size is taken from the destination screen at render time.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.frameMs = cfg.FrameMillis()
	g.now = 0
	g.paused = false

	// Params were validated when the game was created.
	g.world, _ = core.NewWorld(g.params)
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Step applies one frame of input and advances the simulation by one frame.
// Movement keys latch: left switches right off and vice versa, stop clears both.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.applyIntents(input)

	status := g.world.Status()
	switch {
	case input.Has(platformcore.ActionConfirm) && g.paused:
		g.paused = false
	case input.Has(platformcore.ActionConfirm) && status != core.StatusRunning,
		input.Has(platformcore.ActionRestart) && status == core.StatusGameOver:
		g.start()
	case input.Has(platformcore.ActionPause) && status == core.StatusRunning:
		g.paused = !g.paused
	}

	if g.paused || g.world.Status() != core.StatusRunning {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionFire) {
		g.world.Fire(g.now)
	}

	g.now += g.frameMs
	res := g.world.Tick(g.now)

	return platformcore.StepResult{State: g.State(), Events: translateEvents(res)}
}

// applyIntents forwards movement keys to the world in every state,
// so a stop pressed during a pause is not lost.
func (g *Game) applyIntents(input platformcore.InputFrame) {
	switch {
	case input.Has(platformcore.ActionStop):
		g.world.SetIntent(core.Left, false)
		g.world.SetIntent(core.Right, false)
	case input.Has(platformcore.ActionLeft):
		g.world.SetIntent(core.Left, true)
		g.world.SetIntent(core.Right, false)
	case input.Has(platformcore.ActionRight):
		g.world.SetIntent(core.Right, true)
		g.world.SetIntent(core.Left, false)
	}
}

// start begins a game. The clock restarts so every game paces the same.
func (g *Game) start() {
	g.world.StartOrRestart()
	g.now = 0
	g.paused = false
}

// translateEvents converts a simulation step into platform events.
func translateEvents(res core.StepResult) []platformcore.Event {
	var events []platformcore.Event
	if res.Fired > 0 {
		events = append(events, platformcore.Event{Kind: platformcore.EventFired, Value: res.Fired})
	}
	for _, d := range res.Destroyed {
		events = append(events, platformcore.Event{Kind: platformcore.EventEnemyDestroyed, Value: d.Score})
	}
	if res.Dropped != nil {
		events = append(events, platformcore.Event{Kind: platformcore.EventFormationDropped, Value: res.Dropped.Direction})
	}
	if res.LevelCleared != nil {
		events = append(events, platformcore.Event{Kind: platformcore.EventLevelCleared, Value: res.LevelCleared.Level})
	}
	if res.GameOver != nil {
		events = append(events, platformcore.Event{Kind: platformcore.EventGameOver, Value: res.GameOver.Score})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	state := platformcore.GameState{
		Score:    g.world.Score(),
		Level:    g.world.Level(),
		Started:  g.world.Status() != core.StatusNotStarted,
		GameOver: g.world.Status() == core.StatusGameOver,
		Paused:   g.paused,
	}
	if state.GameOver {
		state.Reason = g.world.Reason().String()
	}
	return state
}

// Scene returns the latest simulation snapshot.
func (g *Game) Scene() core.Scene {
	return g.world.Scene()
}

// Render draws the HUD, the playfield and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	// Row 0 is the HUD, the field sits inside a one-cell border below it.
	avail := platformcore.NewRect(1, 2, dst.Width()-2, dst.Height()-3)
	vp, ok := platformcore.FitViewport(g.params.CanvasWidth, g.params.CanvasHeight, avail, maxCellUnits)
	if !ok {
		g.renderOverlay(dst, "Terminal too small", "Resize to at least "+minSizeHint(g.params))
		return
	}

	border := platformcore.NewRect(vp.Area.X-1, vp.Area.Y-1, vp.Area.W+2, vp.Area.H+2)
	dst.DrawBox(border, platformcore.ColorGray)
	scene := g.world.Scene()
	g.renderScene(dst, vp, scene)

	switch {
	case scene.Status == core.StatusNotStarted:
		g.renderOverlay(dst, "INVADERS", "Press Enter to start")
	case scene.Status == core.StatusGameOver:
		g.renderOverlay(dst, "GAME OVER", "Score: "+strconv.Itoa(scene.Score), "Press Enter or R to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	best := max(g.highScore, g.world.Score())
	hud := " INVADERS | Score: " + strconv.Itoa(g.world.Score()) +
		" | Level: " + strconv.Itoa(g.world.Level()) +
		" | Best: " + strconv.Itoa(best)
	dst.DrawText(0, 0, hud, platformcore.ColorCyan)
}

// renderScene draws enemies, bullets and the player ship.
func (g *Game) renderScene(dst *platformcore.Screen, vp platformcore.Viewport, scene core.Scene) {
	fill := func(b core.Box, r rune, c platformcore.Color) {
		area := vp.Clip(vp.Project(b.X, b.Y, b.W, b.H))
		dst.DrawRect(area, r, c)
	}

	for _, rect := range scene.Rects() {
		switch rect.Kind {
		case core.KindEnemy:
			fill(rect.Box, '█', rowColors[rect.Color%len(rowColors)])
		case core.KindBullet:
			fill(rect.Box, '│', platformcore.ColorWhite)
		case core.KindPlayer:
			fill(rect.Box, '█', platformcore.ColorCyan)
			// Cannon nub centered on top of the hull
			p := rect.Box
			fill(core.Box{X: p.X + p.W/2 - 2, Y: p.Y - 5, W: 4, H: 5}, '▲', platformcore.ColorTeal)
		}
	}
}

// renderOverlay draws a bordered message box in the middle of the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := 2*len(lines) + 1
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)
	for i, l := range lines {
		color := platformcore.ColorWhite
		if i == 0 {
			color = platformcore.ColorGold
		}
		dst.DrawTextCentered(box.Y+1+2*i, l, color)
	}
}

// minSizeHint returns the smallest terminal size, as "WxH", that fits the field.
func minSizeHint(p core.Params) string {
	w := int(math.Ceil(p.CanvasWidth/maxCellUnits)) + 2
	h := int(math.Ceil(p.CanvasHeight/(2*maxCellUnits))) + 3
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}
