// Package t2048 implements the 2048 sliding-tile puzzle: a pure board
// engine (Engine) and a Game adapter that drives it from platform input.
package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Variant describes a registered board variant.
type Variant struct {
	ID    string
	Title string
	Size  int // 0 means use the configured board size
}

// Variants registered with the platform.
var Variants = []Variant{
	{ID: "2048", Title: "2048", Size: 0},
	{ID: "2048_mini", Title: "2048 Mini (3x3)", Size: 3},
	{ID: "2048_big", Title: "2048 Big (5x5)", Size: 5},
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game adapts an Engine to the platform's tick loop.
type Game struct {
	variant   Variant
	cfg       config.T2048Config
	cfgLoaded bool

	engine    *Engine
	recording *Recording
	tick      uint64

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset starts a new game seeded from cfg.Seed. The high score survives
// resets of the same Game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()

	size := g.boardSize()
	rng := NewRand(cfg.Seed)

	if g.engine == nil || g.engine.Size() != size {
		e, err := NewEngine(size, rng, WithFourProbability(g.cfg.Spawn.FourProbability))
		if err != nil {
			size = DefaultSize
			e, _ = NewEngine(size, rng, WithFourProbability(g.cfg.Spawn.FourProbability))
		}
		g.engine = e
	} else {
		g.engine.SetRand(rng)
		g.engine.Reset()
	}

	g.recording = NewRecording(cfg.Seed, size, g.engine.FourProbability())
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false

	g.checkScreenSize()
}

// loadConfig reads the game config once per Game.
func (g *Game) loadConfig() {
	if g.cfgLoaded {
		return
	}
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	g.cfg = cfg
	g.cfgLoaded = true
}

func (g *Game) boardSize() int {
	if g.variant.Size > 0 {
		return g.variant.Size
	}
	return g.cfg.Board.Size
}

// checkScreenSize checks if the screen is large enough for board and HUD.
func (g *Game) checkScreenSize() {
	w, h := boardDims(g.engine.Size())
	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight+footerHeight
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick: at most one move is applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Restart after game over is handled by the platform via Reset
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFromInput picks one direction; Up wins over Down over Left over Right.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove applies one move, spawns a tile if the board changed and
// checks for game over.
func (g *Game) processMove(dir Direction) bool {
	if !g.engine.ApplyMove(dir) {
		// Board didn't change - don't spawn new tile
		return false
	}
	g.recording.Add(dir)

	// A changed board always has an empty cell: a tile either slid out of
	// its cell or merged into its neighbour.
	_ = g.engine.SpawnTile()

	if g.engine.IsGameOver() {
		g.gameOver = true
		g.engine.RecordHighScore()
	}
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
	}
}

// ReplayInfo describes the current game for replay storage.
func (g *Game) ReplayInfo() core.ReplayInfo {
	return core.ReplayInfo{
		Seed:      g.recording.Seed,
		BoardSize: g.recording.Size,
		FourProb:  g.recording.FourProb,
		Moves:     g.recording.Moves(),
		Score:     g.engine.Score(),
		MaxTile:   g.engine.Grid().MaxTile(),
	}
}
