package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Size      int
	Seed      int64
	Score     int
	HighScore int
	Board     Grid
	MaxTile   int
	Moves     string
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	board := g.engine.Grid()
	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Size:      g.engine.Size(),
		Seed:      g.recording.Seed,
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		Board:     board,
		MaxTile:   board.MaxTile(),
		Moves:     g.recording.Moves(),
		State:     state,
	}
}
