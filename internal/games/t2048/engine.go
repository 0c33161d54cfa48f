package t2048

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardFull is returned by SpawnTile when no cell is empty.
	ErrBoardFull = errors.New("t2048: no empty cell to spawn into")
	// ErrInvalidSize is returned for board sizes outside MinSize..MaxSize.
	ErrInvalidSize = errors.New("t2048: invalid board size")
	// ErrInvalidGrid is returned when a grid has the wrong shape or values.
	ErrInvalidGrid = errors.New("t2048: invalid grid")
	// ErrNilRand is returned by NewEngine without a random source.
	ErrNilRand = errors.New("t2048: nil random source")
)

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.5

// initialTiles is the number of tiles placed by Reset.
const initialTiles = 2

// Rand is the random source used for tile spawning.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Engine owns a grid, its score and the process-lifetime high score.
// It is not safe for concurrent use.
type Engine struct {
	size      int
	fourProb  float64
	rng       Rand
	grid      Grid
	score     int
	highScore int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFourProbability sets the chance that a spawned tile is a 4.
func WithFourProbability(p float64) EngineOption {
	return func(e *Engine) {
		e.fourProb = p
	}
}

// NewEngine creates an engine with a size x size grid and two spawned tiles.
func NewEngine(size int, rng Rand, opts ...EngineOption) (*Engine, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	e := &Engine{
		size:     size,
		fourProb: DefaultFourProbability,
		rng:      rng,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Reset()
	return e, nil
}

// SetRand replaces the random source. Used when a game is re-seeded.
// A nil rng is ignored.
func (e *Engine) SetRand(rng Rand) {
	if rng == nil {
		return
	}
	e.rng = rng
}

// Reset zeroes the score, clears the grid and spawns two tiles.
// The high score is kept.
func (e *Engine) Reset() {
	e.score = 0
	e.grid = NewGrid(e.size)
	for range initialTiles {
		// An empty grid always has room.
		_ = e.SpawnTile()
	}
}

// ApplyMove slides the grid in dir, adds merge values to the score and
// reports whether any cell changed. It never spawns a tile.
func (e *Engine) ApplyMove(dir Direction) bool {
	next, gained, moved := Slide(e.grid, dir)
	if !moved {
		return false
	}

	e.grid = next
	e.score += gained
	return true
}

// SpawnTile places a 2 or 4 on a random empty cell, picked by rejection
// sampling. It returns ErrBoardFull without touching the random source if
// the grid is full.
func (e *Engine) SpawnTile() error {
	if !HasEmptyCell(e.grid) {
		return ErrBoardFull
	}

	var y, x int
	for {
		y = e.rng.IntN(e.size)
		x = e.rng.IntN(e.size)
		if e.grid[y][x] == 0 {
			break
		}
	}

	value := 2
	if e.rng.Float64() < e.fourProb {
		value = 4
	}
	e.grid[y][x] = value
	return nil
}

// IsGameOver reports whether the grid is full with no mergeable pair.
func (e *Engine) IsGameOver() bool {
	return IsGameOver(e.grid)
}

// RecordHighScore folds the current score into the high score and returns
// the result. Call it once when a game-over is observed, before Reset.
func (e *Engine) RecordHighScore() int {
	if e.score > e.highScore {
		e.highScore = e.score
	}
	return e.highScore
}

// SetGrid replaces the grid after validating it. The score is unchanged.
func (e *Engine) SetGrid(g Grid) error {
	if err := g.Validate(e.size); err != nil {
		return err
	}
	e.grid = g.Clone()
	return nil
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// Cell returns the value at (row, col).
func (e *Engine) Cell(row, col int) int {
	return e.grid[row][col]
}

// Score returns the current game score.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score recorded in this process.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.size
}

// FourProbability returns the chance that a spawned tile is a 4.
func (e *Engine) FourProbability() float64 {
	return e.fourProb
}
