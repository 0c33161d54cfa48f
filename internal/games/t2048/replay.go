package t2048

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrReplayMismatch is returned when a recording does not reproduce the
// expected game.
var ErrReplayMismatch = errors.New("t2048: replay does not match recording")

// NewRand returns the deterministic generator used for a given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x2048))
}

// Recording is everything needed to reproduce a game: the engine parameters
// and the sequence of moves that changed the grid.
type Recording struct {
	Seed     int64
	Size     int
	FourProb float64
	moves    strings.Builder
}

// NewRecording starts an empty recording.
func NewRecording(seed int64, size int, fourProb float64) *Recording {
	return &Recording{Seed: seed, Size: size, FourProb: fourProb}
}

// Add appends an accepted move.
func (r *Recording) Add(dir Direction) {
	r.moves.WriteByte(dir.Letter())
}

// Moves returns the recorded moves as a string of U/D/L/R letters.
func (r *Recording) Moves() string {
	return r.moves.String()
}

// Len returns the number of recorded moves.
func (r *Recording) Len() int {
	return r.moves.Len()
}

// ReplayResult is the state reached by re-running a recording.
type ReplayResult struct {
	Grid     Grid
	Score    int
	Moves    int
	GameOver bool
}

// Replay rebuilds the game from seed and re-applies moves, spawning after
// every move exactly as play does. Every move must change the grid and the
// game must not end before the last move.
func Replay(seed int64, size int, fourProb float64, moves string) (ReplayResult, error) {
	e, err := NewEngine(size, NewRand(seed), WithFourProbability(fourProb))
	if err != nil {
		return ReplayResult{}, err
	}

	for i := range len(moves) {
		if e.IsGameOver() {
			return ReplayResult{}, fmt.Errorf("%w: game over before move %d", ErrReplayMismatch, i+1)
		}

		dir, ok := ParseDirection(moves[i : i+1])
		if !ok {
			return ReplayResult{}, fmt.Errorf("%w: bad move %q at %d", ErrReplayMismatch, moves[i], i+1)
		}
		if !e.ApplyMove(dir) {
			return ReplayResult{}, fmt.Errorf("%w: move %d (%s) changed nothing", ErrReplayMismatch, i+1, dir)
		}
		if err := e.SpawnTile(); err != nil {
			return ReplayResult{}, fmt.Errorf("%w: move %d: %w", ErrReplayMismatch, i+1, err)
		}
	}

	return ReplayResult{
		Grid:     e.Grid(),
		Score:    e.Score(),
		Moves:    len(moves),
		GameOver: e.IsGameOver(),
	}, nil
}

// Verify replays moves and checks the final score.
func Verify(seed int64, size int, fourProb float64, moves string, wantScore int) (ReplayResult, error) {
	res, err := Replay(seed, size, fourProb, moves)
	if err != nil {
		return res, err
	}
	if res.Score != wantScore {
		return res, fmt.Errorf("%w: score %d, recorded %d", ErrReplayMismatch, res.Score, wantScore)
	}
	return res, nil
}
