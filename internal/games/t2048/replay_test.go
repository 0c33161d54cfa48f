package t2048

import (
	"errors"
	"testing"
)

func TestRecording(t *testing.T) {
	r := NewRecording(42, 4, 0.25)
	for _, d := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft} {
		r.Add(d)
	}

	if r.Moves() != "LURDL" {
		t.Errorf("Moves() = %q, want LURDL", r.Moves())
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
}

func TestReplayEmpty(t *testing.T) {
	e, err := NewEngine(4, NewRand(7))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := Replay(7, 4, DefaultFourProbability, "")
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !res.Grid.Equal(e.Grid()) {
		t.Errorf("empty replay grid = %v, want %v", res.Grid, e.Grid())
	}
	if res.Score != 0 || res.Moves != 0 || res.GameOver {
		t.Errorf("empty replay result = %+v", res)
	}
}

func TestReplayReproducesEngine(t *testing.T) {
	const seed = 1234

	e, err := NewEngine(4, NewRand(seed))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	rec := NewRecording(seed, 4, e.FourProbability())

	for i := 0; i < 1000 && !e.IsGameOver(); i++ {
		dir := Directions[(i*7)%len(Directions)]
		if !e.ApplyMove(dir) {
			continue
		}
		rec.Add(dir)
		if err := e.SpawnTile(); err != nil {
			t.Fatalf("SpawnTile: %v", err)
		}
	}

	res, err := Verify(rec.Seed, rec.Size, rec.FourProb, rec.Moves(), e.Score())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !res.Grid.Equal(e.Grid()) {
		t.Errorf("replayed grid\n%vwant\n%v", res.Grid, e.Grid())
	}
	if res.Moves != rec.Len() {
		t.Errorf("Moves = %d, want %d", res.Moves, rec.Len())
	}
	if res.GameOver != e.IsGameOver() {
		t.Errorf("GameOver = %v, want %v", res.GameOver, e.IsGameOver())
	}
}

func TestReplayErrors(t *testing.T) {
	if _, err := Replay(1, 4, 0.5, "LX"); !errors.Is(err, ErrReplayMismatch) {
		t.Errorf("bad letter error = %v, want ErrReplayMismatch", err)
	}

	if _, err := Replay(1, 42, 0.5, ""); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("bad size error = %v, want ErrInvalidSize", err)
	}

	res, err := Replay(1, 4, 0.5, "")
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if _, err := Verify(1, 4, 0.5, "", res.Score+4); !errors.Is(err, ErrReplayMismatch) {
		t.Errorf("wrong score error = %v, want ErrReplayMismatch", err)
	}
}

func TestReplayRejectsNoOpMove(t *testing.T) {
	// Find a seed whose opening grid cannot move in some direction and
	// check that a recording starting with that move is rejected.
	for seed := int64(0); seed < 200; seed++ {
		e, err := NewEngine(3, NewRand(seed))
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		for _, dir := range Directions {
			if _, _, changed := Slide(e.Grid(), dir); changed {
				continue
			}
			_, err := Replay(seed, 3, DefaultFourProbability, string(dir.Letter()))
			if !errors.Is(err, ErrReplayMismatch) {
				t.Fatalf("seed %d move %s error = %v, want ErrReplayMismatch", seed, dir, err)
			}
			return
		}
	}
	t.Skip("no seed produced a blocked opening move")
}
