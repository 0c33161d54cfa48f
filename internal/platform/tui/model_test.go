package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// stubGame is a scriptable game for driving the platform models.
type stubGame struct {
	state   core.GameState
	info    core.ReplayInfo
	steps   int
	resets  int
	resizeW int
	seeds   []int64 // cfg.Seed of every Reset
	lastIn  core.InputFrame
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.state = core.GameState{HighScore: g.state.HighScore}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) ReplayInfo() core.ReplayInfo { return g.info }
func (g *stubGame) Resize(w, _ int) { g.resizeW = w }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = core.NewInputFrame()
	for a := range in.Actions {
		g.lastIn.Set(a)
	}
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *stubGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	m := NewModel(g, store, log.New(io.Discard), cfg)
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickPassesInput(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, runeKey("a"))
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.steps != 1 || !g.lastIn.Has(core.ActionLeft) {
		t.Errorf("steps = %d, input = %v", g.steps, g.lastIn.Actions)
	}

	// Input is cleared after each tick
	update(t, m, TickMsg{})
	if g.lastIn.Has(core.ActionLeft) {
		t.Error("input frame was not cleared")
	}
}

func TestModelSavesReplayOnce(t *testing.T) {
	g := &stubGame{info: core.ReplayInfo{Seed: 1, BoardSize: 4, FourProb: 0.5, Moves: "LURD", Score: 8, MaxTile: 8}}
	m, store := newTestModel(t, g)

	g.state = core.GameState{Score: 8, HighScore: 8, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	n, err := store.CountReplays("stub")
	if err != nil {
		t.Fatalf("CountReplays() failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("Expected 1 saved replay, got %d", n)
	}

	got, err := store.GetReplay(m.ReplayID())
	if err != nil {
		t.Fatalf("GetReplay(%q) failed: %v", m.ReplayID(), err)
	}
	if got.Moves != "LURD" || got.FinalScore != 8 || got.BoardSize != 4 {
		t.Errorf("saved replay = %+v", got)
	}
}

func TestModelSkipsEmptyReplay(t *testing.T) {
	g := &stubGame{}
	m, store := newTestModel(t, g)

	g.state = core.GameState{GameOver: true}
	update(t, m, TickMsg{})

	if n, _ := store.CountReplays("stub"); n != 0 {
		t.Errorf("Expected no replay for a game without moves, got %d", n)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{info: core.ReplayInfo{Moves: "L", Score: 4}}
	m, store := newTestModel(t, g)
	resets := g.resets

	g.state = core.GameState{Score: 4, HighScore: 4, GameOver: true}
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg{})
	if g.resets != resets+1 {
		t.Fatalf("resets = %d, want %d", g.resets, resets+1)
	}

	// The next game over saves a second replay
	g.state = core.GameState{Score: 4, HighScore: 4, GameOver: true}
	update(t, m, TickMsg{})
	if n, _ := store.CountReplays("stub"); n != 2 {
		t.Errorf("Expected 2 replays after restart, got %d", n)
	}
}

func TestModelRestartSeed(t *testing.T) {
	tests := []struct {
		name  string
		seed  int64
		fixed bool
	}{
		{"fixed seed is reused", 42, true},
		{"zero seed picks a new one", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &stubGame{}
			cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: tt.seed}
			m := NewModel(g, nil, log.New(io.Discard), cfg)
			m.Init()

			g.state = core.GameState{GameOver: true}
			m, _ = update(t, m, TickMsg{})
			m, _ = update(t, m, runeKey("r"))
			update(t, m, TickMsg{})

			if len(g.seeds) != 2 {
				t.Fatalf("Reset called %d times, want 2", len(g.seeds))
			}
			for i, seed := range g.seeds {
				if seed == 0 {
					t.Errorf("Reset %d got a zero seed", i)
				}
				if tt.fixed && seed != tt.seed {
					t.Errorf("Reset %d seed = %d, want %d", i, seed, tt.seed)
				}
			}
		})
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)
	resets := g.resets

	m, _ = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})
	if g.resets != resets {
		t.Error("restart should only apply after game over")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	// Back is ignored while playing
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back accepted during play")
	}
	m.inputFrame.Clear()

	g.state = core.GameState{Paused: true}
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("back should leave a paused game")
	}

	m, _ = update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)
	resets := g.resets

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resizeW != 100 {
		t.Errorf("Resize not forwarded, width = %d", g.resizeW)
	}
	if g.resets != resets {
		t.Error("resizable game should not be reset")
	}
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 40 {
		t.Errorf("config = %+v", m.Config())
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	if !strings.Contains(m.View(), "stub") {
		t.Errorf("View() missing game output: %q", m.View())
	}
}
