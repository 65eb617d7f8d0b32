package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-survival/internal/core"
	"github.com/vovakirdan/grid-survival/internal/storage"
)

// fakeGame ends after overAt steps and records what the model fed it.
type fakeGame struct {
	overAt  int
	steps   int
	resets  int
	lastDir core.Action
	resized [2]int
	cfg     core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.cfg = cfg
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastDir = in.Latest(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight)
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.overAt > 0 && g.steps >= g.overAt}
}

func (g *fakeGame) Observe() any {
	return g.steps
}

func (g *fakeGame) Report() core.RunReport {
	return core.RunReport{RunID: "run-1", Seed: 5, Turns: g.steps, HitsTaken: 3}
}

func (g *fakeGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

type recorder struct {
	got []any
}

func (r *recorder) Publish(v any) {
	r.got = append(r.got, v)
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{overAt: 3}
	pub := &recorder{}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Publisher: pub})
	m.Init()

	for range 5 {
		m = step(t, m, TickMsg{})
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved runs = %d, expected 1", len(runs))
	}
	if runs[0].RunID != "run-1" || runs[0].Score != 3 || runs[0].HitsTaken != 3 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// One publish on init plus one per tick
	if len(pub.got) != 6 {
		t.Errorf("published %d observations, expected 6", len(pub.got))
	}
}

func TestModelForwardsLatestDirection(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, TickMsg{})

	if game.lastDir != core.ActionLeft {
		t.Errorf("game saw %v, expected left", game.lastDir)
	}

	// Input is cleared after each tick
	step(t, m, TickMsg{})
	if game.lastDir != core.ActionNone {
		t.Errorf("game saw %v on an idle tick", game.lastDir)
	}
}

func TestModelReservesHelpRow(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})
	m.Init()

	if game.cfg.ScreenH != 23 {
		t.Errorf("game height = %d, expected 23", game.cfg.ScreenH)
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resized != [2]int{100, 39} {
		t.Errorf("resized to %v, expected [100 39]", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resizable game was reset %d times, expected 1", game.resets)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
