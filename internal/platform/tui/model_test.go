package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexline/internal/core"
	"github.com/vovakirdan/hexline/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records its input.
type scriptedGame struct {
	steps    int
	endAfter int
	resets   int
	resized  [2]int
	pointers []core.PointerEvent
	actions  []core.Action
	seed     int64
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.seed = cfg.Seed
}
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.pointers = append(g.pointers, in.Pointer...)
	for a := range in.Actions {
		g.actions = append(g.actions, a)
	}
	return core.StepResult{State: g.State()}
}
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:     10 * g.steps,
		GameOver:  g.steps >= g.endAfter,
		BestCombo: 2,
		MovesUsed: g.steps,
		Seed:      g.seed,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &scriptedGame{endAfter: 3}
	m := NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 42})
	m.Init()

	for i := 0; i < 6; i++ {
		m = update(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	runs, err := store.AllScores("scripted")
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Score != 30 || r.BestCombo != 2 || r.MovesUsed != 3 || r.Seed != 42 {
		t.Errorf("run = %+v", r)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &scriptedGame{endAfter: 1}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	m.Init()
	m = update(t, m, TickMsg{})

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.State().GameOver {
		t.Error("restart should clear game over")
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	m.Init()

	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, runeKey('x'))
	m = update(t, m, TickMsg{})

	if len(game.pointers) != 1 || game.pointers[0] != (core.PointerEvent{Kind: core.PointerPress, X: 3, Y: 4}) {
		t.Errorf("pointers = %+v", game.pointers)
	}
	if len(game.actions) != 1 || game.actions[0] != core.ActionBoom {
		t.Errorf("actions = %v", game.actions)
	}

	// Input is consumed by the tick.
	m = update(t, m, TickMsg{})
	if len(game.pointers) != 1 || len(game.actions) != 1 {
		t.Error("input leaked into the next frame")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackToMenuOnlyWhenOver(t *testing.T) {
	game := &scriptedGame{endAfter: 2}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	m.Init()

	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("b during play should not leave the game")
	}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b after game over should go back to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{endAfter: 10}, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
