package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/hexline/internal/registry"
	"github.com/vovakirdan/hexline/internal/storage"
)

func init() {
	registry.Register("zz_board_a", func() registry.Game { return &scriptedGame{} })
	registry.Register("zz_board_b", func() registry.Game { return &scriptedGame{} })
}

// showMode cycles the scoreboard until id is on screen.
func showMode(t *testing.T, m ScoreboardModel, id string) ScoreboardModel {
	t.Helper()
	for range m.modes {
		if m.CurrentMode() == id {
			return m
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(ScoreboardModel)
	}
	t.Fatalf("mode %q never shown", id)
	return m
}

func TestScoreboardShowsRunsAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, r := range []storage.RunRecord{
		{GameID: "zz_board_a", Score: 87, BestCombo: 3, MovesUsed: 20, Seed: 1234},
		{GameID: "zz_board_a", Score: 41, BestCombo: 1, MovesUsed: 20, Seed: 99},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	m := showMode(t, NewScoreboardModel(store, 120, 40), "zz_board_a")
	out := ansi.Strip(m.View())
	for _, want := range []string{"HIGH SCORES", "87", "1234", "x3", "Games", "Best combo"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, out)
		}
	}

	m = showMode(t, m, "zz_board_b")
	if out := ansi.Strip(m.View()); !strings.Contains(out, "No scores recorded yet.") || strings.Contains(out, "1234") {
		t.Errorf("empty mode shows runs of another mode:\n%s", out)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(ansi.Strip(m.View()), "No scores recorded yet.") {
		t.Error("scoreboard without a store should show the empty message")
	}

	next, cmd := m.Update(runeKey('b'))
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() || cmd == nil {
		t.Error("b should go back to the menu")
	}

	next, cmd = m.Update(runeKey('q'))
	if sb := next.(ScoreboardModel); !sb.IsQuitting() || sb.IsGoingBack() || cmd == nil {
		t.Error("q should quit")
	}
}
