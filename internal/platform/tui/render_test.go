package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/hexline/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextStyled(6, 0, "red", core.Fg(core.ColorRed))
	s.DrawTextStyled(0, 1, "bold", core.Style{Fg: core.ColorBrightWhite, Bold: true})
	s.SetStyled(5, 1, '●', core.Style{Fg: core.ColorBlue, Bg: core.ColorDarkGray})

	got := ansi.Strip(RenderScreen(s))
	want := "plain red   \nbold ●      "
	if got != want {
		t.Errorf("rendered text = %q, want %q", got, want)
	}
}

func TestRendererCachesStyles(t *testing.T) {
	r := NewRenderer()
	s := core.NewScreen(4, 1)
	s.SetStyled(0, 0, 'a', core.Fg(core.ColorRed))
	s.SetStyled(2, 0, 'b', core.Fg(core.ColorRed))
	s.SetStyled(3, 0, 'c', core.Fg(core.ColorGreen))

	r.Render(s)
	if len(r.styles) != 2 {
		t.Errorf("cached %d styles, want 2", len(r.styles))
	}
}
