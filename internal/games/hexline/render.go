package hexline

import (
	"fmt"

	"github.com/vovakirdan/hexline/internal/core"
)

// Cell glyphs.
const (
	CellChar    = '●'
	BoomChar    = '✸'
	FlashChar   = '○'
	HighlightL  = '['
	HighlightR  = ']'
	CursorL     = '‹'
	CursorR     = '›'
	flashPeriod = 4 // Frames per blink while cells are removed
)

var (
	frameStyle  = core.Fg(core.ColorGray)
	pathStyle   = core.Style{Fg: core.ColorBrightWhite, Bold: true}
	cursorStyle = core.Fg(core.ColorWhite)
	hudStyle    = core.Style{Fg: core.ColorBrightWhite, Bold: true}
	comboStyle  = core.Style{Fg: core.ColorBrightYellow, Bold: true}
	helpStyle   = core.Fg(core.ColorDarkGray)
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.layout.Frame(), frameStyle)
	g.renderCells(dst)
	g.renderFalls(dst)
	g.renderHelp(dst)

	switch {
	case g.State().GameOver:
		g.renderGameOver(dst)
	case g.paused:
		g.renderOverlay(dst, []string{"PAUSED", "", "P to resume"})
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layout.MinScreen()
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y-1, "Window too small", hudStyle)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.runtime.ScreenW, g.runtime.ScreenH), core.Style{})
	dst.DrawTextCentered(y+1, "Please resize terminal", core.Style{})
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title(), hudStyle)

	frame := g.layout.Frame()
	score := fmt.Sprintf("Score: %d", g.session.Score())
	if g.popTicks > 0 && g.lastDelta > 0 {
		score += fmt.Sprintf(" +%d", g.lastDelta)
	}
	dst.DrawTextStyled(frame.X, 1, score, hudStyle)

	moves := fmt.Sprintf("Moves: %d", g.session.MovesLeft())
	dst.DrawTextStyled(frame.Right()-len(moves), 1, moves, hudStyle)

	if combo := g.session.Combo(); combo > 1 {
		dst.DrawTextCentered(1, comboText(combo), comboStyle)
	}
}

// comboText is the HUD label of a combo multiplier.
func comboText(combo int) string {
	return fmt.Sprintf("%d Combos", combo)
}

func (g *Game) renderCells(dst *core.Screen) {
	grid := g.session.Grid()
	removing := make(map[int]removal)
	if g.anim.phase == PhaseRemove {
		for _, r := range g.anim.removals {
			removing[r.slot] = r
		}
	}

	for slot := range g.view {
		x, y := g.layout.SlotCenter(grid.Cell(slot).Offset())
		if r, ok := removing[slot]; ok {
			g.drawRemoval(dst, x, y, r)
			continue
		}
		if g.anim.falling(slot) {
			continue
		}
		g.drawCell(dst, x, y, g.view[slot])
		if slot == g.cursor && !g.anim.Busy() && !g.session.IsGameOver() {
			l, r := CursorL, CursorR
			if g.view[slot].highlighted {
				l, r = HighlightL, HighlightR
			}
			dst.SetStyled(x-1, y, l, cursorStyle)
			dst.SetStyled(x+1, y, r, cursorStyle)
		}
	}

	// Connectors go last so both halves of a segment agree.
	for slot, v := range g.view {
		if !v.highlighted {
			continue
		}
		x, y := g.layout.SlotCenter(grid.Cell(slot).Offset())
		for _, dir := range [2]int{v.in, v.out} {
			if cx, cy, r, ok := connector(x, y, dir); ok {
				dst.SetStyled(cx, cy, r, pathStyle)
			}
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, v cellView) {
	st := core.Fg(g.color(v.color))
	r := CellChar
	if v.boom {
		r = BoomChar
		st.Bold = true
	}
	if v.highlighted {
		st.Bold = true
		dst.SetStyled(x-1, y, HighlightL, pathStyle)
		dst.SetStyled(x+1, y, HighlightR, pathStyle)
	}
	dst.SetStyled(x, y, r, st)
}

func (g *Game) drawRemoval(dst *core.Screen, x, y int, r removal) {
	on := (g.anim.ticks/flashPeriod)%2 == 0
	switch {
	case r.boom:
		st := core.Style{Fg: core.ColorBrightYellow, Bold: true}
		if !on {
			st.Fg = core.ColorBrightRed
		}
		dst.SetStyled(x, y, BoomChar, st)
	case on:
		dst.SetStyled(x, y, CellChar, core.Style{Fg: g.color(r.color), Bold: true})
	default:
		dst.SetStyled(x, y, FlashChar, core.Fg(core.ColorBrightWhite))
	}
}

// renderFalls draws cells travelling to their slots, clipped to the board.
func (g *Game) renderFalls(dst *core.Screen) {
	if g.anim.phase != PhaseFall {
		return
	}
	board := g.layout.Board()
	t := g.anim.progress()
	for _, f := range g.anim.falls {
		x, y := g.layout.ToTerminal(f.position(t))
		if y < board.Y || y >= board.Bottom() {
			continue
		}
		g.drawCell(dst, x, y, cellView{color: f.color, boom: f.boom})
	}
}

func (g *Game) renderHelp(dst *core.Screen) {
	help := "drag/space: path  enter: release  esc: cancel  x: boom  p: pause  q: quit"
	dst.DrawTextCentered(dst.Height()-1, help, helpStyle)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", g.session.Score()),
	}
	if best := g.session.BestCombo(); best > 1 {
		lines = append(lines, "Best: "+comboText(best))
	}
	lines = append(lines, "", "R to play again  Q to quit")
	g.renderOverlay(dst, lines)
}

// renderOverlay draws a framed message box over the board centre.
func (g *Game) renderOverlay(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := dst.Bounds().Centered(w+4, len(lines)+2)
	dst.DrawBox(box, hudStyle)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextStyled(x, box.Y+1+i, l, hudStyle)
	}
}

// color maps a palette index to a terminal color.
func (g *Game) color(i int) core.Color {
	if i < 0 || i >= len(g.colors) {
		return core.ColorDefault
	}
	return g.colors[i]
}
