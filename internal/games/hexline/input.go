package hexline

import (
	"errors"

	"github.com/vovakirdan/hexline/internal/core"
	hexcore "github.com/vovakirdan/hexline/internal/games/hexline/core"
)

// Step advances one frame: animations first, then pointer input in arrival
// order, then keyboard actions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.IsGameOver() {
		g.paused = !g.paused
		if g.paused {
			g.apply(g.session.Cancel())
			g.keyDrag = false
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.popTicks > 0 {
		g.popTicks--
	}
	g.advanceAnimation()

	for _, p := range in.Pointer {
		g.handlePointer(p)
	}
	g.handleKeys(in)

	return core.StepResult{State: g.State()}
}

func (g *Game) handlePointer(p core.PointerEvent) {
	world := g.layout.ToWorld(p.X, p.Y)
	if slot := g.session.SlotAt(world); slot >= 0 {
		g.cursor = slot
	}
	switch p.Kind {
	case core.PointerPress:
		g.keyDrag = false
		g.apply(g.session.Press(world))
	case core.PointerDrag:
		if !g.keyDrag {
			g.apply(g.session.DragTo(world))
		}
	case core.PointerRelease:
		if !g.keyDrag {
			g.apply(g.session.Release())
		}
	}
}

func (g *Game) handleKeys(in core.InputFrame) {
	if moved := g.moveCursor(in); moved && g.keyDrag {
		g.apply(g.session.EnterSlot(g.cursor))
	}

	switch {
	case in.Has(core.ActionSelect):
		if g.session.Dragging() {
			g.apply(g.session.Release())
			g.keyDrag = false
		} else {
			g.apply(g.session.PressSlot(g.cursor))
			g.keyDrag = g.session.Dragging()
		}
	case in.Has(core.ActionConfirm):
		g.apply(g.session.Release())
		g.keyDrag = false
	case in.Has(core.ActionBack):
		g.apply(g.session.Cancel())
		g.keyDrag = false
	case in.Has(core.ActionBoom):
		events, err := g.session.TriggerBoom(g.cursor)
		if err != nil {
			if !errors.Is(err, hexcore.ErrNotBoomCell) {
				logger.Debug("boom refused", "slot", g.cursor, "err", err)
			}
			return
		}
		g.keyDrag = false
		g.apply(events)
	}

	// A drag dropped by the engine (commit on revisit, boom) ends keyboard mode.
	if !g.session.Dragging() {
		g.keyDrag = false
	}
}

// moveCursor moves the keyboard cursor one cell. Up and down keep the
// column, which is always a neighbour in the shoved layout.
func (g *Game) moveCursor(in core.InputFrame) bool {
	grid := g.session.Grid()
	o := grid.Cell(g.cursor).Offset()
	switch {
	case in.Has(core.ActionUp):
		o.Row++
	case in.Has(core.ActionDown):
		o.Row--
	case in.Has(core.ActionLeft):
		o.Col--
	case in.Has(core.ActionRight):
		o.Col++
	default:
		return false
	}
	slot := grid.SlotOf(o)
	if slot < 0 {
		return false
	}
	g.cursor = slot
	return true
}
