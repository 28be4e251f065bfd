package hexline

import (
	"math"

	"github.com/vovakirdan/hexline/internal/core"
	hexcore "github.com/vovakirdan/hexline/internal/games/hexline/core"
)

// Terminal cell pitch of the hex lattice. Odd rows shift by half a column.
const (
	colPitch = 4
	rowPitch = 2
	rowShift = colPitch / 2
)

// Screen rows reserved around the board.
const (
	hudRows  = 2
	helpRows = 1
)

// Layout maps between world points and terminal cells for one board
// placement. World X grows up the rows, world Y along the columns.
type Layout struct {
	side    float64
	cols    int
	rows    int
	originX int // Terminal column of the centre of slot (0,0)
	originY int // Terminal row of the centre of slot (0,0)
}

// NewLayout centres a cols x rows board on a screen of the given size.
func NewLayout(screenW, screenH, cols, rows int, side float64) Layout {
	l := Layout{side: side, cols: cols, rows: rows}
	w, h := l.BoardSize()

	left := (screenW - w) / 2
	top := hudRows + 1 + (screenH-hudRows-helpRows-(h+2))/2
	if top < hudRows+1 {
		top = hudRows + 1
	}
	l.originX = left + 1
	l.originY = top + rowPitch*(rows-1)
	return l
}

// BoardSize returns the terminal footprint of the cells, without the frame.
func (l Layout) BoardSize() (w, h int) {
	return colPitch*l.cols + 1, rowPitch*(l.rows-1) + 1
}

// Board returns the rectangle covered by the cells.
func (l Layout) Board() core.Rect {
	w, h := l.BoardSize()
	return core.NewRect(l.originX-1, l.originY-h+1, w, h)
}

// Frame returns the rectangle of the border drawn around the board.
func (l Layout) Frame() core.Rect {
	b := l.Board()
	return core.NewRect(b.X-2, b.Y-1, b.W+4, b.H+2)
}

// MinScreen returns the smallest screen that fits the board, HUD and help line.
func (l Layout) MinScreen() (w, h int) {
	bw, bh := l.BoardSize()
	return bw + 4, bh + 2 + hudRows + helpRows
}

// ToTerminal returns the terminal cell nearest to world point p.
func (l Layout) ToTerminal(p hexcore.Point) (x, y int) {
	x = l.originX + int(math.Round(p.Y*colPitch/(math.Sqrt(3)*l.side)))
	y = l.originY - int(math.Round(p.X*rowPitch/(1.5*l.side)))
	return x, y
}

// ToWorld maps a terminal cell back into world space.
func (l Layout) ToWorld(x, y int) hexcore.Point {
	return hexcore.Point{
		X: float64(l.originY-y) * 1.5 * l.side / rowPitch,
		Y: float64(x-l.originX) * math.Sqrt(3) * l.side / colPitch,
	}
}

// SlotCenter returns the terminal cell at the centre of an offset coordinate.
func (l Layout) SlotCenter(o hexcore.Offset) (x, y int) {
	return l.originX + colPitch*o.Col + rowShift*(o.Row&1), l.originY - rowPitch*o.Row
}

// connector returns where the path line leaving a cell at (x, y) towards
// neighbour index dir is drawn, and its glyph.
func connector(x, y, dir int) (cx, cy int, r rune, ok bool) {
	switch dir {
	case 0:
		return x + 2, y, '─', true
	case 1:
		return x + 1, y - 1, '╱', true
	case 2:
		return x - 1, y - 1, '╲', true
	case 3:
		return x - 2, y, '─', true
	case 4:
		return x - 1, y + 1, '╱', true
	case 5:
		return x + 1, y + 1, '╲', true
	}
	return 0, 0, 0, false
}
