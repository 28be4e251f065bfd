package core

import "fmt"

// Rand is the random source used for coloring. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Grid owns a fixed width x height set of cells in row-major order.
// Slot index = row*width + col, row 0 is the bottom row.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates every slot once. The grid never grows or shrinks.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			slot := row*width + col
			g.cells[slot] = newCell(slot, OffsetToAxial(Offset{Col: col, Row: row}))
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of slots.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether the offset lies inside the grid.
func (g *Grid) InBounds(o Offset) bool {
	return o.Col >= 0 && o.Col < g.width && o.Row >= 0 && o.Row < g.height
}

// SlotOf returns the slot index for an offset, or -1 when outside.
func (g *Grid) SlotOf(o Offset) int {
	if !g.InBounds(o) {
		return -1
	}
	return o.Row*g.width + o.Col
}

// Cell returns the cell at slot, or nil for an invalid slot.
func (g *Grid) Cell(slot int) *Cell {
	if slot < 0 || slot >= len(g.cells) {
		return nil
	}
	return &g.cells[slot]
}

// At returns the cell at an offset coordinate, or nil when outside.
func (g *Grid) At(o Offset) *Cell {
	return g.Cell(g.SlotOf(o))
}

// AtAxial returns the cell at an axial coordinate, or nil when outside.
func (g *Grid) AtAxial(a Axial) *Cell {
	return g.At(AxialToOffset(a))
}

// NeighborSlots returns the slots adjacent to slot in direction order,
// skipping positions outside the grid.
func (g *Grid) NeighborSlots(slot int) []int {
	c := g.Cell(slot)
	if c == nil {
		return nil
	}
	out := make([]int, 0, 6)
	for _, n := range Neighbors(c.axial) {
		if nc := g.AtAxial(n); nc != nil {
			out = append(out, nc.slot)
		}
	}
	return out
}

// Adjacent reports whether two slots are grid neighbours.
func (g *Grid) Adjacent(a, b int) bool {
	ca, cb := g.Cell(a), g.Cell(b)
	if ca == nil || cb == nil {
		return false
	}
	return IsNeighbor(ca.axial, cb.axial)
}

// Fill assigns a uniformly random palette color to every slot and clears
// all other state.
func (g *Grid) Fill(rng Rand, paletteSize int) {
	for i := range g.cells {
		c := &g.cells[i]
		c.Color = rng.Intn(paletteSize)
		c.Boom = false
		c.Dirty = false
		c.ResetPath()
	}
}

// ClearHighlights resets path state on every cell and returns the slots
// that were decorated.
func (g *Grid) ClearHighlights() []int {
	var cleared []int
	for i := range g.cells {
		if g.cells[i].OnPath() {
			cleared = append(cleared, i)
			g.cells[i].ResetPath()
		}
	}
	return cleared
}

// DirtySlots returns the slots currently marked dirty, ascending.
func (g *Grid) DirtySlots() []int {
	var out []int
	for i := range g.cells {
		if g.cells[i].Dirty {
			out = append(out, i)
		}
	}
	return out
}

// BoomSlots returns the slots carrying a boom flag, ascending.
func (g *Grid) BoomSlots() []int {
	var out []int
	for i := range g.cells {
		if g.cells[i].Boom {
			out = append(out, i)
		}
	}
	return out
}
