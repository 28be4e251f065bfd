package core

// Cell is one permanent grid slot. Its coordinate never changes; only the
// payload (color, boom) and the transient flags are overwritten.
type Cell struct {
	axial Axial
	slot  int

	Color       int  // Palette index
	Boom        bool // Special clearing trigger
	Dirty       bool // Pending replacement in the current resolution pass
	Highlighted bool // Part of the active selection path
	Incoming    int  // Neighbour index of the previous path cell, or NoDirection
	Outgoing    int  // Neighbour index of the next path cell, or NoDirection
}

func newCell(slot int, axial Axial) Cell {
	return Cell{
		axial:    axial,
		slot:     slot,
		Incoming: NoDirection,
		Outgoing: NoDirection,
	}
}

// Axial returns the cell's fixed coordinate.
func (c *Cell) Axial() Axial {
	return c.axial
}

// Offset returns the cell's storage coordinate.
func (c *Cell) Offset() Offset {
	return AxialToOffset(c.axial)
}

// Slot returns the row-major storage index.
func (c *Cell) Slot() int {
	return c.slot
}

// ResetPath clears highlight and line state.
func (c *Cell) ResetPath() {
	c.Highlighted = false
	c.Incoming = NoDirection
	c.Outgoing = NoDirection
}

// OnPath reports whether the cell carries any path decoration.
func (c *Cell) OnPath() bool {
	return c.Highlighted || c.Incoming != NoDirection || c.Outgoing != NoDirection
}
