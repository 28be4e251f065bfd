// Package core implements the hexagonal match-line puzzle engine.
// It is UI-agnostic and deterministic for a given random source: the
// presentation layer feeds it discrete actions and consumes the events
// it returns.
package core

import (
	"fmt"
	"math"
)

// sqrt3 is used by the pixel projection in both directions.
var sqrt3 = math.Sqrt(3)

// NoDirection marks the absence of a neighbour index (0..5).
const NoDirection = -1

// Offset is a rectangular storage coordinate. Row 0 is the bottom row.
type Offset struct {
	Col int
	Row int
}

// Axial identifies a hex independently of storage and rendering.
type Axial struct {
	Q int
	R int
}

// Cube is the three-axis form of an axial coordinate (X+Y+Z == 0).
type Cube struct {
	X int
	Y int
	Z int
}

// Point is a position in world space. X grows along the row axis,
// Y along the column axis.
type Point struct {
	X float64
	Y float64
}

// String returns a string representation of the coordinate.
func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.Col, o.Row)
}

// String returns a string representation of the coordinate.
func (a Axial) String() string {
	return fmt.Sprintf("<%d,%d>", a.Q, a.R)
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Cube converts axial to cube coordinates.
func (a Axial) Cube() Cube {
	return Cube{X: a.Q, Y: a.R, Z: -a.Q - a.R}
}

// Axial drops the derived third axis.
func (c Cube) Axial() Axial {
	return Axial{Q: c.X, R: c.Y}
}

// directions lists neighbour deltas in their fixed index order.
// The index selects a line rotation in 60 degree steps and must not change.
var directions = [6]Axial{
	{Q: +1, R: 0},
	{Q: 0, R: +1},
	{Q: -1, R: +1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: +1, R: -1},
}

// Direction returns the axial delta for neighbour index i (0..5).
func Direction(i int) Axial {
	return directions[((i%6)+6)%6]
}

// OffsetToAxial converts with the row shove: q = col - floor(row/2), r = row.
func OffsetToAxial(o Offset) Axial {
	return Axial{Q: o.Col - floorDiv2(o.Row), R: o.Row}
}

// AxialToOffset is the exact inverse of OffsetToAxial.
func AxialToOffset(a Axial) Offset {
	return Offset{Col: a.Q + floorDiv2(a.R), Row: a.R}
}

// AxialToScreen projects the hex centre into world space.
func AxialToScreen(a Axial, side float64) Point {
	return Point{
		X: 1.5 * side * float64(a.R),
		Y: sqrt3 * side * (float64(a.Q) + float64(a.R)/2),
	}
}

// ScreenToAxial returns the hex whose centre is nearest to p.
func ScreenToAxial(p Point, side float64) Axial {
	r := p.X / (1.5 * side)
	q := (p.Y - p.X/sqrt3) / (sqrt3 * side)
	return cubeRound(q, r)
}

// cubeRound rounds fractional axial coordinates to the nearest hex. On a
// tie between rounding errors the rounded pair is kept.
func cubeRound(q, r float64) Axial {
	z := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rz := math.Round(z)
	if rq+rr+rz == 0 {
		return Axial{Q: int(rq), R: int(rr)}
	}

	// Recompute the axis with the largest rounding error from the other two.
	dq := math.Abs(q - rq)
	dr := math.Abs(r - rr)
	dz := math.Abs(z - rz)
	switch {
	case dq > dr && dq > dz:
		rq = -rr - rz
	case dr > dq && dr > dz:
		rr = -rq - rz
	}
	return Axial{Q: int(rq), R: int(rr)}
}

// Neighbors returns the six adjacent coordinates in direction order.
func Neighbors(a Axial) [6]Axial {
	var out [6]Axial
	for i, d := range directions {
		out[i] = a.Add(d)
	}
	return out
}

// NeighborIndex returns the direction index from -> to, or NoDirection
// when the two are not adjacent.
func NeighborIndex(from, to Axial) int {
	for i, n := range Neighbors(from) {
		if n == to {
			return i
		}
	}
	return NoDirection
}

// IsNeighbor reports whether a and b are adjacent.
func IsNeighbor(a, b Axial) bool {
	return NeighborIndex(a, b) != NoDirection
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Axial) int {
	ca, cb := a.Cube(), b.Cube()
	return max(abs(ca.X-cb.X), abs(ca.Y-cb.Y), abs(ca.Z-cb.Z))
}

func floorDiv2(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
