package core

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 5}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestGridSlotsAreStable(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 12 {
		t.Fatalf("Len = %d, want 12", g.Len())
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			o := Offset{Col: col, Row: row}
			c := g.At(o)
			if c == nil {
				t.Fatalf("At(%v) = nil", o)
			}
			if c.Slot() != row*4+col {
				t.Errorf("At(%v).Slot() = %d, want %d", o, c.Slot(), row*4+col)
			}
			if c.Offset() != o {
				t.Errorf("cell %d Offset() = %v, want %v", c.Slot(), c.Offset(), o)
			}
			if g.AtAxial(c.Axial()) != c {
				t.Errorf("AtAxial(%v) does not return the same cell", c.Axial())
			}
		}
	}
}

func TestGridLookupOutside(t *testing.T) {
	g, _ := NewGrid(3, 3)
	if g.Cell(-1) != nil || g.Cell(9) != nil {
		t.Error("Cell out of range should be nil")
	}
	if g.At(Offset{Col: 3, Row: 0}) != nil {
		t.Error("At outside should be nil")
	}
	if g.AtAxial(Axial{Q: -1, R: 0}) != nil {
		t.Error("AtAxial outside should be nil")
	}
	if g.SlotOf(Offset{Col: 0, Row: -1}) != -1 {
		t.Error("SlotOf outside should be -1")
	}
}

func TestNeighborSlots(t *testing.T) {
	g, _ := NewGrid(3, 3)
	tests := []struct {
		slot int
		want []int
	}{
		{0, []int{1, 3}},
		{4, []int{5, 8, 7, 3, 1, 2}},
		{8, []int{7, 4, 5}},
		{-1, nil},
	}
	for _, tt := range tests {
		if got := g.NeighborSlots(tt.slot); !reflect.DeepEqual(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
			t.Errorf("NeighborSlots(%d) = %v, want %v", tt.slot, got, tt.want)
		}
	}
	if !g.Adjacent(0, 3) || g.Adjacent(0, 4) {
		t.Error("Adjacent disagrees with NeighborSlots")
	}
}

func TestFillUsesPalette(t *testing.T) {
	g, _ := NewGrid(10, 10)
	g.Cell(5).Boom = true
	g.Cell(6).Highlighted = true
	g.Fill(rand.New(rand.NewSource(7)), 3)

	seen := map[int]bool{}
	for i := 0; i < g.Len(); i++ {
		c := g.Cell(i)
		if c.Color < 0 || c.Color >= 3 {
			t.Fatalf("cell %d color %d outside palette", i, c.Color)
		}
		if c.Boom || c.Dirty || c.OnPath() {
			t.Fatalf("cell %d keeps state after Fill", i)
		}
		seen[c.Color] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 colors on a 10x10 grid, got %v", seen)
	}
}

func TestClearHighlights(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Cell(2).Highlighted = true
	g.Cell(4).Outgoing = 1
	cleared := g.ClearHighlights()
	if !reflect.DeepEqual(cleared, []int{2, 4}) {
		t.Errorf("ClearHighlights = %v, want [2 4]", cleared)
	}
	if g.Cell(4).Outgoing != NoDirection || g.Cell(2).Highlighted {
		t.Error("path state not cleared")
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Rules)
		want   error
	}{
		{"default", func(*Rules) {}, nil},
		{"zero width", func(r *Rules) { r.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(r *Rules) { r.Height = -2 }, ErrInvalidDimensions},
		{"two colors", func(r *Rules) { r.PaletteSize = 2 }, ErrPaletteTooSmall},
		{"short path", func(r *Rules) { r.MinPathLength = 2 }, ErrPathTooShort},
		{"zero boom length", func(r *Rules) { r.BoomPathLength = 0 }, ErrBoomPathTooShort},
		{"boom length below min path", func(r *Rules) { r.MinPathLength = 4; r.BoomPathLength = 3 }, ErrBoomPathTooShort},
		{"boom on every path", func(r *Rules) { r.BoomPathLength = r.MinPathLength }, nil},
		{"no moves", func(r *Rules) { r.MaxMoves = 0 }, ErrInvalidMoves},
		{"zero divisor", func(r *Rules) { r.ComboDivisor = 0 }, ErrInvalidComboDivisor},
		{"zero side", func(r *Rules) { r.HexSide = 0 }, ErrInvalidHexSide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.modify(&r)
			err := r.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
