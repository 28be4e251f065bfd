package core

import (
	"reflect"
	"testing"
)

// paint overwrites grid colors in slot order.
func paint(g *Grid, colors ...int) {
	for i, c := range colors {
		g.Cell(i).Color = c
	}
}

// 3x3 grid. Slots 0, 1 and 3 are mutually adjacent and share color 0.
//
//	row 2:  6 7 8      2 1 2
//	row 1: 3 4 5      0 1 2
//	row 0:  0 1 2      0 0 1
func newTriangleGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	paint(g, 0, 0, 1, 0, 1, 2, 2, 1, 2)
	return g
}

func TestSelectionPressStartsPath(t *testing.T) {
	g := newTriangleGrid(t)
	s := NewSelection(g)
	out, events := s.Press(0)
	if out != OutcomeStarted || s.State() != Dragging {
		t.Fatalf("Press outcome %v state %v", out, s.State())
	}
	if !reflect.DeepEqual(events, []Event{CellHighlighted{Slot: 0}}) {
		t.Errorf("events = %#v", events)
	}
	if s.Anchor() != 0 || !g.Cell(0).Highlighted {
		t.Error("anchor or highlight not set")
	}
}

func TestSelectionExtendSetsLines(t *testing.T) {
	g := newTriangleGrid(t)
	s := NewSelection(g)
	s.Press(0)
	out, events := s.Enter(1)
	if out != OutcomeExtended {
		t.Fatalf("outcome = %v, want extended", out)
	}
	want := []Event{
		CellHighlighted{Slot: 1},
		LineSegment{Slot: 0, Neighbor: 0, Kind: LineOutgoing},
		LineSegment{Slot: 1, Neighbor: 3, Kind: LineIncoming},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v, want %#v", events, want)
	}
	if g.Cell(0).Outgoing != 0 || g.Cell(1).Incoming != 3 {
		t.Errorf("line state = %d/%d", g.Cell(0).Outgoing, g.Cell(1).Incoming)
	}
}

func TestSelectionIgnoresInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		slot int
	}{
		{"wrong color", 4},
		{"not adjacent", 6},
		{"same as last", 0},
		{"outside", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTriangleGrid(t)
			g.Cell(6).Color = 0
			s := NewSelection(g)
			s.Press(0)
			out, events := s.Enter(tt.slot)
			if out != OutcomeNone || events != nil {
				t.Errorf("Enter(%d) = %v, %v", tt.slot, out, events)
			}
			if !reflect.DeepEqual(s.Path(), []int{0}) {
				t.Errorf("path = %v", s.Path())
			}
		})
	}
}

func TestSelectionEnterWhileIdle(t *testing.T) {
	s := NewSelection(newTriangleGrid(t))
	if out, _ := s.Enter(1); out != OutcomeNone {
		t.Errorf("Enter while idle = %v", out)
	}
}

func TestSelectionBacktrack(t *testing.T) {
	g := newTriangleGrid(t)
	s := NewSelection(g)
	s.Press(0)
	s.Enter(1)
	s.Enter(3)

	out, events := s.Enter(1)
	if out != OutcomeBacktracked {
		t.Fatalf("outcome = %v, want backtracked", out)
	}
	if !reflect.DeepEqual(s.Path(), []int{0, 1}) {
		t.Errorf("path = %v, want [0 1]", s.Path())
	}
	want := []Event{
		PathBacktracked{Slot: 3},
		CellUnhighlighted{Slot: 3},
		LineSegment{Slot: 1, Neighbor: NoDirection, Kind: LineOutgoing},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v", events)
	}
	if g.Cell(3).OnPath() || g.Cell(1).Outgoing != NoDirection {
		t.Error("popped cell still decorated")
	}
	if g.Cell(1).Incoming == NoDirection {
		t.Error("remaining path lost its incoming line")
	}
}

func TestSelectionRevisitCommits(t *testing.T) {
	g := newTriangleGrid(t)
	s := NewSelection(g)
	s.Press(0)
	s.Enter(1)
	s.Enter(3)

	out, events := s.Enter(0)
	if out != OutcomeCommit || events != nil {
		t.Fatalf("Enter(0) = %v, %v; want commit", out, events)
	}
	if !reflect.DeepEqual(s.Take(), []int{0, 1, 3}) {
		t.Error("revisited cell must not be appended")
	}
	if s.State() != Idle || s.Len() != 0 {
		t.Error("Take must reset the selection")
	}
}

func TestSelectionBoomOverrides(t *testing.T) {
	g := newTriangleGrid(t)
	g.Cell(4).Boom = true
	s := NewSelection(g)
	s.Press(0)
	if out, _ := s.Enter(4); out != OutcomeBoom {
		t.Errorf("entering boom cell = %v, want boom", out)
	}
	s.Take()
	if out, _ := s.Press(4); out != OutcomeBoom {
		t.Errorf("pressing boom cell = %v, want boom", out)
	}
	if s.State() != Idle {
		t.Error("pressing a boom cell must not start a path")
	}
}
