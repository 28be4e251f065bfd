package core

// SelectionState is the drag state of a Selection.
type SelectionState int

const (
	Idle SelectionState = iota
	Dragging
)

// String returns a string representation of the state.
func (s SelectionState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Outcome tells the owner what a selection input asked for.
type Outcome int

const (
	OutcomeNone        Outcome = iota // Input ignored
	OutcomeStarted                    // Path started on press
	OutcomeExtended                   // Cell appended
	OutcomeBacktracked                // Last cell popped
	OutcomeCommit                     // Path closed on itself, commit it
	OutcomeBoom                       // Boom cell reached, trigger it
)

// Selection tracks the in-progress drag path over a grid.
type Selection struct {
	grid   *Grid
	state  SelectionState
	path   []int
	anchor int
}

// NewSelection creates an idle selection over g.
func NewSelection(g *Grid) *Selection {
	return &Selection{grid: g}
}

// State returns the current drag state.
func (s *Selection) State() SelectionState {
	return s.state
}

// Path returns a copy of the path slots in drag order.
func (s *Selection) Path() []int {
	out := make([]int, len(s.path))
	copy(out, s.path)
	return out
}

// Len returns the path length.
func (s *Selection) Len() int {
	return len(s.path)
}

// Last returns the last path slot, or -1 when empty.
func (s *Selection) Last() int {
	if len(s.path) == 0 {
		return -1
	}
	return s.path[len(s.path)-1]
}

// Anchor returns the color every path cell must share.
func (s *Selection) Anchor() int {
	return s.anchor
}

// Press starts a new path at slot. A boom cell is reported instead of
// starting a path.
func (s *Selection) Press(slot int) (Outcome, []Event) {
	c := s.grid.Cell(slot)
	if c == nil {
		return OutcomeNone, nil
	}
	if c.Boom {
		return OutcomeBoom, nil
	}
	s.state = Dragging
	s.path = append(s.path[:0], slot)
	s.anchor = c.Color
	c.Highlighted = true
	return OutcomeStarted, []Event{CellHighlighted{Slot: slot}}
}

// Enter feeds a pointer move onto slot while dragging.
func (s *Selection) Enter(slot int) (Outcome, []Event) {
	if s.state != Dragging {
		return OutcomeNone, nil
	}
	c := s.grid.Cell(slot)
	if c == nil || slot == s.Last() {
		return OutcomeNone, nil
	}
	if c.Boom {
		return OutcomeBoom, nil
	}

	last := s.grid.Cell(s.Last())
	if c.Color != s.anchor || !IsNeighbor(last.axial, c.axial) {
		return OutcomeNone, nil
	}

	n := len(s.path)
	if n >= 2 && s.path[n-2] == slot {
		return OutcomeBacktracked, s.pop()
	}
	if s.contains(slot) {
		return OutcomeCommit, nil
	}

	out := NeighborIndex(last.axial, c.axial)
	in := NeighborIndex(c.axial, last.axial)
	last.Outgoing = out
	c.Incoming = in
	c.Highlighted = true
	s.path = append(s.path, slot)
	return OutcomeExtended, []Event{
		CellHighlighted{Slot: slot},
		LineSegment{Slot: last.slot, Neighbor: out, Kind: LineOutgoing},
		LineSegment{Slot: slot, Neighbor: in, Kind: LineIncoming},
	}
}

// Take consumes the path and returns the selection to Idle.
// Cell decorations are left for the owner to clear.
func (s *Selection) Take() []int {
	path := s.path
	s.path = nil
	s.state = Idle
	return path
}

func (s *Selection) pop() []Event {
	n := len(s.path)
	popped := s.grid.Cell(s.path[n-1])
	prev := s.grid.Cell(s.path[n-2])
	s.path = s.path[:n-1]

	popped.ResetPath()
	prev.Outgoing = NoDirection
	return []Event{
		PathBacktracked{Slot: popped.slot},
		CellUnhighlighted{Slot: popped.slot},
		LineSegment{Slot: prev.slot, Neighbor: NoDirection, Kind: LineOutgoing},
	}
}

func (s *Selection) contains(slot int) bool {
	for _, p := range s.path {
		if p == slot {
			return true
		}
	}
	return false
}
