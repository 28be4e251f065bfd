package core

// Event is a notification from the engine to the presentation layer.
// Events are returned in the order they occurred.
type Event interface {
	isEvent()
}

// LineKind selects which half of a path connector a LineSegment describes.
type LineKind int

const (
	LineIncoming LineKind = iota
	LineOutgoing
)

// String returns a string representation of the line kind.
func (k LineKind) String() string {
	if k == LineIncoming {
		return "incoming"
	}
	return "outgoing"
}

// CellHighlighted is sent when a cell joins the selection path.
type CellHighlighted struct {
	Slot int
}

// PathBacktracked is sent when the drag steps back onto the previous cell
// and Slot is dropped from the end of the path.
type PathBacktracked struct {
	Slot int
}

// CellUnhighlighted is sent when a cell leaves the selection path.
// Both line halves of the cell are cleared with it.
type CellUnhighlighted struct {
	Slot int
}

// LineSegment sets one half of a path connector on a cell.
// Neighbor is the direction index 0..5, or NoDirection to clear it.
type LineSegment struct {
	Slot     int
	Neighbor int
	Kind     LineKind
}

// CellContentChanged carries the new payload of a slot.
type CellContentChanged struct {
	Slot  int
	Color int
	Boom  bool
}

// CellRemoved is sent for every slot cleared by a commit or boom, with the
// content it held before removal.
type CellRemoved struct {
	Slot  int
	Color int
	Boom  bool
}

// CellMarkedForFall describes the fall animation of a refilled slot.
// From and To are world positions (see AxialToScreen).
type CellMarkedForFall struct {
	Slot    int
	Source  int // Source slot, or -1 when Spawned
	From    Point
	To      Point
	Spawned bool
}

// ScoreChanged reports the new total score.
type ScoreChanged struct {
	Score int
	Delta int
}

// MovesChanged reports the remaining moves.
type MovesChanged struct {
	Remaining int
}

// ComboChanged reports the multiplier of the last accepted path.
type ComboChanged struct {
	Combo int
}

// BoomTriggered is sent when a boom cell fires.
type BoomTriggered struct {
	Slot    int
	Cleared []int
}

// InteractionLocked toggles the input lock around a cascade.
type InteractionLocked struct {
	Locked bool
}

// GameOver is sent once when the last move is spent.
type GameOver struct {
	Score int
}

func (CellHighlighted) isEvent()    {}
func (CellUnhighlighted) isEvent()  {}
func (PathBacktracked) isEvent()    {}
func (LineSegment) isEvent()        {}
func (CellContentChanged) isEvent() {}
func (CellRemoved) isEvent()        {}
func (CellMarkedForFall) isEvent()  {}
func (ScoreChanged) isEvent()       {}
func (MovesChanged) isEvent()       {}
func (ComboChanged) isEvent()       {}
func (BoomTriggered) isEvent()      {}
func (InteractionLocked) isEvent()  {}
func (GameOver) isEvent()           {}
