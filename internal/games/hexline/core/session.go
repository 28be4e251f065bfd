package core

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	ErrLocked   = errors.New("core: interaction locked")
	ErrGameOver = errors.New("core: game over")
	ErrNoRand   = errors.New("core: random source is required")
)

// Session owns the grid, the selection and the resolver for one game and
// is the only entry point for player actions. It is not safe for
// concurrent use.
type Session struct {
	rules Rules
	rng   Rand
	grid  *Grid
	sel   *Selection
	res   *Resolver

	score     int
	moves     int
	combo     int
	bestCombo int
	locked    bool
	over      bool
	entered   int // Last slot fed to EnterSlot/PressSlot, -1 when none
}

// NewSession validates rules and fills a fresh grid from rng.
func NewSession(rules Rules, rng Rand) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNoRand
	}
	g, err := NewGrid(rules.Width, rules.Height)
	if err != nil {
		return nil, err
	}
	g.Fill(rng, rules.PaletteSize)
	return &Session{
		rules:   rules,
		rng:     rng,
		grid:    g,
		sel:     NewSelection(g),
		res:     NewResolver(g, rules, rng),
		moves:   rules.MaxMoves,
		entered: -1,
	}, nil
}

// Rules returns the session rules.
func (s *Session) Rules() Rules { return s.rules }

// Grid returns the grid. Callers must treat it as read-only.
func (s *Session) Grid() *Grid { return s.grid }

// Score returns the total score.
func (s *Session) Score() int { return s.score }

// MovesLeft returns the remaining moves.
func (s *Session) MovesLeft() int { return s.moves }

// Combo returns the multiplier of the last accepted path.
func (s *Session) Combo() int { return s.combo }

// BestCombo returns the highest combo reached this session.
func (s *Session) BestCombo() int { return s.bestCombo }

// Locked reports whether a cascade is waiting for CascadeComplete.
func (s *Session) Locked() bool { return s.locked }

// IsGameOver reports whether all moves are spent.
func (s *Session) IsGameOver() bool { return s.over }

// Dragging reports whether a path is in progress.
func (s *Session) Dragging() bool { return s.sel.State() == Dragging }

// Path returns the current selection path.
func (s *Session) Path() []int { return s.sel.Path() }

// SlotAt resolves a world point to a slot, or -1 outside the grid.
func (s *Session) SlotAt(p Point) int {
	return s.grid.SlotOf(AxialToOffset(ScreenToAxial(p, s.rules.HexSide)))
}

// SlotPosition returns the world position of a slot's centre.
func (s *Session) SlotPosition(slot int) Point {
	c := s.grid.Cell(slot)
	if c == nil {
		return Point{}
	}
	return AxialToScreen(c.axial, s.rules.HexSide)
}

func (s *Session) accepting() bool {
	return !s.locked && !s.over
}

// Press starts a drag at the cell under p. Presses outside the grid are
// ignored.
func (s *Session) Press(p Point) []Event {
	return s.PressSlot(s.SlotAt(p))
}

// DragTo moves the pointer to p. Leaving the grid cancels the drag.
func (s *Session) DragTo(p Point) []Event {
	if !s.accepting() || !s.Dragging() {
		return nil
	}
	slot := s.SlotAt(p)
	if slot < 0 {
		return s.Cancel()
	}
	return s.EnterSlot(slot)
}

// PressSlot starts a drag at slot. Pressing a boom cell fires it.
func (s *Session) PressSlot(slot int) []Event {
	if !s.accepting() || s.grid.Cell(slot) == nil {
		return nil
	}
	var events []Event
	if s.Dragging() {
		events = s.Cancel()
	}
	outcome, evs := s.sel.Press(slot)
	events = append(events, evs...)
	switch outcome {
	case OutcomeBoom:
		return append(events, s.boom(slot)...)
	case OutcomeStarted:
		s.entered = slot
	}
	return events
}

// EnterSlot feeds a pointer move onto slot. Repeated entries of the same
// slot are ignored.
func (s *Session) EnterSlot(slot int) []Event {
	if !s.accepting() || !s.Dragging() || slot == s.entered {
		return nil
	}
	s.entered = slot
	outcome, events := s.sel.Enter(slot)
	switch outcome {
	case OutcomeBoom:
		return append(events, s.boom(slot)...)
	case OutcomeCommit:
		return append(events, s.commit()...)
	}
	return events
}

// Release ends the drag and commits the path.
func (s *Session) Release() []Event {
	if !s.accepting() || !s.Dragging() {
		return nil
	}
	return s.commit()
}

// Cancel drops the path without scoring.
func (s *Session) Cancel() []Event {
	if !s.Dragging() {
		return nil
	}
	s.sel.Take()
	s.entered = -1
	return s.clearHighlights()
}

// CascadeComplete unlocks interaction after the presentation layer has
// finished every fall and removal animation.
func (s *Session) CascadeComplete() []Event {
	if !s.locked {
		return nil
	}
	s.locked = false
	return []Event{InteractionLocked{Locked: false}}
}

// TriggerBoom fires the boom cell at slot directly. It fails with
// ErrNotBoomCell when the slot has no boom flag.
func (s *Session) TriggerBoom(slot int) ([]Event, error) {
	if s.over {
		return nil, ErrGameOver
	}
	if s.locked {
		return nil, ErrLocked
	}
	c := s.grid.Cell(slot)
	if c == nil || !c.Boom {
		return nil, fmt.Errorf("%w: slot %d", ErrNotBoomCell, slot)
	}
	return s.boom(slot), nil
}

func (s *Session) commit() []Event {
	path := s.sel.Take()
	s.entered = -1
	events := s.clearHighlights()

	res := s.res.Commit(path)
	if !res.Accepted {
		return events
	}

	s.moves--
	s.score += res.Delta
	s.combo = res.Combo
	if s.combo > s.bestCombo {
		s.bestCombo = s.combo
	}
	events = append(events,
		MovesChanged{Remaining: s.moves},
		ScoreChanged{Score: s.score, Delta: res.Delta},
		ComboChanged{Combo: s.combo},
	)
	events = append(events, s.removed(res.Removed)...)
	if res.Promoted >= 0 {
		c := s.grid.Cell(res.Promoted)
		events = append(events, CellContentChanged{Slot: c.slot, Color: c.Color, Boom: true})
	}
	return append(events, s.cascade()...)
}

func (s *Session) boom(slot int) []Event {
	var events []Event
	if s.Dragging() {
		s.sel.Take()
	}
	s.entered = -1
	events = append(events, s.clearHighlights()...)

	// Capture the boom content before Resolver.Boom clears the flag.
	before := *s.grid.Cell(slot)
	marked, err := s.res.Boom(slot)
	if err != nil {
		return events
	}

	s.moves--
	s.score += s.rules.BoomBonus
	events = append(events,
		BoomTriggered{Slot: slot, Cleared: marked},
		MovesChanged{Remaining: s.moves},
		ScoreChanged{Score: s.score, Delta: s.rules.BoomBonus},
	)
	removed := s.removed(marked)
	if len(removed) > 0 {
		removed[0] = CellRemoved{Slot: slot, Color: before.Color, Boom: true}
	}
	events = append(events, removed...)
	return append(events, s.cascade()...)
}

func (s *Session) removed(slots []int) []Event {
	out := make([]Event, 0, len(slots))
	for _, slot := range slots {
		c := s.grid.Cell(slot)
		out = append(out, CellRemoved{Slot: slot, Color: c.Color, Boom: c.Boom})
	}
	return out
}

// cascade refills the grid, locks interaction and ends the game when the
// last move was spent.
func (s *Session) cascade() []Event {
	transitions := s.res.Cascade()
	events := make([]Event, 0, 2*len(transitions)+2)
	for _, t := range transitions {
		events = append(events, CellContentChanged{Slot: t.Slot, Color: t.Color, Boom: t.Boom})
		fall := CellMarkedForFall{
			Slot:    t.Slot,
			Source:  t.From,
			To:      s.SlotPosition(t.Slot),
			Spawned: t.Source == SourceSpawn,
		}
		if fall.Spawned {
			col := t.Slot % s.grid.width
			fall.From = AxialToScreen(OffsetToAxial(Offset{Col: col, Row: t.SpawnRow}), s.rules.HexSide)
		} else {
			fall.From = s.SlotPosition(t.From)
		}
		events = append(events, fall)
	}

	s.locked = true
	events = append(events, InteractionLocked{Locked: true})
	if s.moves <= 0 && !s.over {
		s.over = true
		events = append(events, GameOver{Score: s.score})
	}
	return events
}

func (s *Session) clearHighlights() []Event {
	cleared := s.grid.ClearHighlights()
	out := make([]Event, 0, len(cleared))
	for _, slot := range cleared {
		out = append(out, CellUnhighlighted{Slot: slot})
	}
	return out
}
