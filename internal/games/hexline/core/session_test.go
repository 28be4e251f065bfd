package core

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func testRules() Rules {
	r := DefaultRules()
	r.Width, r.Height = 3, 3
	r.PaletteSize = 3
	r.MaxMoves = 5
	return r
}

// newTestSession returns a 3x3 session painted like newTriangleGrid.
func newTestSession(t *testing.T, rules Rules, seed int64) *Session {
	t.Helper()
	s, err := NewSession(rules, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatal(err)
	}
	paint(s.Grid(), 0, 0, 1, 0, 1, 2, 2, 1, 2)
	return s
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestNewSessionRejectsInvalidRules(t *testing.T) {
	r := testRules()
	r.PaletteSize = 2
	if _, err := NewSession(r, rand.New(rand.NewSource(1))); !errors.Is(err, ErrPaletteTooSmall) {
		t.Errorf("error = %v, want ErrPaletteTooSmall", err)
	}
	if _, err := NewSession(testRules(), nil); !errors.Is(err, ErrNoRand) {
		t.Errorf("error = %v, want ErrNoRand", err)
	}
}

func TestEndToEndCommit(t *testing.T) {
	run := func(seed int64) (*Session, []Event) {
		s := newTestSession(t, testRules(), seed)
		var events []Event
		events = append(events, s.Press(s.SlotPosition(0))...)
		events = append(events, s.DragTo(s.SlotPosition(1))...)
		events = append(events, s.DragTo(s.SlotPosition(3))...)
		events = append(events, s.Release()...)
		return s, events
	}

	s, events := run(99)
	if s.MovesLeft() != 4 {
		t.Errorf("moves = %d, want 4", s.MovesLeft())
	}
	if s.Score() != 3 {
		t.Errorf("score = %d, want 3", s.Score())
	}
	if !s.Locked() {
		t.Error("session must lock after a commit")
	}

	removed := eventsOf[CellRemoved](events)
	if len(removed) != 3 {
		t.Fatalf("removed = %+v, want 3 cells", removed)
	}
	for i, slot := range []int{0, 1, 3} {
		if removed[i].Slot != slot || removed[i].Color != 0 {
			t.Errorf("removed[%d] = %+v", i, removed[i])
		}
	}

	// Column 0 keeps slot 6, column 1 keeps 4 and 7 shifted down; the rest spawns.
	falls := eventsOf[CellMarkedForFall](events)
	wantSources := map[int]int{0: 6, 1: 4, 3: -1, 4: 7, 6: -1, 7: -1}
	if len(falls) != len(wantSources) {
		t.Fatalf("falls = %+v", falls)
	}
	for _, f := range falls {
		src, ok := wantSources[f.Slot]
		if !ok || f.Source != src || f.Spawned != (src == -1) {
			t.Errorf("fall %+v, want source %d", f, src)
		}
		if f.To != s.SlotPosition(f.Slot) {
			t.Errorf("fall %d ends at %v, want %v", f.Slot, f.To, s.SlotPosition(f.Slot))
		}
		if !f.Spawned && f.From != s.SlotPosition(f.Source) {
			t.Errorf("fall %d starts at %v", f.Slot, f.From)
		}
		if f.Spawned && f.From.X <= s.SlotPosition(8).X {
			t.Errorf("spawn %d starts at %v, inside the grid", f.Slot, f.From)
		}
	}
	if c := s.Grid().Cell(0); c.Color != 2 {
		t.Errorf("slot 0 color = %d, want 2 from slot 6", c.Color)
	}
	if c := s.Grid().Cell(1); c.Color != 1 {
		t.Errorf("slot 1 color = %d, want 1 from slot 4", c.Color)
	}

	if got := eventsOf[InteractionLocked](events); !reflect.DeepEqual(got, []InteractionLocked{{Locked: true}}) {
		t.Errorf("lock events = %+v", got)
	}

	// Same seed, same inputs, same grid.
	s2, events2 := run(99)
	if s.Snapshot().Hash() != s2.Snapshot().Hash() {
		t.Error("same seed produced different states")
	}
	if !reflect.DeepEqual(events, events2) {
		t.Error("same seed produced different events")
	}
}

func TestLockedSessionIgnoresInput(t *testing.T) {
	s := newTestSession(t, testRules(), 1)
	s.PressSlot(0)
	s.EnterSlot(1)
	s.EnterSlot(3)
	s.Release()

	before := s.Snapshot().Hash()
	if ev := s.PressSlot(5); ev != nil {
		t.Errorf("press while locked = %+v", ev)
	}
	if ev := s.Release(); ev != nil {
		t.Errorf("release while locked = %+v", ev)
	}
	if s.Snapshot().Hash() != before {
		t.Error("locked session changed state")
	}

	ev := s.CascadeComplete()
	if !reflect.DeepEqual(ev, []Event{InteractionLocked{Locked: false}}) {
		t.Errorf("CascadeComplete = %+v", ev)
	}
	if s.Locked() {
		t.Error("still locked after CascadeComplete")
	}
	if ev := s.CascadeComplete(); ev != nil {
		t.Errorf("second CascadeComplete = %+v", ev)
	}
}

func TestShortPathRejected(t *testing.T) {
	s := newTestSession(t, testRules(), 1)
	s.PressSlot(0)
	s.EnterSlot(1)
	events := s.Release()

	if s.Score() != 0 || s.MovesLeft() != 5 || s.Locked() {
		t.Errorf("rejected path changed score %d moves %d locked %v", s.Score(), s.MovesLeft(), s.Locked())
	}
	got := eventsOf[CellUnhighlighted](events)
	if !reflect.DeepEqual(got, []CellUnhighlighted{{Slot: 0}, {Slot: 1}}) {
		t.Errorf("unhighlight = %+v", got)
	}
	if s.Dragging() || len(s.Path()) != 0 {
		t.Error("selection not consumed")
	}
}

func TestRevisitCommitsWithoutRelease(t *testing.T) {
	s := newTestSession(t, testRules(), 1)
	s.PressSlot(0)
	s.EnterSlot(1)
	s.EnterSlot(3)
	events := s.EnterSlot(0)

	if s.Score() != 3 || s.MovesLeft() != 4 {
		t.Errorf("score %d moves %d after closing the path", s.Score(), s.MovesLeft())
	}
	if len(eventsOf[CellRemoved](events)) != 3 {
		t.Error("closing the path must commit all three cells")
	}
}

func TestEnterSameSlotIsNoop(t *testing.T) {
	s := newTestSession(t, testRules(), 1)
	s.PressSlot(0)
	s.EnterSlot(1)
	if ev := s.EnterSlot(1); ev != nil {
		t.Errorf("repeat enter = %+v", ev)
	}
	if !reflect.DeepEqual(s.Path(), []int{0, 1}) {
		t.Errorf("path = %v", s.Path())
	}
}

func TestDragOutsideCancels(t *testing.T) {
	s := newTestSession(t, testRules(), 1)
	s.Press(s.SlotPosition(0))
	s.DragTo(s.SlotPosition(1))
	events := s.DragTo(Point{X: -50, Y: -50})

	if s.Dragging() {
		t.Fatal("drag still active after leaving the grid")
	}
	if len(eventsOf[CellUnhighlighted](events)) != 2 {
		t.Errorf("events = %+v", events)
	}
	if s.Score() != 0 || s.MovesLeft() != 5 {
		t.Error("cancel must not score")
	}
	if ev := s.Press(Point{X: -50, Y: -50}); ev != nil {
		t.Errorf("press outside = %+v", ev)
	}
}

func TestBoomPromotionAndTrigger(t *testing.T) {
	s := newTestSession(t, testRules(), 3)
	paint(s.Grid(), 0, 0, 1, 0, 0, 2, 0, 1, 2)

	// 0 -> 1 -> 4 -> 3 -> 6 is a five cell chain; 6 becomes a boom.
	for i, slot := range []int{0, 1, 4, 3, 6} {
		if i == 0 {
			s.PressSlot(slot)
			continue
		}
		s.EnterSlot(slot)
	}
	events := s.Release()
	if s.Score() != 5 {
		t.Errorf("score = %d, want 5", s.Score())
	}
	for _, r := range eventsOf[CellRemoved](events) {
		if r.Slot == 6 {
			t.Error("promoted cell must not be removed")
		}
	}
	// Column 0 is dirty at 0 and 3, so the boom at 6 falls to 0.
	if got := s.Grid().BoomSlots(); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("boom slots = %v, want [0]", got)
	}
	s.CascadeComplete()

	if _, err := s.TriggerBoom(4); !errors.Is(err, ErrNotBoomCell) {
		t.Errorf("TriggerBoom on plain cell error = %v", err)
	}

	events, err := s.TriggerBoom(0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Score() != 15 || s.MovesLeft() != 3 {
		t.Errorf("after boom score %d moves %d, want 15 and 3", s.Score(), s.MovesLeft())
	}
	booms := eventsOf[BoomTriggered](events)
	if len(booms) != 1 || !reflect.DeepEqual(booms[0].Cleared, []int{0, 1, 3}) {
		t.Errorf("boom events = %+v", booms)
	}
	if !s.Locked() {
		t.Error("boom must lock interaction")
	}
	if _, err := s.TriggerBoom(0); !errors.Is(err, ErrLocked) {
		t.Errorf("boom while locked error = %v", err)
	}
}

func TestTriggerBoomWithoutBoomIsRejected(t *testing.T) {
	s := newTestSession(t, testRules(), 5)
	before := s.Snapshot()
	for slot := -1; slot <= 9; slot++ {
		ev, err := s.TriggerBoom(slot)
		if !errors.Is(err, ErrNotBoomCell) || ev != nil {
			t.Errorf("TriggerBoom(%d) = %v, %v", slot, ev, err)
		}
	}
	if s.Snapshot().Hash() != before.Hash() {
		t.Error("rejected boom changed state")
	}
}

func TestPressBoomCellTriggersIt(t *testing.T) {
	s := newTestSession(t, testRules(), 5)
	s.Grid().Cell(4).Boom = true
	events := s.PressSlot(4)
	if len(eventsOf[BoomTriggered](events)) != 1 {
		t.Fatalf("events = %+v", events)
	}
	if s.Score() != DefaultBoomBonus || s.MovesLeft() != 4 {
		t.Errorf("score %d moves %d", s.Score(), s.MovesLeft())
	}
}

func TestDragIntoBoomDiscardsPath(t *testing.T) {
	s := newTestSession(t, testRules(), 5)
	s.Grid().Cell(8).Boom = true
	s.PressSlot(0)
	s.EnterSlot(1)
	events := s.EnterSlot(8)

	if s.Dragging() {
		t.Error("boom must end the drag")
	}
	if s.Score() != DefaultBoomBonus {
		t.Errorf("score = %d, want only the boom bonus", s.Score())
	}
	if len(eventsOf[CellUnhighlighted](events)) != 2 {
		t.Errorf("path not unhighlighted: %+v", events)
	}
}

func TestGameOverOnLastMove(t *testing.T) {
	r := testRules()
	r.MaxMoves = 1
	s := newTestSession(t, r, 1)
	s.PressSlot(0)
	s.EnterSlot(1)
	s.EnterSlot(3)
	events := s.Release()

	over := eventsOf[GameOver](events)
	if len(over) != 1 || over[0].Score != 3 {
		t.Fatalf("game over events = %+v", over)
	}
	if _, ok := events[len(events)-1].(GameOver); !ok {
		t.Error("GameOver must be the last event of the batch")
	}
	if !s.IsGameOver() {
		t.Error("IsGameOver = false")
	}

	s.CascadeComplete()
	if s.Locked() {
		t.Error("CascadeComplete must still unlock after game over")
	}
	if ev := s.PressSlot(0); ev != nil {
		t.Errorf("press after game over = %+v", ev)
	}
	if _, err := s.TriggerBoom(0); !errors.Is(err, ErrGameOver) {
		t.Errorf("TriggerBoom after game over = %v", err)
	}
}

func TestComboTracking(t *testing.T) {
	r := testRules()
	r.Width, r.Height = 6, 1
	s, err := NewSession(r, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	paint(s.Grid(), 1, 1, 1, 1, 1, 1)
	s.PressSlot(0)
	for slot := 1; slot < 6; slot++ {
		s.EnterSlot(slot)
	}
	events := s.Release()

	if s.Score() != 12 || s.Combo() != 2 || s.BestCombo() != 2 {
		t.Errorf("score %d combo %d best %d, want 12 2 2", s.Score(), s.Combo(), s.BestCombo())
	}
	if got := eventsOf[ComboChanged](events); !reflect.DeepEqual(got, []ComboChanged{{Combo: 2}}) {
		t.Errorf("combo events = %+v", got)
	}
}
