package hexline

import (
	hexcore "github.com/vovakirdan/hexline/internal/games/hexline/core"
)

// AnimationPhase is the current stage of a cascade animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseRemove
	PhaseFall
)

// removal is a cleared cell flashing before it disappears.
type removal struct {
	slot  int
	color int
	boom  bool
}

// fall is a refilled cell travelling from its source to its slot.
type fall struct {
	slot    int
	from    hexcore.Point
	to      hexcore.Point
	color   int
	boom    bool
	spawned bool
}

// animator plays one cascade at a time: removed cells flash, then every
// changed cell falls into place. It reports completion exactly once per
// cascade so the session is unlocked with a single CascadeComplete.
type animator struct {
	phase       AnimationPhase
	ticks       int
	removeTicks int
	fallTicks   int

	removals []removal
	falls    []fall
	content  []hexcore.CellContentChanged // Applied to the view when falling starts
}

func newAnimator(removeTicks, fallTicks int) animator {
	return animator{removeTicks: max(1, removeTicks), fallTicks: max(1, fallTicks)}
}

// msToTicks converts a duration in milliseconds to frames.
func msToTicks(ms, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(1, (ms*tickRate+500)/1000)
}

// Busy reports whether a cascade is still playing.
func (a *animator) Busy() bool {
	return a.phase != PhaseNone
}

// collect records the animation-relevant events of one engine batch.
func (a *animator) collect(ev hexcore.Event) {
	switch e := ev.(type) {
	case hexcore.CellRemoved:
		a.removals = append(a.removals, removal{slot: e.Slot, color: e.Color, boom: e.Boom})
	case hexcore.CellContentChanged:
		a.content = append(a.content, e)
	case hexcore.CellMarkedForFall:
		a.falls = append(a.falls, fall{slot: e.Slot, from: e.From, to: e.To, spawned: e.Spawned})
	}
}

// start begins playback of everything collected. Fall payloads come from
// the content changes of the same batch.
func (a *animator) start() {
	payload := make(map[int]hexcore.CellContentChanged, len(a.content))
	for _, c := range a.content {
		payload[c.Slot] = c
	}
	for i := range a.falls {
		c := payload[a.falls[i].slot]
		a.falls[i].color = c.Color
		a.falls[i].boom = c.Boom
	}
	a.ticks = 0
	a.phase = PhaseRemove
	if len(a.removals) == 0 {
		a.phase = PhaseFall
	}
}

// step advances one frame. fallStarted is true on the frame the view must
// take the new cell contents; done is true once, when the cascade ends.
func (a *animator) step() (fallStarted, done bool) {
	switch a.phase {
	case PhaseRemove:
		a.ticks++
		if a.ticks >= a.removeTicks {
			a.phase = PhaseFall
			a.ticks = 0
			a.removals = nil
			return true, false
		}
	case PhaseFall:
		a.ticks++
		if a.ticks >= a.fallTicks {
			a.reset()
			return false, true
		}
	}
	return false, false
}

// takeContent hands the pending content changes to the caller.
func (a *animator) takeContent() []hexcore.CellContentChanged {
	c := a.content
	a.content = nil
	return c
}

func (a *animator) reset() {
	a.phase = PhaseNone
	a.ticks = 0
	a.removals = nil
	a.falls = nil
	a.content = nil
}

// progress returns the completion of the current phase in [0, 1].
func (a *animator) progress() float64 {
	var total int
	switch a.phase {
	case PhaseRemove:
		total = a.removeTicks
	case PhaseFall:
		total = a.fallTicks
	default:
		return 1
	}
	return min(1, float64(a.ticks)/float64(total))
}

// falling reports whether slot is still travelling and must not be drawn
// at rest.
func (a *animator) falling(slot int) bool {
	if a.phase != PhaseFall {
		return false
	}
	for _, f := range a.falls {
		if f.slot == slot {
			return true
		}
	}
	return false
}

// position returns where a falling cell is drawn at progress t.
func (f fall) position(t float64) hexcore.Point {
	e := easeOutBounce(t)
	return hexcore.Point{
		X: f.from.X + (f.to.X-f.from.X)*e,
		Y: f.from.Y + (f.to.Y-f.from.Y)*e,
	}
}

// easeOutBounce settles with a few decaying bounces at the end.
func easeOutBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
