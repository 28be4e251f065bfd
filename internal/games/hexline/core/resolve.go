package core

import (
	"errors"
	"fmt"
)

// ErrNotBoomCell is returned when a boom is triggered on a slot without the
// boom flag. Grid state is left untouched.
var ErrNotBoomCell = errors.New("core: cell is not a boom cell")

// ScoreForPath returns the score delta and combo multiplier of a committed
// path: combo = length/divisor, delta = length when combo <= 1, otherwise
// combo*length.
func ScoreForPath(length, divisor int) (delta, combo int) {
	if divisor <= 0 {
		divisor = DefaultComboDivisor
	}
	combo = length / divisor
	if combo <= 1 {
		return length, combo
	}
	return combo * length, combo
}

// CommitResult describes what a commit did to the grid.
type CommitResult struct {
	Accepted bool
	Delta    int
	Combo    int
	Removed  []int // Slots marked dirty
	Promoted int   // Slot promoted to boom, or -1
}

// Resolver applies committed paths and booms to the grid and refills it.
type Resolver struct {
	grid  *Grid
	rules Rules
	rng   Rand
}

// NewResolver creates a resolver for g.
func NewResolver(g *Grid, rules Rules, rng Rand) *Resolver {
	return &Resolver{grid: g, rules: rules, rng: rng}
}

// Commit marks an accepted path for removal. Paths shorter than the
// minimum are rejected without touching the grid. Paths reaching the boom
// length keep their last cell as a boom instead of removing it.
func (r *Resolver) Commit(path []int) CommitResult {
	res := CommitResult{Promoted: -1}
	if len(path) < r.rules.MinPathLength {
		return res
	}
	res.Accepted = true
	res.Delta, res.Combo = ScoreForPath(len(path), r.rules.ComboDivisor)

	promote := len(path) >= r.rules.BoomPathLength
	for i, slot := range path {
		c := r.grid.Cell(slot)
		if c == nil {
			continue
		}
		if promote && i == len(path)-1 {
			c.Boom = true
			res.Promoted = slot
			continue
		}
		c.Dirty = true
		res.Removed = append(res.Removed, slot)
	}
	return res
}

// Boom clears the boom flag on slot and marks it and every existing
// neighbour dirty. It returns the marked slots, the boom slot first.
func (r *Resolver) Boom(slot int) ([]int, error) {
	c := r.grid.Cell(slot)
	if c == nil {
		return nil, fmt.Errorf("%w: slot %d out of range", ErrNotBoomCell, slot)
	}
	if !c.Boom {
		return nil, fmt.Errorf("%w: slot %d", ErrNotBoomCell, slot)
	}
	c.Boom = false
	c.Dirty = true
	marked := []int{slot}
	for _, n := range r.grid.NeighborSlots(slot) {
		r.grid.Cell(n).Dirty = true
		marked = append(marked, n)
	}
	return marked, nil
}
