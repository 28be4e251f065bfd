package core

import (
	"fmt"
	"hash/fnv"
)

// Snapshot is a copy of the observable session state.
type Snapshot struct {
	Score     int
	MovesLeft int
	Combo     int
	BestCombo int
	Locked    bool
	GameOver  bool
	Colors    []int
	Booms     []bool
	Path      []int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	n := s.grid.Len()
	snap := Snapshot{
		Score:     s.score,
		MovesLeft: s.moves,
		Combo:     s.combo,
		BestCombo: s.bestCombo,
		Locked:    s.locked,
		GameOver:  s.over,
		Colors:    make([]int, n),
		Booms:     make([]bool, n),
		Path:      s.sel.Path(),
	}
	for i := 0; i < n; i++ {
		c := s.grid.Cell(i)
		snap.Colors[i] = c.Color
		snap.Booms[i] = c.Boom
	}
	return snap
}

// Hash returns a hash of the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "S:%d;M:%d;C:%d/%d;L:%v;O:%v;", s.Score, s.MovesLeft, s.Combo, s.BestCombo, s.Locked, s.GameOver)
	fmt.Fprintf(h, "G:")
	for i, c := range s.Colors {
		fmt.Fprintf(h, "%d:%v,", c, s.Booms[i])
	}
	fmt.Fprintf(h, ";P:")
	for _, p := range s.Path {
		fmt.Fprintf(h, "%d,", p)
	}
	return h.Sum64()
}
