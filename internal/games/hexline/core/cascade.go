package core

// TransitionSource says where a refilled slot got its content from.
type TransitionSource int

const (
	SourceFall  TransitionSource = iota // Copied from a slot above in the column
	SourceSpawn                         // Fresh random color from above the top row
)

// String returns a string representation of the source.
func (s TransitionSource) String() string {
	if s == SourceSpawn {
		return "spawn"
	}
	return "fall"
}

// Transition is the per-slot result of a cascade, used for animation only.
type Transition struct {
	Slot     int
	Color    int
	Boom     bool
	Source   TransitionSource
	From     int // Source slot for SourceFall, -1 otherwise
	SpawnRow int // Virtual row above the grid for SourceSpawn, -1 otherwise
}

// Cascade refills every dirty slot in one pass, bottom row first.
// A dirty slot takes the content of the nearest clean slot above it in the
// same column, which becomes dirty in turn; when there is none it gets a
// random color. Column order of surviving content is preserved. All dirty
// flags are clear when Cascade returns.
func (r *Resolver) Cascade() []Transition {
	g := r.grid
	total := len(g.cells)
	spawned := make([]int, g.width)

	var out []Transition
	var resolved []int
	for i := 0; i < total; i++ {
		c := &g.cells[i]
		if !c.Dirty {
			continue
		}
		resolved = append(resolved, i)

		src := -1
		for j := i + g.width; j < total; j += g.width {
			if !g.cells[j].Dirty {
				src = j
				break
			}
		}

		if src >= 0 {
			from := &g.cells[src]
			c.Color = from.Color
			c.Boom = from.Boom
			from.Dirty = true
			out = append(out, Transition{
				Slot:     i,
				Color:    c.Color,
				Boom:     c.Boom,
				Source:   SourceFall,
				From:     src,
				SpawnRow: -1,
			})
			continue
		}

		col := i % g.width
		c.Color = r.rng.Intn(r.rules.PaletteSize)
		c.Boom = false
		out = append(out, Transition{
			Slot:     i,
			Color:    c.Color,
			Source:   SourceSpawn,
			From:     -1,
			SpawnRow: g.height + spawned[col],
		})
		spawned[col]++
	}

	for _, i := range resolved {
		g.cells[i].Dirty = false
	}
	return out
}
