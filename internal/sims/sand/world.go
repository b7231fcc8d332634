package sand

import (
	"sandbox/internal/core"
	pcore "sandbox/pkg/core"
)

// World owns the grid and the per-tick bookkeeping of the falling-sand sim.
// It is not safe for concurrent use: input, ticks and snapshots must be
// serialized by the caller.
type World struct {
	cfg  Config
	grid *Grid

	tick  uint64
	moves int

	brush    float64
	selected Material

	cells []uint8
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The grid
// starts empty; call Reset to apply the fill policy.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalized()
	return &World{
		cfg:      cfg,
		grid:     NewGrid(cfg.Width, cfg.Height),
		brush:    cfg.BrushRadius,
		selected: cfg.Material,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Grid exposes the backing grid.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Tick returns the number of completed ticks since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// LastMoves returns how many displacements the previous tick performed.
func (w *World) LastMoves() int { return w.moves }

// Reset clears the grid and applies the configured fill policy. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	w.grid.Clear()
	w.tick = 0
	w.moves = 0
	if w.cfg.Fill != FillTestPattern {
		return
	}
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.fillTestPattern(pcore.NewRNG(seed))
}

// Step advances the simulation by exactly one tick: a single bottom-to-top
// scan that skips touched cells, followed by clearing every touched flag.
func (w *World) Step() {
	g := w.grid
	w.moves = 0
	reverse := w.cfg.Alternate && w.tick%2 == 1
	for y := g.H - 1; y >= 0; y-- {
		if reverse {
			for x := g.W - 1; x >= 0; x-- {
				w.visit(x, y)
			}
			continue
		}
		for x := 0; x < g.W; x++ {
			w.visit(x, y)
		}
	}
	g.ClearTouched()
	w.tick++
}

func (w *World) visit(x, y int) {
	c := &w.grid.cells[w.grid.Index(x, y)]
	if c.Touched || c.Material == Air {
		return
	}
	w.update(x, y)
}

// Stats summarizes the world for status lines and tools.
type Stats struct {
	Tick   uint64
	Moves  int
	Counts [MaterialCount]int
}

// Occupied returns the number of non-air cells.
func (s Stats) Occupied() int {
	n := 0
	for m := Material(1); m < MaterialCount; m++ {
		n += s.Counts[m]
	}
	return n
}

// Stats counts cells per material.
func (w *World) Stats() Stats {
	s := Stats{Tick: w.tick, Moves: w.moves}
	for i := range w.grid.cells {
		s.Counts[w.grid.cells[i].Material]++
	}
	return s
}

// fillTestPattern lays a wood shelf across the middle of the lower third and
// scatters sand and water, some already falling, over the upper half.
func (w *World) fillTestPattern(rng *pcore.RNG) {
	g := w.grid
	shelfY := g.H * 2 / 3
	for x := g.W / 4; x < g.W*3/4; x++ {
		g.Set(x, shelfY, Cell{Material: Wood})
	}
	for y := 0; y < g.H/2; y++ {
		for x := 0; x < g.W; x++ {
			var m Material
			switch {
			case rng.Chance(0.3):
				m = Sand
			case rng.Chance(0.2):
				m = Water
			default:
				continue
			}
			c := Cell{Material: m}
			c.Velocity[1] = rng.Float32n(3)
			g.Set(x, y, c)
		}
	}
}
