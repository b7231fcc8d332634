package sand

import "github.com/go-gl/mathgl/mgl32"

// Cell is the state stored at one grid position.
type Cell struct {
	Material Material
	Velocity mgl32.Vec2
	// Touched marks a position that received material during the current tick.
	Touched bool
}

// Grid is a dense row-major array of cells. Every accessor rejects
// coordinates outside [0,W)x[0,H); nothing wraps or clamps.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates an all-air grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for in-bounds coordinates (x, y).
// Callers must check InBounds first.
func (g *Grid) Index(x, y int) int { return x + y*g.W }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Get returns the cell at (x, y). ok is false when the position is out of range.
func (g *Grid) Get(x, y int) (c Cell, ok bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.Index(x, y)], true
}

// Set overwrites the cell at (x, y) and reports whether the write happened.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.Index(x, y)] = c
	return true
}

// MaterialAt returns the material at (x, y), or false when out of range.
func (g *Grid) MaterialAt(x, y int) (Material, bool) {
	if !g.InBounds(x, y) {
		return Air, false
	}
	return g.cells[g.Index(x, y)].Material, true
}

// Swap exchanges material and velocity between two positions. Touched flags
// stay with their positions. Nothing changes unless both are in range.
func (g *Grid) Swap(x0, y0, x1, y1 int) bool {
	if !g.InBounds(x0, y0) || !g.InBounds(x1, y1) {
		return false
	}
	g.swapIndex(g.Index(x0, y0), g.Index(x1, y1))
	return true
}

func (g *Grid) swapIndex(a, b int) {
	ca, cb := &g.cells[a], &g.cells[b]
	ca.Material, cb.Material = cb.Material, ca.Material
	ca.Velocity, cb.Velocity = cb.Velocity, ca.Velocity
}

// ClearTouched resets every touched flag.
func (g *Grid) ClearTouched() {
	for i := range g.cells {
		g.cells[i].Touched = false
	}
}

// Clear resets the grid to air at rest.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Count returns the number of cells holding m.
func (g *Grid) Count(m Material) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Material == m {
			n++
		}
	}
	return n
}

// Occupied returns the number of non-air cells.
func (g *Grid) Occupied() int {
	return g.Len() - g.Count(Air)
}

// Materials writes one material id per cell into dst and returns it. dst is
// reallocated when its length does not match the grid.
func (g *Grid) Materials(dst []uint8) []uint8 {
	if len(dst) != len(g.cells) {
		dst = make([]uint8, len(g.cells))
	}
	for i := range g.cells {
		dst[i] = uint8(g.cells[i].Material)
	}
	return dst
}
