package sand

import (
	"fmt"
	"math"
)

// BrushFalloff shrinks the affected disc relative to the nominal brush
// radius, so the drawn outline is larger than the filled area.
const BrushFalloff = 0.75

// Input is one tick's worth of pointer state from a front end. Coordinates
// are in grid cells. A zero Material keeps the current selection.
type Input struct {
	X, Y       int
	Paint      bool
	Erase      bool
	Material   Material
	WheelDelta float64
}

// Apply adjusts the brush radius and selection, then paints and/or erases
// under the pointer. Paint is applied before erase.
func (w *World) Apply(in Input) {
	if in.WheelDelta != 0 {
		w.SetBrushRadius(w.brush + in.WheelDelta)
	}
	if in.Material != Air && in.Material.Valid() {
		w.selected = in.Material
	}
	if in.Paint {
		w.Paint(in.X, in.Y, w.brush, w.selected)
	}
	if in.Erase {
		w.Erase(in.X, in.Y, w.brush)
	}
}

// Brush returns the current brush radius.
func (w *World) Brush() float64 { return w.brush }

// BrushFill returns the radius of the disc Paint and Erase actually cover.
func (w *World) BrushFill() float64 { return w.brush * BrushFalloff }

// SetBrushRadius sets the brush radius clamped to the configured bounds and
// returns the stored value.
func (w *World) SetBrushRadius(r float64) float64 {
	w.brush = clampRadius(r, w.cfg.BrushMin, w.cfg.BrushMax)
	return w.brush
}

// Selected returns the material the brush paints with.
func (w *World) Selected() Material { return w.selected }

// Select changes the brush material. Air and unknown ids are ignored.
func (w *World) Select(m Material) bool {
	if m == Air || !m.Valid() {
		return false
	}
	w.selected = m
	return true
}

// Paint fills air cells within radius*BrushFalloff of (cx, cy) with m and
// returns how many cells changed. Occupied cells are never overwritten.
func (w *World) Paint(cx, cy int, radius float64, m Material) int {
	if !m.Valid() {
		panic(fmt.Sprintf("sand: paint with invalid material id %d", m))
	}
	if m == Air {
		return 0
	}
	n := 0
	w.forDisc(cx, cy, radius, func(c *Cell) {
		if c.Material != Air {
			return
		}
		*c = Cell{Material: m}
		n++
	})
	return n
}

// Erase resets every cell within radius*BrushFalloff of (cx, cy) to air at
// rest and returns how many occupied cells were cleared.
func (w *World) Erase(cx, cy int, radius float64) int {
	n := 0
	w.forDisc(cx, cy, radius, func(c *Cell) {
		if c.Material != Air {
			n++
		}
		*c = Cell{}
	})
	return n
}

func (w *World) forDisc(cx, cy int, radius float64, fn func(*Cell)) {
	limit := radius * BrushFalloff
	if limit <= 0 {
		return
	}
	r := int(math.Ceil(limit))
	g := w.grid
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := cx+dx, cy+dy
			if !g.InBounds(x, y) {
				continue
			}
			if math.Hypot(float64(dx), float64(dy)) >= limit {
				continue
			}
			fn(&g.cells[g.Index(x, y)])
		}
	}
}
