package sand

import "image/color"

// Snapshot returns one color per cell in row-major order. Air maps to the
// transparent Background.
func (w *World) Snapshot() []color.RGBA {
	return w.SnapshotInto(nil)
}

// SnapshotInto writes the color buffer into dst, reallocating it when its
// length does not match the grid. It never mutates the world.
func (w *World) SnapshotInto(dst []color.RGBA) []color.RGBA {
	cells := w.grid.cells
	if len(dst) != len(cells) {
		dst = make([]color.RGBA, len(cells))
	}
	for i := range cells {
		dst[i] = materialTable[cells[i].Material].Color
	}
	return dst
}

// Cells exposes the material ids of the current grid, one byte per cell.
func (w *World) Cells() []uint8 {
	w.cells = w.grid.Materials(w.cells)
	return w.cells
}

// Palette exposes the color palette indexed by material id.
func (w *World) Palette() []color.RGBA {
	return Palette()
}
