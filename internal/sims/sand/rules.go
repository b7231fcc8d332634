package sand

import "github.com/go-gl/mathgl/mgl32"

// applyGravity accumulates g into the vertical component and clamps it to
// [-limit, limit].
func applyGravity(v mgl32.Vec2, g, limit float32) mgl32.Vec2 {
	v[1] = mgl32.Clamp(v[1]+g, -limit, limit)
	return v
}

// update runs the transition rule for the cell at (x, y). Immobile materials
// and air never reach the movement code.
func (w *World) update(x, y int) {
	g := w.grid
	cell := &g.cells[g.Index(x, y)]
	attr := AttributesOf(cell.Material)
	if !attr.Mobile {
		return
	}
	cell.Velocity = applyGravity(cell.Velocity, w.cfg.Gravity, w.cfg.MaxVelocity)

	cy, blocked := w.fall(x, y, cell.Velocity.Y())
	if cy != y {
		if blocked {
			w.settle(x, cy)
		}
		return
	}

	if w.slideDiagonal(x, y) {
		return
	}
	if attr.Fluid && w.spread(x, y) {
		return
	}
	if blocked {
		w.settle(x, y)
	}
}

// fall walks straight down for up to max(1, int(vy)) rows. It returns the
// final row and whether the walk ended against the floor or a non-displaceable
// cell. A touched target stops the walk without counting as an obstacle.
// Displacing a fluid swaps the pair and ends the walk as blocked so the sinking
// cell loses its momentum.
func (w *World) fall(x, y int, vy float32) (int, bool) {
	g := w.grid
	steps := int(vy)
	if steps < 1 {
		steps = 1
	}
	cy := y
	for i := 0; i < steps; i++ {
		ny := cy + 1
		if !g.InBounds(x, ny) {
			return cy, true
		}
		from, to := g.Index(x, cy), g.Index(x, ny)
		if g.cells[to].Touched {
			return cy, false
		}
		target := g.cells[to].Material
		if !canDisplace(g.cells[from].Material, target) {
			return cy, true
		}
		w.displace(from, to)
		cy = ny
		if target != Air {
			return cy, true
		}
	}
	return cy, false
}

// slideDiagonal tries down-left then down-right.
func (w *World) slideDiagonal(x, y int) bool {
	for _, dx := range [2]int{-1, 1} {
		if w.tryMove(x, y, x+dx, y+1) {
			w.settle(x+dx, y+1)
			return true
		}
	}
	return false
}

// spread moves a fluid one column sideways into air. The preferred side
// alternates with tick parity when alternation is on; otherwise left wins.
func (w *World) spread(x, y int) bool {
	dirs := [2]int{-1, 1}
	if !w.leftFirst() {
		dirs = [2]int{1, -1}
	}
	for _, dx := range dirs {
		m, ok := w.grid.MaterialAt(x+dx, y)
		if !ok || m != Air {
			continue
		}
		if w.tryMove(x, y, x+dx, y) {
			w.settle(x+dx, y)
			return true
		}
	}
	return false
}

// tryMove displaces the cell at (x0, y0) into (x1, y1) when the target is in
// range, untouched and displaceable.
func (w *World) tryMove(x0, y0, x1, y1 int) bool {
	g := w.grid
	if !g.InBounds(x1, y1) {
		return false
	}
	from, to := g.Index(x0, y0), g.Index(x1, y1)
	if g.cells[to].Touched {
		return false
	}
	if !canDisplace(g.cells[from].Material, g.cells[to].Material) {
		return false
	}
	w.displace(from, to)
	return true
}

// displace exchanges two cells and marks every position that received
// material as touched. Moving into air leaves air behind at the source.
func (w *World) displace(from, to int) {
	g := w.grid
	occupied := g.cells[to].Material != Air
	g.swapIndex(from, to)
	g.cells[to].Touched = true
	if occupied {
		g.cells[from].Touched = true
	}
	w.moves++
}

// settle zeroes vertical velocity of the cell at (x, y).
func (w *World) settle(x, y int) {
	c := &w.grid.cells[w.grid.Index(x, y)]
	c.Velocity[1] = 0
}

func (w *World) leftFirst() bool {
	return !w.cfg.Alternate || w.tick%2 == 0
}
