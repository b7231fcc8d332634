//go:build ebiten

package ui

import (
	"image/color"

	"sandbox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type brushProvider interface {
	Brush() float64
	BrushFill() float64
}

// Overlay draws the brush outline under the cursor on top of the sim view.
type Overlay struct {
	sim       core.Sim
	scale     int
	showBrush bool
	showFill  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, showBrush: true}
}

// Update toggles overlay layers: B for the brush outline, F for the fill disc.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBrush = !o.showBrush
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.showFill = !o.showFill
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showBrush {
		return
	}
	provider, ok := o.sim.(brushProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= size.W*scale || my >= size.H*scale {
		return
	}
	cx := float32(mx/scale)*float32(scale) + float32(scale)/2
	cy := float32(my/scale)*float32(scale) + float32(scale)/2
	r := float32(provider.Brush()) * float32(scale)
	vector.StrokeCircle(screen, cx, cy, r, 1, color.RGBA{R: 230, G: 230, B: 240, A: 160}, true)
	if o.showFill {
		fill := float32(provider.BrushFill()) * float32(scale)
		vector.StrokeCircle(screen, cx, cy, fill, 1, color.RGBA{R: 255, G: 200, B: 60, A: 160}, true)
	}
}
