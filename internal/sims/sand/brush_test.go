package sand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discCells(radius float64) int {
	limit := radius * BrushFalloff
	r := int(math.Ceil(limit))
	n := 0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if math.Hypot(float64(dx), float64(dy)) < limit {
				n++
			}
		}
	}
	return n
}

func TestPaintUsesShrunkRadius(t *testing.T) {
	w := New(40, 40)
	n := w.Paint(20, 20, 8, Sand)

	assert.Equal(t, discCells(8), n)
	assert.Equal(t, n, w.Grid().Count(Sand))
	assert.Equal(t, Sand, materialAt(t, w, 20, 20))
	assert.Equal(t, Sand, materialAt(t, w, 25, 20), "distance 5 < 6")
	assert.Equal(t, Air, materialAt(t, w, 26, 20), "distance 6 is outside 8*0.75")
}

func TestPaintNeverOverwrites(t *testing.T) {
	w := New(20, 20)
	place(t, w, 10, 10, Wood)

	n := w.Paint(10, 10, 8, Sand)

	assert.Equal(t, Wood, materialAt(t, w, 10, 10))
	assert.Equal(t, discCells(8)-1, n)
}

func TestPaintIsIdempotent(t *testing.T) {
	w := New(20, 20)
	require.Positive(t, w.Paint(5, 5, 6, Water))
	before := append([]uint8(nil), w.Cells()...)

	assert.Zero(t, w.Paint(5, 5, 6, Water))
	assert.Equal(t, before, w.Cells())
}

func TestPaintAirIsNoop(t *testing.T) {
	w := New(10, 10)
	assert.Zero(t, w.Paint(5, 5, 10, Air))
	assert.Panics(t, func() { w.Paint(5, 5, 10, Material(77)) })
}

func TestPaintClipsAtEdges(t *testing.T) {
	w := New(10, 10)
	n := w.Paint(0, 0, 8, Sand)
	assert.Positive(t, n)
	assert.Less(t, n, discCells(8))
	assert.Equal(t, n, w.Grid().Occupied())
}

func TestEraseClearsAnythingAndIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 30, 30
	cfg.Fill = FillTestPattern
	w := NewWithConfig(cfg)
	w.Reset(0)
	place(t, w, 15, 10, Wood)
	w.Grid().cells[w.Grid().Index(15, 11)].Velocity[1] = 4

	require.Positive(t, w.Erase(15, 10, 10))
	once := append([]Cell(nil), w.Grid().cells...)
	assert.Equal(t, Air, materialAt(t, w, 15, 10))
	c, _ := w.Grid().Get(15, 11)
	assert.Equal(t, Cell{}, c)

	assert.Zero(t, w.Erase(15, 10, 10))
	assert.Equal(t, once, w.Grid().cells)
}

func TestApplyWheelClampsBrush(t *testing.T) {
	w := New(10, 10)
	assert.Equal(t, 10.0, w.Brush())

	w.Apply(Input{WheelDelta: 100})
	assert.Equal(t, 25.0, w.Brush())

	w.Apply(Input{WheelDelta: -100})
	assert.Equal(t, 5.0, w.Brush())

	w.Apply(Input{WheelDelta: 3})
	assert.Equal(t, 8.0, w.Brush())
}

func TestBrushFillMatchesPaintedDisc(t *testing.T) {
	w := New(40, 40)
	w.SetBrushRadius(8)
	assert.Equal(t, 6.0, w.BrushFill())

	w.Apply(Input{X: 20, Y: 20, Paint: true})
	fill := int(w.BrushFill())
	assert.Equal(t, Sand, materialAt(t, w, 20+fill-1, 20))
	assert.Equal(t, Air, materialAt(t, w, 20+fill, 20))
}

func TestApplyPaintsSelectedMaterial(t *testing.T) {
	w := New(20, 20)
	w.Apply(Input{X: 10, Y: 10, Paint: true, Material: Water})
	assert.Equal(t, Water, w.Selected())
	assert.Equal(t, Water, materialAt(t, w, 10, 10))

	w.Apply(Input{X: 2, Y: 2, Paint: true})
	assert.Equal(t, Water, w.Selected(), "zero material keeps the selection")
	assert.Equal(t, Water, materialAt(t, w, 2, 2))

	w.Apply(Input{X: 10, Y: 10, Erase: true})
	assert.Equal(t, Air, materialAt(t, w, 10, 10))
}

func TestSelectRejectsAir(t *testing.T) {
	w := New(4, 4)
	assert.False(t, w.Select(Air))
	assert.False(t, w.Select(Material(9)))
	assert.True(t, w.Select(Wood))
	assert.Equal(t, Wood, w.Selected())
}
