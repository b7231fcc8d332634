package sand

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotColors(t *testing.T) {
	w := New(3, 2)
	place(t, w, 0, 0, Sand)
	place(t, w, 2, 1, Water)
	place(t, w, 1, 1, Wood)

	snap := w.Snapshot()

	require.Len(t, snap, 6)
	assert.Equal(t, AttributesOf(Sand).Color, snap[0])
	assert.Equal(t, Background, snap[1])
	assert.Equal(t, color.RGBA{}, snap[2])
	assert.Equal(t, AttributesOf(Wood).Color, snap[4])
	assert.Equal(t, AttributesOf(Water).Color, snap[5])
}

func TestSnapshotIsPureRead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Fill = FillTestPattern
	w := NewWithConfig(cfg)
	w.Reset(0)
	w.Grid().cells[3].Touched = true

	before := append([]Cell(nil), w.Grid().cells...)
	tick := w.Tick()
	buf := make([]color.RGBA, 16*16)
	out := w.SnapshotInto(buf)

	assert.Equal(t, before, w.Grid().cells)
	assert.Equal(t, tick, w.Tick())
	assert.Same(t, &buf[0], &out[0], "correctly sized buffers are reused")
}

func TestSnapshotIntoReallocatesWrongSize(t *testing.T) {
	w := New(4, 4)
	out := w.SnapshotInto(make([]color.RGBA, 3))
	assert.Len(t, out, 16)
}
