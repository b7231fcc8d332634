package sand

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSetGetRoundTrip(t *testing.T) {
	g := NewGrid(6, 4)
	want := Cell{Material: Water, Velocity: mgl32.Vec2{0, 2.5}, Touched: true}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			require.True(t, g.Set(x, y, want))
			got, ok := g.Get(x, y)
			require.True(t, ok)
			assert.Equal(t, want, got, "cell (%d,%d)", x, y)
		}
	}
}

func TestGridRejectsOutOfBounds(t *testing.T) {
	g := NewGrid(4, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}} {
		assert.False(t, g.InBounds(p[0], p[1]))
		assert.False(t, g.Set(p[0], p[1], Cell{Material: Sand}), "set %v", p)
		c, ok := g.Get(p[0], p[1])
		assert.False(t, ok, "get %v", p)
		assert.Equal(t, Cell{}, c)
		_, ok = g.MaterialAt(p[0], p[1])
		assert.False(t, ok)
	}
	assert.Equal(t, 0, g.Occupied(), "rejected writes must not land anywhere")
	assert.False(t, g.Swap(0, 0, 4, 0))
}

func TestGridIndexRowMajor(t *testing.T) {
	g := NewGrid(5, 3)
	assert.Equal(t, 0, g.Index(0, 0))
	assert.Equal(t, 4, g.Index(4, 0))
	assert.Equal(t, 5, g.Index(0, 1))
	assert.Equal(t, 14, g.Index(4, 2))
	assert.Equal(t, 15, g.Len())
}

func TestGridNonPositiveDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)
	assert.Equal(t, 1, g.Len())
}

func TestGridSwapKeepsTouchedWithPosition(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, Cell{Material: Sand, Velocity: mgl32.Vec2{0, 3}, Touched: true})
	g.Set(1, 0, Cell{Material: Water})

	require.True(t, g.Swap(0, 0, 1, 0))

	a, _ := g.Get(0, 0)
	b, _ := g.Get(1, 0)
	assert.Equal(t, Cell{Material: Water, Touched: true}, a)
	assert.Equal(t, Cell{Material: Sand, Velocity: mgl32.Vec2{0, 3}}, b)
}

func TestGridCountsAndMaterials(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, Cell{Material: Sand})
	g.Set(1, 1, Cell{Material: Wood})
	g.Set(2, 1, Cell{Material: Sand})

	assert.Equal(t, 2, g.Count(Sand))
	assert.Equal(t, 3, g.Occupied())
	assert.Equal(t, []uint8{1, 0, 0, 0, 3, 1}, g.Materials(nil))

	g.Clear()
	assert.Equal(t, 0, g.Occupied())
}
