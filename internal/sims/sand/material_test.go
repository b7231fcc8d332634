package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesTotalOverEnumeration(t *testing.T) {
	for m := Material(0); m < MaterialCount; m++ {
		attr := AttributesOf(m)
		assert.NotEmpty(t, attr.Name, "material %d", m)
		assert.Equal(t, attr, m.Attributes())
	}
	assert.Equal(t, Background, AttributesOf(Air).Color)
	assert.False(t, Air.Mobile())
	assert.False(t, Wood.Mobile())
	assert.True(t, Sand.Mobile())
	assert.True(t, Water.Mobile())
}

func TestAttributesPanicsOnUnknownMaterial(t *testing.T) {
	assert.Panics(t, func() { AttributesOf(MaterialCount) })
	assert.Panics(t, func() { AttributesOf(Material(200)) })
	assert.Equal(t, "material(200)", Material(200).String())
}

func TestParseMaterial(t *testing.T) {
	m, err := ParseMaterial(" Water ")
	require.NoError(t, err)
	assert.Equal(t, Water, m)

	_, err = ParseMaterial("lava")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestCanDisplace(t *testing.T) {
	assert.True(t, canDisplace(Sand, Air))
	assert.True(t, canDisplace(Water, Air))
	assert.True(t, canDisplace(Sand, Water), "sand sinks through water")
	assert.False(t, canDisplace(Water, Sand))
	assert.False(t, canDisplace(Water, Water))
	assert.False(t, canDisplace(Sand, Sand))
	assert.False(t, canDisplace(Sand, Wood))
	assert.False(t, canDisplace(Wood, Water), "immobile materials never displace")
}

func TestPaletteMatchesTable(t *testing.T) {
	palette := Palette()
	require.Len(t, palette, int(MaterialCount))
	for m := Material(0); m < MaterialCount; m++ {
		assert.Equal(t, AttributesOf(m).Color, palette[m])
	}
}
