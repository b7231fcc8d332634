package sand

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapParsesAndNormalizes(t *testing.T) {
	c := FromMap(map[string]string{
		"w":         "32",
		"h":         "abc",
		"gravity":   "-3",
		"brush":     "100",
		"fill":      "test",
		"alternate": "false",
		"seed":      "42",
	})
	def := DefaultConfig()
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, def.Height, c.Height)
	assert.Equal(t, def.Gravity, c.Gravity, "negative gravity is ignored")
	assert.Equal(t, def.BrushMax, c.BrushRadius)
	assert.Equal(t, FillTestPattern, c.Fill)
	assert.False(t, c.Alternate)
	assert.Equal(t, int64(42), c.Seed)
}

func TestFromMapClampsGravityToVelocityCap(t *testing.T) {
	c := FromMap(map[string]string{"gravity": "20", "max_velocity": "4"})
	assert.Equal(t, float32(4), c.MaxVelocity)
	assert.Equal(t, float32(4), c.Gravity)
}

func TestFromMapNil(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestParseFill(t *testing.T) {
	f, err := ParseFill("TEST")
	require.NoError(t, err)
	assert.Equal(t, FillTestPattern, f)

	f, err = ParseFill("")
	require.NoError(t, err)
	assert.Equal(t, FillEmpty, f)

	_, err = ParseFill("checkerboard")
	assert.ErrorIs(t, err, ErrUnknownFill)
}

func TestBindFlags(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "64", "-fill", "test", "-gravity", "2.5", "-alternate=false"}))

	assert.Equal(t, 64, c.Width)
	assert.Equal(t, FillTestPattern, c.Fill)
	assert.Equal(t, float32(2.5), c.Gravity)
	assert.False(t, c.Alternate)

	fs = flag.NewFlagSet("sand", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)
	assert.Error(t, fs.Parse([]string{"-fill", "bogus"}))
}

func TestMaterialSelectionFromConfig(t *testing.T) {
	cfg := FromMap(map[string]string{"material": "Water"})
	assert.Equal(t, Water, cfg.Material)
	assert.Equal(t, Water, NewWithConfig(cfg).Selected())

	assert.Equal(t, Sand, FromMap(map[string]string{"material": "air"}).Material, "air is not paintable")
	assert.Equal(t, Sand, FromMap(map[string]string{"material": "lava"}).Material)

	c := DefaultConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-material", "wood"}))
	assert.Equal(t, Wood, c.Material)

	fs = flag.NewFlagSet("sand", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)
	assert.Error(t, fs.Parse([]string{"-material", "air"}))
	assert.Error(t, fs.Parse([]string{"-material", "glass"}))
}

func TestParametersAndSetters(t *testing.T) {
	w := New(10, 10)

	assert.True(t, w.SetFloatParameter("gravity", 100))
	assert.Equal(t, w.Config().MaxVelocity, w.Config().Gravity)

	assert.True(t, w.SetIntParameter("brush", 12))
	assert.Equal(t, 12.0, w.Brush())

	assert.True(t, w.SetBoolParameter("alternate", false))
	assert.False(t, w.Config().Alternate)
	assert.False(t, w.SetBoolParameter("gravity", true))
	assert.False(t, w.SetFloatParameter("nope", 1))

	assert.True(t, w.SetFloatParameter("max_velocity", 2))
	assert.Equal(t, float32(2), w.Config().Gravity, "gravity follows a lowered cap")

	snap := w.Parameters()
	p, ok := snap.Lookup("brush")
	require.True(t, ok)
	assert.Equal(t, "12", p.Value)
	p, ok = snap.Lookup("material")
	require.True(t, ok)
	assert.Equal(t, "sand", p.Value)

	assert.NotEmpty(t, w.ParameterControls())
}

func TestWithLayersOnExistingConfig(t *testing.T) {
	c := DefaultConfig()
	c.Width = 10
	c = c.With(map[string]string{"h": "5", "brush_min": "2", "brush_max": "4", "brush": "3"})
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, 5, c.Height)
	assert.Equal(t, 2.0, c.BrushMin)
	assert.Equal(t, 4.0, c.BrushMax)
	assert.Equal(t, 3.0, c.BrushRadius)
}
