package sand

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Material identifies the substance occupying a cell.
type Material uint8

const (
	Air Material = iota
	Sand
	Water
	Wood

	// MaterialCount is the size of the closed material enumeration.
	MaterialCount
)

// ErrUnknownMaterial is returned when a material name cannot be resolved.
var ErrUnknownMaterial = errors.New("unknown material")

// Attributes are the static display and physical properties of a material.
type Attributes struct {
	Name    string
	Color   color.RGBA
	Mobile  bool
	Fluid   bool
	Density float32
}

// Background is the color exported for vacant cells.
var Background = color.RGBA{}

var materialTable = [MaterialCount]Attributes{
	Air:   {Name: "air", Color: Background},
	Sand:  {Name: "sand", Color: color.RGBA{R: 222, G: 155, B: 31, A: 255}, Mobile: true, Density: 3},
	Water: {Name: "water", Color: color.RGBA{R: 50, G: 130, B: 255, A: 255}, Mobile: true, Fluid: true, Density: 1},
	Wood:  {Name: "wood", Color: color.RGBA{R: 100, G: 60, B: 20, A: 255}, Density: 6},
}

// AttributesOf looks up the attributes of m. The enumeration is closed, so an
// unknown id means corrupted state and panics.
func AttributesOf(m Material) Attributes {
	if m >= MaterialCount {
		panic(fmt.Sprintf("sand: invalid material id %d", m))
	}
	return materialTable[m]
}

// Attributes returns the static attributes of m.
func (m Material) Attributes() Attributes { return AttributesOf(m) }

// Valid reports whether m belongs to the enumeration.
func (m Material) Valid() bool { return m < MaterialCount }

// Mobile reports whether gravity applies to m.
func (m Material) Mobile() bool { return AttributesOf(m).Mobile }

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materialTable[m].Name
}

// ParseMaterial resolves a case-insensitive material name.
func ParseMaterial(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := Material(0); i < MaterialCount; i++ {
		if materialTable[i].Name == key {
			return i, nil
		}
	}
	return Air, fmt.Errorf("parse material %q: %w", name, ErrUnknownMaterial)
}

// Paintable lists the materials a brush can place, in hotkey order.
func Paintable() []Material {
	return []Material{Sand, Water, Wood}
}

// Palette returns display colors indexed by material id.
func Palette() []color.RGBA {
	palette := make([]color.RGBA, MaterialCount)
	for i := range palette {
		palette[i] = materialTable[i].Color
	}
	return palette
}

// canDisplace reports whether mover may enter a cell holding target. Air is
// always vacant; a fluid yields to anything strictly denser and mobile.
func canDisplace(mover, target Material) bool {
	if target == Air {
		return true
	}
	m := AttributesOf(mover)
	t := AttributesOf(target)
	return m.Mobile && t.Mobile && t.Fluid && m.Density > t.Density
}
