package render

import "image/color"

// FillColors converts a row-major color buffer into RGBA bytes in buf.
// Excess cells beyond len(buf)/4 are ignored.
func FillColors(buf []byte, colors []color.RGBA) {
	n := len(buf) / 4
	if len(colors) < n {
		n = len(colors)
	}
	for i := 0; i < n; i++ {
		base := i * 4
		c := colors[i]
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Over composites src over an opaque background, used where a display cannot
// show transparency.
func Over(src, bg color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return bg
	}
	a := uint32(src.A)
	inv := 255 - a
	return color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(bg.R)*inv) / 255),
		G: uint8((uint32(src.G)*a + uint32(bg.G)*inv) / 255),
		B: uint8((uint32(src.B)*a + uint32(bg.B)*inv) / 255),
		A: 255,
	}
}
