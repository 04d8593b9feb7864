package stamp

import "image/color"

// Color is the color of a single pixel. A stamp only ever holds two of
// them: pure black and pure white. White pixels are the ones whose bits
// are set in the packed data.
type Color uint8

const (
	// Black is #000000 at full alpha. It is the zero value, matching a
	// clear bit in the packed data.
	Black Color = iota
	// White is #ffffff at full alpha, matching a set bit.
	White
)

var _ color.Color = Black

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == White {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Model converts an arbitrary color to the nearest of Black and White.
// It is the color model of Stamp's image.Image implementation; the
// packer in package bitmap deliberately does not use it, since packing
// rejects anything that is not already exactly black or white.
var Model = color.ModelFunc(toColor)

var twoColor = color.Palette{Black, White}

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return twoColor.Convert(c)
}
