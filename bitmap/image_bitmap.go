package bitmap

import (
	"fmt"
	"image"
	"image/color"

	"tomgalvin.uk/stamp"
)

// FromImage classifies every pixel of a decoded image as pure black or
// pure white and packs the result. Classification is exact: a pixel
// must be #000000 or #ffffff at full alpha, anything else fails with an
// *UnrecognizedColorError naming the pixel. There is deliberately no
// tolerance and no dithering here; the stampgen prep subcommand exists
// for images that still need converting.
func FromImage(img image.Image) (*Packed, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d image", ErrZeroDimension, width, height)
	}

	pixels := make([]stamp.Color, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := classify(img.At(x, y))
			if !ok {
				return nil, &UnrecognizedColorError{X: x - bounds.Min.X, Y: y - bounds.Min.Y, Value: img.At(x, y)}
			}
			pixels = append(pixels, c)
		}
	}

	return Pack(pixels, width, height)
}

func classify(c color.Color) (stamp.Color, bool) {
	r, g, b, a := c.RGBA()
	switch {
	case r == 0 && g == 0 && b == 0 && a == 0xffff:
		return stamp.Black, true
	case r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff:
		return stamp.White, true
	}
	return stamp.Black, false
}

var _ image.Image = (*Packed)(nil)

// ColorModel implements image.Image.
func (b *Packed) ColorModel() color.Model {
	return stamp.Model
}

// Bounds implements image.Image.
func (b *Packed) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image, so a freshly packed bitmap can be handed
// straight to an encoder for previewing. Out-of-bounds coordinates
// return Black, per image package convention.
func (b *Packed) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return stamp.Black
	}
	return b.Get(x, y)
}
