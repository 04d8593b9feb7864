package stamp

import (
	"image"
	"image/color"
)

var _ image.Image = Stamp{}

// ColorModel implements image.Image.
func (s Stamp) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (s Stamp) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements image.Image. Unlike Get it follows the image package
// convention of returning the zero color outside the bounds.
func (s Stamp) At(x, y int) color.Color {
	c, _ := s.GetChecked(x, y)
	return c
}
