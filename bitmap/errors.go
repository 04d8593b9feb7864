package bitmap

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrZeroDimension is returned when an image or grid has a zero or
	// negative width or height.
	ErrZeroDimension = errors.New("bitmap: zero dimension")
	// ErrSizeMismatch is returned when a pixel grid does not have
	// exactly width*height cells.
	ErrSizeMismatch = errors.New("bitmap: pixel count does not match dimensions")
)

// UnrecognizedColorError reports a pixel that is neither pure black nor
// pure white. X and Y are relative to the image's top-left corner.
// Value holds the offending color when packing directly from a decoded
// image, and is nil when packing an already-classified grid.
type UnrecognizedColorError struct {
	X, Y  int
	Value color.Color
}

func (e *UnrecognizedColorError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("bitmap: pixel at (%d, %d) is neither pure black nor pure white", e.X, e.Y)
	}
	r, g, b, a := e.Value.RGBA()
	return fmt.Sprintf("bitmap: pixel at (%d, %d) is neither pure black nor pure white (rgba64 %04x %04x %04x %04x)",
		e.X, e.Y, r, g, b, a)
}
