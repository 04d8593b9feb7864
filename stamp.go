package stamp

import (
	"errors"
	"fmt"
)

const bitsPerWord = 8

// ErrSizeMismatch is returned by NewChecked when the data length is not
// exactly the row-padded byte count implied by the dimensions.
var ErrSizeMismatch = errors.New("stamp: data length does not match dimensions")

// Stamp is a read-only view over a packed 1-bit image and its
// dimensions. Coordinate (0, 0) is the top-left corner.
//
// The backing data is a string rather than a byte slice: strings are
// immutable, so a Stamp can be shared freely across goroutines, and a
// stamp built from a string constant references the binary's read-only
// data section directly, with nothing copied into writable memory at
// any point. The zero Stamp is an empty 0x0 image.
type Stamp struct {
	width, height int
	data          string
}

// New constructs a stamp without validating data. It is intended for
// constants produced by stampgen, which are well formed by
// construction; construction itself does no work. For byte sequences of
// unverified provenance use NewChecked.
func New(width, height int, data string) Stamp {
	return Stamp{width: width, height: height, data: data}
}

// NewChecked constructs a stamp from data that did not come out of the
// packer, validating that its length is exactly the row-padded byte
// count for the given dimensions.
func NewChecked(width, height int, data string) (Stamp, error) {
	if width < 0 || height < 0 || len(data) != rowBytes(width)*height {
		return Stamp{}, fmt.Errorf("%w: %d bytes for %dx%d", ErrSizeMismatch, len(data), width, height)
	}
	return New(width, height, data), nil
}

// Width of the stamp in pixels.
func (s Stamp) Width() int {
	return s.width
}

// Height of the stamp in pixels.
func (s Stamp) Height() int {
	return s.height
}

// Size returns the width and height of the stamp.
func (s Stamp) Size() (width, height int) {
	return s.width, s.height
}

// PixelCount returns the number of pixels in the stamp.
func (s Stamp) PixelCount() int {
	return s.width * s.height
}

// Data returns the packed bytes backing the stamp. Each row starts on a
// byte boundary; within a byte the most significant bit is the leftmost
// pixel, and a set bit is a white pixel.
func (s Stamp) Data() string {
	return s.data
}

// InBounds reports whether (x, y) is a valid pixel coordinate.
func (s Stamp) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Get returns the color of the pixel at (x, y). Like indexing a
// fixed-size array, an out-of-bounds coordinate is a caller bug and
// panics; use GetChecked when the coordinate is not known to be valid.
func (s Stamp) Get(x, y int) Color {
	if !s.InBounds(x, y) {
		panic(fmt.Sprintf("stamp: Get(%d, %d) out of bounds of %dx%d stamp", x, y, s.width, s.height))
	}
	if s.data[y*rowBytes(s.width)+x/bitsPerWord]&(0x80>>(x%bitsPerWord)) != 0 {
		return White
	}
	return Black
}

// GetChecked returns the color of the pixel at (x, y), or ok == false
// if the coordinate is out of bounds.
func (s Stamp) GetChecked(x, y int) (c Color, ok bool) {
	if !s.InBounds(x, y) {
		return Black, false
	}
	return s.Get(x, y), true
}

func (s Stamp) String() string {
	return fmt.Sprintf("Stamp(%d,%d)", s.width, s.height)
}

// rowBytes returns the number of bytes each row occupies, rounding up
// to a whole byte so every row starts on a byte boundary.
func rowBytes(width int) int {
	return (width + bitsPerWord - 1) / bitsPerWord
}
