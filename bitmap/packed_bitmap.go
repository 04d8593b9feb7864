// Package bitmap packs grids of two-color pixels into the byte layout
// read back by package stamp: rows packed independently, 8 pixels per
// byte, most significant bit first, with the unused low bits of each
// row's last byte left zero.
//
// Packing runs at build time, inside stampgen or a go:generate program;
// nothing in this package is needed by the deployed binary.
package bitmap

import (
	"fmt"

	"tomgalvin.uk/stamp"
)

const bitsPerWord = 8

// Packed is a bitmap packed 8 pixels per byte. It is only ever created
// by Pack or FromImage, which guarantee the layout invariants:
// len(data) == stride*height, stride == ceil(width/8), and padding bits
// are zero.
type Packed struct {
	data                  []byte
	width, height, stride int
}

// Pack packs a row-major grid of pixels into bytes. The grid must have
// exactly width*height cells, every one of them stamp.Black or
// stamp.White; anything else fails the whole packing rather than
// guessing, since a misclassified pixel in an embedded asset has no
// runtime recourse.
func Pack(pixels []stamp.Color, width, height int) (*Packed, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrZeroDimension, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrSizeMismatch, len(pixels), width, height)
	}

	stride := (width + bitsPerWord - 1) / bitsPerWord
	data := make([]byte, stride*height)
	for y := range height {
		for x := range width {
			switch pixels[y*width+x] {
			case stamp.Black:
				// bit stays clear
			case stamp.White:
				data[y*stride+x/bitsPerWord] |= 0x80 >> (x % bitsPerWord)
			default:
				return nil, &UnrecognizedColorError{X: x, Y: y}
			}
		}
	}

	return &Packed{data: data, width: width, height: height, stride: stride}, nil
}

// Width of the bitmap in pixels.
func (b *Packed) Width() int {
	return b.width
}

// Height of the bitmap in pixels.
func (b *Packed) Height() int {
	return b.height
}

// Stride is the number of bytes per row.
func (b *Packed) Stride() int {
	return b.stride
}

// Data returns the packed bytes. Callers must not modify them.
func (b *Packed) Data() []byte {
	return b.data
}

// Get returns the color of the pixel at (x, y), indexing exactly the
// way stamp.Stamp does. It panics when the coordinate is out of bounds.
func (b *Packed) Get(x, y int) stamp.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("bitmap: Get(%d, %d) out of bounds of %s", x, y, b))
	}
	if b.data[y*b.stride+x/bitsPerWord]&(0x80>>(x%bitsPerWord)) != 0 {
		return stamp.White
	}
	return stamp.Black
}

// Stamp returns a runtime view over a copy of the packed bytes. It is a
// build-time convenience for tests and tools; deployed programs use the
// string constant emitted by stampgen instead.
func (b *Packed) Stamp() stamp.Stamp {
	return stamp.New(b.width, b.height, string(b.data))
}

func (b *Packed) String() string {
	return fmt.Sprintf("Packed(%d,%d)", b.width, b.height)
}
