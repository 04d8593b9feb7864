package stamp

import "iter"

// Pixel is a single pixel of a stamp: its coordinate and color.
type Pixel struct {
	X, Y  int
	Color Color
}

// Pixels returns a sequence of every pixel in the stamp, in row-major
// order: y = 0 first, x ascending within each row. The sequence is
// lazy, allocates nothing, and yields exactly Width*Height pixels; each
// range over it restarts from (0, 0).
func (s Stamp) Pixels() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for y := range s.height {
			for x := range s.width {
				if !yield(Pixel{X: x, Y: y, Color: s.Get(x, y)}) {
					return
				}
			}
		}
	}
}
