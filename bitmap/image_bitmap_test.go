package bitmap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"tomgalvin.uk/stamp"
)

// imageOf builds an RGBA image from rows of 'X' (white) and '.' (black),
// anchored at the rectangle's Min corner.
func imageOf(min image.Point, rows ...string) *image.RGBA {
	width, height := len(rows[0]), len(rows)
	img := image.NewRGBA(image.Rectangle{Min: min, Max: min.Add(image.Pt(width, height))})
	for y, row := range rows {
		for x, c := range row {
			if c == 'X' {
				img.SetRGBA(min.X+x, min.Y+y, color.RGBA{0xff, 0xff, 0xff, 0xff})
			} else {
				img.SetRGBA(min.X+x, min.Y+y, color.RGBA{0x00, 0x00, 0x00, 0xff})
			}
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []byte
	}{
		{"1x1 white", []string{"X"}, []byte{0x80}},
		{"3x3 checkerboard", []string{
			"X.X",
			".X.",
			"X.X",
		}, []byte{0xa0, 0x40, 0xa0}},
		{"9x2 white", []string{
			"XXXXXXXXX",
			"XXXXXXXXX",
		}, []byte{0xff, 0x80, 0xff, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := FromImage(imageOf(image.Point{}, tt.rows...))
			if err != nil {
				t.Fatalf("FromImage() error = %v", err)
			}
			if !bytes.Equal(packed.Data(), tt.want) {
				t.Errorf("FromImage() data = %x, want %x", packed.Data(), tt.want)
			}
		})
	}
}

func TestFromImagePaletted(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	img.SetColorIndex(0, 0, 1)
	img.SetColorIndex(1, 1, 1)

	packed, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if !bytes.Equal(packed.Data(), []byte{0x80, 0x40}) {
		t.Errorf("FromImage() data = %x, want 8040", packed.Data())
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// coordinates in results and errors are relative to Min
	img := imageOf(image.Pt(10, 20),
		"X.",
		".X",
	)

	packed, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := packed.Get(0, 0); got != stamp.White {
		t.Errorf("Get(0, 0) = %v, want White", got)
	}

	img.SetRGBA(11, 21, color.RGBA{0x80, 0x80, 0x80, 0xff})
	_, err = FromImage(img)
	var colErr *UnrecognizedColorError
	if !errors.As(err, &colErr) {
		t.Fatalf("FromImage() error = %v, want *UnrecognizedColorError", err)
	}
	if colErr.X != 1 || colErr.Y != 1 {
		t.Errorf("error at (%d, %d), want (1, 1)", colErr.X, colErr.Y)
	}
}

func TestFromImageRejectsImpureColors(t *testing.T) {
	tests := []struct {
		name  string
		pixel color.Color
	}{
		{"gray", color.RGBA{0x80, 0x80, 0x80, 0xff}},
		{"almost white", color.RGBA{0xff, 0xff, 0xfe, 0xff}},
		{"almost black", color.RGBA{0x01, 0x00, 0x00, 0xff}},
		{"translucent white", color.NRGBA{0xff, 0xff, 0xff, 0x80}},
		{"transparent", color.RGBA{0x00, 0x00, 0x00, 0x00}},
		{"red", color.RGBA{0xff, 0x00, 0x00, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := imageOf(image.Point{}, "XX", "XX")
			img.Set(1, 0, tt.pixel)

			_, err := FromImage(img)
			var colErr *UnrecognizedColorError
			if !errors.As(err, &colErr) {
				t.Fatalf("FromImage() error = %v, want *UnrecognizedColorError", err)
			}
			if colErr.X != 1 || colErr.Y != 0 {
				t.Errorf("error at (%d, %d), want (1, 0)", colErr.X, colErr.Y)
			}
			if colErr.Value == nil {
				t.Error("error is missing the offending color")
			}
		})
	}
}

func TestFromImageZeroSize(t *testing.T) {
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrZeroDimension) {
		t.Errorf("FromImage() error = %v, want ErrZeroDimension", err)
	}
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 3, 0))); !errors.Is(err, ErrZeroDimension) {
		t.Errorf("FromImage() error = %v, want ErrZeroDimension", err)
	}
}

func TestPackedAsImage(t *testing.T) {
	packed, err := FromImage(imageOf(image.Point{}, "X.", ".X"))
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	var img image.Image = packed
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	if got := img.At(0, 0); got != stamp.White {
		t.Errorf("At(0, 0) = %v, want White", got)
	}
	if got := img.At(5, 5); got != stamp.Black {
		t.Errorf("At(5, 5) = %v, want Black", got)
	}
	if img.ColorModel().Convert(color.White) != stamp.White {
		t.Error("ColorModel() does not map white to White")
	}
}
