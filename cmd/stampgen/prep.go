package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/makeworld-the-better-one/dither/v2"
)

type PrepCmd struct {
	Threshold float64 `help:"Luminance cutoff in [0,1]; pixels at or above it become white." default:"0.5"`
	Dither    bool    `help:"Distribute quantization error with Floyd-Steinberg dithering instead of a hard cutoff."`
	Gamma     float64 `help:"Gamma correction applied to luminance before quantizing." default:"1"`
	Out       string  `help:"Output PNG path. Defaults to the image path with a .bw.png suffix."`
	Image     string  `arg:"" type:"existingfile" help:"Source image."`
}

var twoColor = []color.Color{color.Black, color.White}

func (c *PrepCmd) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("invalid threshold %v, should be within [0,1]", c.Threshold)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("invalid gamma %v, should be positive", c.Gamma)
	}
	if c.Out == "" {
		c.Out = strings.TrimSuffix(c.Image, filepath.Ext(c.Image)) + ".bw.png"
	}
	return nil
}

func (c *PrepCmd) Run() error {
	logger := slog.Default().With("image", c.Image)

	imgFile, err := os.Open(c.Image)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.Image, err)
	}
	defer imgFile.Close()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image %q: %w", c.Image, err)
	}
	logger.Info("decoded", "format", imgType, "bounds", img.Bounds())

	gray := c.grayscale(img)

	var out *image.Paletted
	if c.Dither {
		ditherer := dither.NewDitherer(twoColor)
		ditherer.Matrix = dither.FloydSteinberg
		ditherer.Serpentine = true
		out = ditherer.DitherPaletted(gray)
	} else {
		out = c.threshold(gray)
	}

	err = writeAtomic(c.Out, func(f *os.File) error {
		// a two-color palette encodes as a 1-bit PNG
		return png.Encode(f, out)
	})
	if err != nil {
		return fmt.Errorf("could not save %q: %w", c.Out, err)
	}

	logger.Info("prepared", "out", c.Out, "dither", c.Dither)
	return nil
}

// grayscale converts the image to 16-bit grayscale, applying the
// configured gamma correction pixel by pixel.
func (c *PrepCmd) grayscale(img image.Image) *image.Gray16 {
	bounds := img.Bounds()
	gray := image.NewGray16(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			if c.Gamma != 1 {
				v := math.Pow(float64(g.Y)/float64(0xffff), c.Gamma)
				g.Y = uint16(v * float64(0xffff))
			}
			gray.SetGray16(x, y, g)
		}
	}
	return gray
}

// threshold quantizes each gray pixel against the configured cutoff.
func (c *PrepCmd) threshold(gray *image.Gray16) *image.Paletted {
	bounds := gray.Bounds()
	out := image.NewPaletted(bounds, twoColor)
	cutoff := uint32(c.Threshold * float64(0xffff))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if uint32(gray.Gray16At(x, y).Y) >= cutoff {
				out.SetColorIndex(x, y, 1) // white
			} else {
				out.SetColorIndex(x, y, 0) // black
			}
		}
	}
	return out
}
