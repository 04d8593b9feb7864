// Package stamp provides zero-cost access to 1-bit raster images
// embedded in a program's binary.
//
// A Stamp holds an image's width, height, and its pixels packed 8 to a
// byte, and exposes bit-level random access plus row-major iteration,
// all without allocating or decoding anything at runtime. That makes it
// suitable for memory-constrained targets where image assets have to
// live in read-only program memory instead of being parsed at startup.
//
// Stamps are produced ahead of the main build by the stampgen command,
// which decodes a black and white image, packs it, and writes a Go
// source file holding the result as a string constant:
//
//	//go:generate go run tomgalvin.uk/stamp/cmd/stampgen gen assets/star.png --out icons/star.go --package icons
//
// The generated file is then used like any other value:
//
//	for p := range icons.Star.Pixels() {
//		if p.Color == stamp.White {
//			display.SetPixel(p.X, p.Y)
//		}
//	}
//
// go generate does not track file contents, so rerun it whenever an
// asset changes; the image is a build input even though the compiler
// never sees it.
//
// Only two pixel values exist, Black and White. Images containing any
// other color are rejected during generation rather than approximated,
// so a bad asset fails the build instead of corrupting the binary. The
// stampgen prep subcommand converts arbitrary images into acceptable
// two-color ones when that is what you want.
package stamp
