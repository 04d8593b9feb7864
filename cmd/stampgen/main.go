// Command stampgen converts black and white images into Go source
// files holding packed 1-bit constants, ready to embed via go:generate.
package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var cli struct {
	Gen  GenCmd  `cmd:"" help:"Generate a Go source file embedding a packed 1-bit image."`
	Prep PrepCmd `cmd:"" help:"Convert an image to the pure black and white PNG that gen accepts."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("stampgen"),
		kong.Description("Embeds 1-bit raster images into Go binaries as packed byte constants. "+
			"Source images are build inputs that go generate does not track; rerun stampgen whenever they change."),
	)
	if err := kctx.Run(); err != nil {
		slog.Error("stampgen failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}

// writeAtomic writes dest via a temporary file in the same directory so
// a failure partway through never leaves a truncated output behind.
func writeAtomic(dest string, write func(f *os.File) error) (err error) {
	outFile, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest))
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", outFile.Name(), defErr)
		}
		if !canRename {
			os.Remove(outFile.Name())
			return
		}
		if defErr := os.Rename(outFile.Name(), dest); defErr != nil && err == nil {
			err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
		}
	}()

	if err = write(outFile); err != nil {
		return err
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", dest, err)
	}

	canRename = true
	return nil
}
