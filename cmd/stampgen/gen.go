package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"tomgalvin.uk/stamp/bitmap"
	"tomgalvin.uk/stamp/internal/gen"
)

type GenCmd struct {
	Root    string `help:"Project root that the image path is resolved against, so generation behaves the same on every machine." default:"."`
	Out     string `help:"Output file. Defaults to the image path with a .go suffix."`
	Package string `help:"Package name for the generated file. Defaults to the name of the output directory."`
	Name    string `help:"Variable name for the generated stamp. Defaults to the image file name, mangled to an exported identifier."`
	Image   string `arg:"" help:"Image path, relative to --root."`

	// resolved absolute input path
	path string
}

func (c *GenCmd) Validate(kctx *kong.Context) error {
	root, err := filepath.Abs(c.Root)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(root); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid root path %q: %w", c.Root, err)
	}
	c.Root = root

	c.path = c.Image
	if !filepath.IsAbs(c.path) {
		c.path = filepath.Join(c.Root, c.path)
	}
	if _, err := os.Stat(c.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("image %q does not exist", c.path)
		}
		return fmt.Errorf("cannot read image %q: %w", c.path, err)
	}

	if c.Out == "" {
		c.Out = c.path + ".go"
	} else if !filepath.IsAbs(c.Out) {
		c.Out = filepath.Join(c.Root, c.Out)
	}
	if c.Package == "" {
		c.Package = filepath.Base(filepath.Dir(c.Out))
	}
	if c.Name == "" {
		c.Name = gen.VarName(filepath.Base(c.Image))
	}

	return nil
}

func (c *GenCmd) Run() error {
	logger := slog.Default().With("image", c.path)

	imgFile, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.path, err)
	}
	defer imgFile.Close()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image %q: %w", c.path, err)
	}
	logger.Info("decoded", "format", imgType, "bounds", img.Bounds())

	packed, err := bitmap.FromImage(img)
	if err != nil {
		return fmt.Errorf("could not pack image %q: %w", c.path, err)
	}

	err = writeAtomic(c.Out, func(f *os.File) error {
		return gen.File(f, gen.Params{
			Package: c.Package,
			Name:    c.Name,
			Source:  filepath.ToSlash(relToRoot(c.Root, c.path)),
			Bitmap:  packed,
		})
	})
	if err != nil {
		return err
	}

	logger.Info("generated", "out", c.Out, "name", c.Name,
		"width", packed.Width(), "height", packed.Height(), "bytes", len(packed.Data()))
	return nil
}

// relToRoot keeps the recorded source path machine-independent when the
// image sits under the project root.
func relToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
