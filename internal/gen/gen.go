// Package gen emits generated Go source files holding packed image
// constants, for splicing into a build by the stampgen command.
package gen

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"tomgalvin.uk/stamp/bitmap"
)

// bytesPerLine keeps the emitted string literal readable; each packed
// byte becomes a 4-character \xNN escape.
const bytesPerLine = 16

// Params describes one generated file. Package and Name must be valid
// Go identifiers, with Name exported; VarName derives suitable defaults
// from an asset file name.
type Params struct {
	Package string
	Name    string
	// Source is the image path as given to stampgen, recorded in the
	// doc comment of the generated variable.
	Source string
	Bitmap *bitmap.Packed
}

// File writes a complete Go source file declaring Params.Name as a
// stamp backed by a string constant. The output is deterministic for a
// given Params.
func File(w io.Writer, p Params) error {
	if !isIdentifier(p.Package) {
		return fmt.Errorf("gen: package name %q is not a valid Go identifier", p.Package)
	}
	if !isIdentifier(p.Name) || !unicode.IsUpper([]rune(p.Name)[0]) {
		return fmt.Errorf("gen: variable name %q is not an exported Go identifier", p.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by stampgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", p.Package)
	fmt.Fprintf(&b, "import \"tomgalvin.uk/stamp\"\n\n")
	fmt.Fprintf(&b, "// %s is a %dx%d stamp generated from %q.\n",
		p.Name, p.Bitmap.Width(), p.Bitmap.Height(), p.Source)
	fmt.Fprintf(&b, "var %s = stamp.New(%d, %d, %s)\n\n",
		p.Name, p.Bitmap.Width(), p.Bitmap.Height(), dataName(p.Name))
	fmt.Fprintf(&b, "const %s = \"\" +\n", dataName(p.Name))

	data := p.Bitmap.Data()
	for i := 0; i < len(data); i += bytesPerLine {
		line := data[i:min(i+bytesPerLine, len(data))]
		b.WriteString("\t\"")
		for _, c := range line {
			fmt.Fprintf(&b, "\\x%02x", c)
		}
		if i+bytesPerLine < len(data) {
			b.WriteString("\" +\n")
		} else {
			b.WriteString("\"\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// VarName mangles an asset file name into an exported Go identifier:
// "star.png" becomes "Star", "small-arrow.png" becomes "SmallArrow".
// File names with no usable characters at all yield "Stamp".
func VarName(file string) string {
	if i := strings.LastIndexByte(file, '.'); i > 0 {
		file = file[:i]
	}

	var b strings.Builder
	upperNext := true
	for _, r := range file {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			upperNext = true
		case b.Len() == 0 && unicode.IsDigit(r):
			// identifiers cannot start with a digit
			b.WriteString("Stamp")
			b.WriteRune(r)
			upperNext = false
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Stamp"
	}
	return b.String()
}

// dataName returns the unexported constant name holding the packed
// bytes for an exported variable name.
func dataName(name string) string {
	r := []rune(name)
	return string(unicode.ToLower(r[0])) + string(r[1:]) + "Data"
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if !unicode.IsLetter(r) && r != '_' && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}
