package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// ErrNotPaletted is returned by Transparent for images without a palette.
var ErrNotPaletted = errors.New("sprite: image is not paletted")

// Load reads an image file. BMP and PNG are supported; 8-bit BMP files
// decode to *image.Paletted.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: %s: %w", path, err)
	}
	return img, nil
}

// Decode reads a BMP or PNG image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Transparent returns a copy of img whose palette entry index is fully
// transparent. Pixel data is shared with img.
func Transparent(img image.Image, index int) (*image.Paletted, error) {
	p, ok := img.(*image.Paletted)
	if !ok {
		return nil, ErrNotPaletted
	}
	if index < 0 || index >= len(p.Palette) {
		return nil, fmt.Errorf("sprite: palette index %d out of range [0, %d)", index, len(p.Palette))
	}

	pal := make(color.Palette, len(p.Palette))
	copy(pal, p.Palette)
	pal[index] = color.RGBA{}

	out := *p
	out.Palette = pal
	return &out, nil
}
