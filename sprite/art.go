package sprite

import (
	"image"
	"image/color"
)

// Eyeball palette entries.
var eyeballPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, // background
	color.RGBA{0xC8, 0xA0, 0xA0, 0xFF}, // rim
	color.RGBA{0xF5, 0xF0, 0xEB, 0xFF}, // sclera
}

// Iris palette entries. Index 0 is the background meant to be made
// transparent with Transparent.
var irisPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, // background
	color.RGBA{0x10, 0x10, 0x10, 0xFF}, // pupil
	color.RGBA{0x1E, 0x5A, 0x8C, 0xFF}, // outer iris
	color.RGBA{0x46, 0x96, 0xC8, 0xFF}, // inner iris
	color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, // highlight
}

// Eyeball draws a sclera filling size, for use when no eyeball asset is
// configured.
func Eyeball(size image.Point) *image.Paletted {
	img := image.NewPaletted(image.Rectangle{Max: size}, eyeballPalette)
	rx, ry := float64(size.X)/2, float64(size.Y)/2
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			d := dist2(x, y, rx, ry, rx, ry)
			switch {
			case d <= 0.85*0.85:
				img.SetColorIndex(x, y, 2)
			case d <= 1:
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

// Iris draws a diameter x diameter iris with a pupil and a highlight on
// palette index 0, for use when no iris asset is configured.
func Iris(diameter int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, diameter, diameter), irisPalette)
	r := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			d := dist2(x, y, r, r, r, r)
			switch {
			case dist2(x, y, r*0.65, r*0.65, r, r) <= 0.12*0.12:
				img.SetColorIndex(x, y, 4)
			case d <= 0.35*0.35:
				img.SetColorIndex(x, y, 1)
			case d <= 0.7*0.7:
				img.SetColorIndex(x, y, 3)
			case d <= 1:
				img.SetColorIndex(x, y, 2)
			}
		}
	}
	return img
}

// dist2 returns the squared distance of the center of pixel (x, y) to
// (cx, cy), in units of the ellipse radii (rx, ry).
func dist2(x, y int, cx, cy, rx, ry float64) float64 {
	dx := (float64(x) + 0.5 - cx) / rx
	dy := (float64(y) + 0.5 - cy) / ry
	return dx*dx + dy*dy
}
