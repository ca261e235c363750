// Package image16bit provides a 16-bit RGB565 image format optimized for the ST7789 display.
//
// Pixels are stored as big-endian 16-bit words, two bytes per pixel.
package image16bit

import (
	"image"
	"image/color"
)

// RGB565 represents a packed 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 struct {
	V uint16
}

// RGBA converts the RGB565 color to standard RGBA.
// Each channel is widened by replicating its high bits into the low bits,
// so 0x1F red becomes 0xFFFF.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c.V>>11) & 0x1F
	g6 := uint32(c.V>>5) & 0x3F
	b5 := uint32(c.V) & 0x1F
	r = r5<<11 | r5<<6 | r5<<1 | r5>>4
	g = g6<<10 | g6<<4 | g6>>2
	b = b5<<11 | b5<<6 | b5<<1 | b5>>4
	return r, g, b, 0xFFFF
}

// Pack builds an RGB565 color from 8-bit channels.
func Pack(r, g, b uint8) RGB565 {
	return RGB565{V: uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)}
}

// toRGB565 converts any color.Color to RGB565.
// Alpha is ignored; the panel has no transparency.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// BigEndian is a 16-bit image where each pixel is a big-endian RGB565 word.
type BigEndian struct {
	Pix    []byte          // Pixel data (2 bytes per pixel, high byte first)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewBigEndian creates a new BigEndian image with the specified bounds.
func NewBigEndian(r image.Rectangle) *BigEndian {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &BigEndian{Rect: r}
	}
	stride := w * 2
	return &BigEndian{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *BigEndian) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *BigEndian) Bounds() image.Rectangle {
	return p.Rect
}

// Opaque reports whether the image is fully opaque. It always is.
func (p *BigEndian) Opaque() bool {
	return true
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *BigEndian) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *BigEndian) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB565{}
	}
	i := p.PixOffset(x, y)
	return RGB565{V: uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1])}
}

// Set sets the color of the pixel at (x, y).
func (p *BigEndian) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, RGB565Model.Convert(c).(RGB565))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *BigEndian) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = byte(c.V >> 8)
	p.Pix[i+1] = byte(c.V)
}

// PixOffset returns the index of the high byte of the pixel at (x, y).
func (p *BigEndian) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
