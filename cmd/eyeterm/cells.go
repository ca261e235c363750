package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// halfBlock paints the top half of a cell with the foreground color and
// the bottom half with the background, giving two square pixels per cell.
const halfBlock = '▀'

// cells stands in for one display, downscaled into a block of terminal
// cells.
type cells struct {
	screen tcell.Screen
	origin image.Point // Top-left cell
	frame  *image.RGBA // Full resolution frame
	small  *image.RGBA // One pixel per half cell
}

func newCells(screen tcell.Screen, origin image.Point, panel image.Point, cols int) *cells {
	rows := (cols*panel.Y/panel.X + 1) / 2
	return &cells{
		screen: screen,
		origin: origin,
		frame:  image.NewRGBA(image.Rectangle{Max: panel}),
		small:  image.NewRGBA(image.Rect(0, 0, cols, rows*2)),
	}
}

// Size returns the number of terminal columns and rows covered.
func (c *cells) Size() (cols, rows int) {
	b := c.small.Bounds()
	return b.Dx(), b.Dy() / 2
}

func (c *cells) String() string {
	cols, rows := c.Size()
	return fmt.Sprintf("eyeterm.cells{%dx%d}", cols, rows)
}

func (c *cells) Halt() error { return nil }

func (c *cells) ColorModel() color.Model { return color.RGBAModel }

func (c *cells) Bounds() image.Rectangle { return c.frame.Rect }

func (c *cells) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(c.frame, dst.Intersect(c.frame.Rect), src, sp, draw.Src)
	draw.ApproxBiLinear.Scale(c.small, c.small.Bounds(), c.frame, c.frame.Rect, draw.Src, nil)

	cols, rows := c.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := c.small.RGBAAt(x, 2*y)
			bottom := c.small.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			c.screen.SetContent(c.origin.X+x, c.origin.Y+y, halfBlock, nil, style)
		}
	}
	c.screen.Show()
	return nil
}
