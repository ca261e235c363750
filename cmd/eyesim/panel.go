package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// panel stands in for one display inside the simulator window.
type panel struct {
	frame *image.RGBA
	dirty bool
}

func newPanel(w, h int) *panel {
	return &panel{frame: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (p *panel) String() string {
	return fmt.Sprintf("eyesim.panel{%dx%d}", p.frame.Rect.Dx(), p.frame.Rect.Dy())
}

func (p *panel) Halt() error { return nil }

func (p *panel) ColorModel() color.Model { return color.RGBAModel }

func (p *panel) Bounds() image.Rectangle { return p.frame.Rect }

func (p *panel) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(p.frame, dst.Intersect(p.frame.Rect), src, sp, draw.Src)
	p.dirty = true
	return nil
}
