// Package sprite composes positioned images into frames for a periph.io
// display.Drawer.
//
// A Scene holds layers drawn bottom to top: typically a static eyeball
// background and a movable iris whose palette has a transparent entry so
// the background shows around it.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"periph.io/x/conn/v3/display"
)

// ErrUnknownSprite is returned when an ID was not issued by the Scene.
var ErrUnknownSprite = errors.New("sprite: unknown sprite")

// ID identifies a sprite within the Scene that returned it.
type ID int

type layer struct {
	img image.Image
	at  image.Point
}

// Scene composites sprites into a frame and presents it on a display.
//
// A Scene is not safe for concurrent use and must be the only writer to its
// display.
type Scene struct {
	dst    display.Drawer
	frame  *image.RGBA
	layers []layer
}

// NewScene returns an empty scene presenting to dst.
func NewScene(dst display.Drawer) *Scene {
	return &Scene{
		dst:   dst,
		frame: image.NewRGBA(dst.Bounds()),
	}
}

// Add places img above every sprite added before it, with its top-left
// corner at at.
func (s *Scene) Add(img image.Image, at image.Point) ID {
	s.layers = append(s.layers, layer{img: img, at: at})
	return ID(len(s.layers) - 1)
}

// Position moves the top-left corner of sprite id to (x, y).
// Sprites may be partially or fully off screen.
func (s *Scene) Position(id ID, x, y int) error {
	l, err := s.layer(id)
	if err != nil {
		return err
	}
	l.at = image.Pt(x, y)
	return nil
}

// Location returns the top-left corner of sprite id.
func (s *Scene) Location(id ID) (image.Point, error) {
	l, err := s.layer(id)
	if err != nil {
		return image.Point{}, err
	}
	return l.at, nil
}

func (s *Scene) layer(id ID) (*layer, error) {
	if id < 0 || int(id) >= len(s.layers) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSprite, id)
	}
	return &s.layers[id], nil
}

// Present redraws every sprite over a black frame and sends the frame to
// the display.
func (s *Scene) Present() error {
	b := s.frame.Bounds()
	draw.Draw(s.frame, b, image.Black, image.Point{}, draw.Src)
	for _, l := range s.layers {
		src := l.img.Bounds()
		r := image.Rectangle{Min: l.at, Max: l.at.Add(src.Size())}
		draw.Draw(s.frame, r, l.img, src.Min, draw.Over)
	}
	return s.dst.Draw(b, s.frame, b.Min)
}

// Frame returns the last composited frame.
func (s *Scene) Frame() image.Image {
	return s.frame
}

// Bounds returns the bounds of the underlying display.
func (s *Scene) Bounds() image.Rectangle {
	return s.dst.Bounds()
}

// Halt halts the underlying display.
func (s *Scene) Halt() error {
	return s.dst.Halt()
}

// String returns a string representation of the scene.
func (s *Scene) String() string {
	return fmt.Sprintf("sprite.Scene{%s, %d sprites}", s.dst, len(s.layers))
}
