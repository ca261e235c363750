package config

import (
	"fmt"
	"image"

	"github.com/flavioheleno/st7789/eye"
	"github.com/flavioheleno/st7789/sprite"
	"periph.io/x/conn/v3/display"
)

// Art holds the decoded sprites shared by every eye.
type Art struct {
	Eyeball image.Image     // nil draws a built-in eyeball sized to each panel
	Iris    *image.Paletted // Transparent entry already applied
}

// Load reads the configured images, or draws the built-in iris when none
// is configured.
func (a Assets) Load() (*Art, error) {
	art := &Art{}
	if a.Eyeball != "" {
		img, err := sprite.Load(a.Eyeball)
		if err != nil {
			return nil, fmt.Errorf("config: eyeball: %w", err)
		}
		art.Eyeball = img
	}

	var iris image.Image
	if a.Iris != "" {
		img, err := sprite.Load(a.Iris)
		if err != nil {
			return nil, fmt.Errorf("config: iris: %w", err)
		}
		iris = img
	} else {
		iris = sprite.Iris(a.IrisSize)
	}

	p, err := sprite.Transparent(iris, a.Transparent)
	if err != nil {
		return nil, fmt.Errorf("config: iris: %w", err)
	}
	art.Iris = p
	return art, nil
}

// Animate stacks the eyeball and the centered iris on a new scene for dst
// and returns the animator moving the iris.
func (c *Config) Animate(dst display.Drawer, art *Art) (*eye.Animator, error) {
	size := dst.Bounds().Size()
	cfg := c.Animation.EyeConfig(size, art.Iris.Bounds().Size())

	eyeball := art.Eyeball
	if eyeball == nil {
		eyeball = sprite.Eyeball(size)
	}

	scene := sprite.NewScene(dst)
	scene.Add(eyeball, image.Point{})
	id := scene.Add(art.Iris, image.Pt(int(cfg.Center.X), int(cfg.Center.Y)))
	return eye.New(scene, id, cfg, nil)
}
