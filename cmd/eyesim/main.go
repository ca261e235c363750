// Package main runs the eye animation in a desktop window.
//
// Every eye of the configuration becomes a panel of the window, side by
// side, so images and animation parameters can be tuned without hardware.
//
// Usage:
//
//	eyesim -config eyes.yaml -scale 2
package main

import (
	"flag"
	"log"
	"time"

	"github.com/flavioheleno/st7789/config"
	"github.com/flavioheleno/st7789/eye"
	"github.com/hajimehoshi/ebiten/v2"
)

const gap = 8 // pixels between panels

var (
	configPath = flag.String("config", "", "YAML configuration file (empty for defaults)")
	scale      = flag.Int("scale", 2, "Window scale factor")
)

type game struct {
	panels []*panel
	images []*ebiten.Image
	anims  []*eye.Animator
	w, h   int
}

func (g *game) Update() error {
	return eye.Step(g.anims, time.Now())
}

func (g *game) Draw(screen *ebiten.Image) {
	x := 0
	for i, p := range g.panels {
		if p.dirty {
			g.images[i].WritePixels(p.frame.Pix)
			p.dirty = false
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), 0)
		screen.DrawImage(g.images[i], op)
		x += p.frame.Rect.Dx() + gap
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	art, err := cfg.Assets.Load()
	if err != nil {
		log.Fatal(err)
	}

	g := &game{}
	for i, e := range cfg.Eyes {
		p := newPanel(e.Width, e.Height)
		anim, err := cfg.Animate(p, art)
		if err != nil {
			log.Fatalf("eye %d: %v", i, err)
		}
		g.panels = append(g.panels, p)
		g.images = append(g.images, ebiten.NewImage(e.Width, e.Height))
		g.anims = append(g.anims, anim)

		if i > 0 {
			g.w += gap
		}
		g.w += e.Width
		g.h = max(g.h, e.Height)
	}

	ebiten.SetWindowSize(g.w*(*scale), g.h*(*scale))
	ebiten.SetWindowTitle("eyesim")
	log.Println("Display Running!")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
