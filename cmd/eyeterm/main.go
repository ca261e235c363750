// Package main previews the eye animation in a terminal.
//
// Each eye is drawn with half-block characters in 24-bit color, side by
// side. Press Escape, q or Ctrl-C to quit.
//
// Usage:
//
//	eyeterm -config eyes.yaml -cols 48
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/flavioheleno/st7789/config"
	"github.com/flavioheleno/st7789/eye"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "YAML configuration file (empty for defaults)")
	cols       = flag.Int("cols", 40, "Terminal columns per eye")
	fps        = flag.Int("fps", 30, "Frames per second")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *cols <= 0 || *fps <= 0 {
		return errors.New("cols and fps must be positive")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	art, err := cfg.Assets.Load()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	anims, err := animate(cfg, art, screen, *cols)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pollEvents(screen, cancel)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := eye.Step(anims, now); err != nil {
				return err
			}
		}
	}
}

// animate lays the eyes out left to right, one column apart.
func animate(cfg *config.Config, art *config.Art, screen tcell.Screen, width int) ([]*eye.Animator, error) {
	var anims []*eye.Animator
	x := 0
	for i, e := range cfg.Eyes {
		c := newCells(screen, image.Pt(x, 0), e.Size(), width)
		anim, err := cfg.Animate(c, art)
		if err != nil {
			return nil, fmt.Errorf("eye %d: %w", i, err)
		}
		anims = append(anims, anim)
		w, _ := c.Size()
		x += w + 1
	}
	return anims, nil
}

// pollEvents calls quit once the user asks to leave.
func pollEvents(screen tcell.Screen, quit context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
