// Package main animates one or more eyes on ST7789 displays.
//
// Each eye is a 240x240 panel showing an eyeball image with an iris image
// on top. The iris drifts toward a random point near the center, lingers
// for a random time, then picks another point.
//
// Hardware Setup:
//
// Connect each ST7789 display via SPI:
//
//	Display    Raspberry Pi
//	GND        GND
//	VCC        3.3V
//	SCL/CLK    GPIO11 (SPI0 CLK)
//	SDA/MOSI   GPIO10 (SPI0 MOSI)
//	CS         GPIO8 (SPI0 CE0), GPIO7 (SPI0 CE1) for a second eye
//	DC         GPIO25 (configurable)
//	RST        GPIO27 (configurable, optional)
//	BL         GPIO18 (configurable, optional)
//
// Usage:
//
//	eyes -config eyes.yaml
//	eyes -eyeball imgs/eye0_ball2.bmp -iris imgs/eye0_iris0.bmp
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/flavioheleno/st7789"
	"github.com/flavioheleno/st7789/config"
	"github.com/flavioheleno/st7789/eye"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	configPath = flag.String("config", "", "YAML configuration file (empty for defaults)")
	eyeball    = flag.String("eyeball", "", "Eyeball image, overrides the configuration")
	iris       = flag.String("iris", "", "Iris image, overrides the configuration")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *eyeball != "" {
		cfg.Assets.Eyeball = *eyeball
	}
	if *iris != "" {
		cfg.Assets.Iris = *iris
	}

	art, err := cfg.Assets.Load()
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph.io: %w", err)
	}

	var anims []*eye.Animator
	for i, e := range cfg.Eyes {
		dev, bus, err := openPanel(e, cfg.Hz)
		if err != nil {
			return fmt.Errorf("eye %d: %w", i, err)
		}
		defer bus.Close()
		defer dev.Halt()
		log.Printf("Eye %d: %v on %q", i, dev, e.SPI)

		anim, err := cfg.Animate(dev, art)
		if err != nil {
			return fmt.Errorf("eye %d: %w", i, err)
		}
		anims = append(anims, anim)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Display Running!")
	if err := eye.Run(ctx, anims, nil); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openPanel opens the SPI bus and pins of e and initializes its display.
func openPanel(e config.Eye, hz int64) (*st7789.Dev, io.Closer, error) {
	bus, err := spireg.Open(e.SPI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open SPI bus: %w", err)
	}
	if hz > 0 {
		if err := bus.LimitSpeed(physic.Frequency(hz) * physic.Hertz); err != nil {
			bus.Close()
			return nil, nil, fmt.Errorf("failed to limit SPI speed: %w", err)
		}
	}

	dc := gpioreg.ByName(e.DC)
	if dc == nil {
		bus.Close()
		return nil, nil, fmt.Errorf("GPIO pin %s not found", e.DC)
	}
	rst, err := optionalPin(e.RST)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	bl, err := optionalPin(e.Backlight)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}

	opts := &st7789.Opts{
		W:         e.Width,
		H:         e.Height,
		Rotation:  st7789.Rotation(e.Rotation),
		RowStart:  e.RowStart,
		ColStart:  e.ColStart,
		Invert:    e.Invert,
		BGR:       e.BGR,
		RST:       rst,
		Backlight: bl,
	}

	dev, err := st7789.NewSPI(bus, dc, opts)
	if err != nil {
		bus.Close()
		return nil, nil, fmt.Errorf("failed to create display: %w", err)
	}
	return dev, bus, nil
}

// optionalPin looks up a pin by name; an empty name means no pin.
func optionalPin(name string) (gpio.PinIO, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %s not found", name)
	}
	return p, nil
}
