// Package st7789 controls a ST7789 TFT LCD display via SPI.
//
// The ST7789 is a 16-bit color LCD controller with a 240×320 frame memory.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color (65536 colors)
// - Support for various resolutions (typically 240×240 or 240×320)
// - Rotation in steps of 90° through the MADCTL register
// - Display inversion (required by most IPS panels)
// - Visible area offsets for panels smaller than the frame memory
//
// # Hardware Connection
//
// Connect the ST7789 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//	BL          → Optional: GPIO for backlight control
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//		"image/color"
//		"image/draw"
//
//		"github.com/flavioheleno/st7789"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO25")
//
//		dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//			W:      240,
//			H:      240,
//			Invert: true,
//		})
//		defer dev.Halt()
//
//		img := image.NewRGBA(dev.Bounds())
//		draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0xFF, 0xFF}), image.Point{}, draw.Src)
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Reset and Backlight Pins (Optional)
//
//	dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//		W:         240,
//		H:         240,
//		RST:       gpioreg.ByName("GPIO27"),
//		Backlight: gpioreg.ByName("GPIO18"),
//	})
//
// With RST the driver pulls the pin low for 10ms and waits 120ms after
// releasing it; without it, the software reset command is relied upon. The
// backlight is switched on once the panel is initialized and off by Halt.
//
// # Rotation and Offsets
//
// 240×240 panels only show part of the 240×320 memory. RowStart and
// ColStart give the offset of the visible area in the native orientation;
// the driver swaps them for 90° and 270° rotations:
//
//	Opts{W: 240, H: 240, Rotation: st7789.Rotation90, RowStart: 80}
//
// # Drawing Modes
//
// ## Full-Frame Update
//
// Write raw big-endian RGB565 data directly:
//
//	pixels := make([]byte, 240*240*2)
//	dev.Write(pixels)
//
// Drawing a full-size *image16bit.BigEndian takes the same path.
//
// ## Differential Updates
//
// Draw with any other image computes the bounding box of the pixels that
// changed since the previous frame and only transfers that window. An eye
// whose iris moves a few pixels sends a small rectangle instead of 115KB.
//
// # Transfer Size
//
// Data is split into chunks no larger than the connection's MaxTxSize, or
// 4096 bytes when the connection doesn't report a limit.
//
// # Datasheet
//
// https://www.rhydolabz.com/documents/33/ST7789.pdf
package st7789
