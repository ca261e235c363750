// Package image16bit provides a 16-bit RGB565 image format for the ST7789 display controller.
//
// The ST7789 accepts pixels in 16-bit color mode (COLMOD 0x55) as RGB565, sent
// most significant byte first. Each pixel takes two bytes in the framebuffer:
//
//	Bits:  15..11  10..5  4..0
//	       red     green  blue
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0       1
//	Values: 0xF800  0x07E0   (red, green)
//	Bytes:  F8 00   07 E0
//
// This package provides:
//
// - RGB565: A color type holding a packed 5/6/5 value
// - RGB565Model: A color model for converting standard Go colors to RGB565
// - BigEndian: An image.Image implementation matching the controller RAM layout
//
// Example usage:
//
//	// Create a 240x240 image
//	img := image16bit.NewBigEndian(image.Rect(0, 0, 240, 240))
//
//	// Set a pixel to pure red
//	img.SetRGB565(10, 20, image16bit.RGB565{V: 0xF800})
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image16bit
