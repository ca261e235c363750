// Package st7789 controls a ST7789 TFT LCD display via SPI.
//
// The ST7789 is a 16-bit color controller with 240x320 pixels of internal RAM.
// Common panels are 240x240 (1.3" and 1.54") and 240x320 (2.0").
//
// See the cmd directory for how to use this package.
package st7789

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/st7789/image16bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Controller commands.
const (
	cmdSWRESET = 0x01
	cmdSLPIN   = 0x10
	cmdSLPOUT  = 0x11
	cmdNORON   = 0x13
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdMADCTL  = 0x36
	cmdCOLMOD  = 0x3A
)

// MADCTL bits.
const (
	madctlMY  = 0x80
	madctlMX  = 0x40
	madctlMV  = 0x20
	madctlBGR = 0x08
)

// ramW and ramH are the dimensions of the controller frame memory.
const (
	ramW = 240
	ramH = 320
)

// defaultMaxTx is used when the SPI connection doesn't report a limit.
// It matches the default spidev buffer size on Linux.
const defaultMaxTx = 4096

var errHalted = errors.New("st7789: halted")

// Rotation is the orientation of the panel, clockwise.
type Rotation int

const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// madctl returns the memory access control value for r.
func (r Rotation) madctl() (byte, bool) {
	switch r {
	case Rotation0:
		return 0x00, true
	case Rotation90:
		return madctlMX | madctlMV, true
	case Rotation180:
		return madctlMX | madctlMY, true
	case Rotation270:
		return madctlMY | madctlMV, true
	}
	return 0, false
}

// swapsAxes reports whether r exchanges rows and columns.
func (r Rotation) swapsAxes() bool {
	return r == Rotation90 || r == Rotation270
}

// Opts is the configuration for the ST7789 display.
type Opts struct {
	// Display dimensions in pixels, after rotation
	W int // Width (default: 240, ≤240 or ≤320 when rotated 90/270)
	H int // Height (default: 240, ≤320 or ≤240 when rotated 90/270)

	// Orientation
	Rotation Rotation // One of Rotation0, Rotation90, Rotation180, Rotation270

	// Offsets of the visible area inside the 240x320 RAM, in native
	// (unrotated) panel orientation. 240x240 panels usually need RowStart 80
	// when mounted upside down.
	RowStart int
	ColStart int

	// Panel quirks
	Invert bool // Send INVON; most IPS panels need it for correct colors
	BGR    bool // Panel wired blue-green-red

	// Optional pins
	RST       gpio.PinIO  // Reset pin (optional, nil if not used)
	Backlight gpio.PinOut // Backlight enable pin (optional, nil if not used)
}

// Dev is the device handle for the ST7789 display.
type Dev struct {
	// Communication
	c     conn.Conn   // SPI connection
	dc    gpio.PinOut // Data/Command pin
	rst   gpio.PinIO  // Reset pin (optional)
	bl    gpio.PinOut // Backlight pin (optional)
	maxTx int         // Largest single transfer

	// Display geometry
	rect     image.Rectangle
	rowStart int // Row offset in rotated coordinates
	colStart int // Column offset in rotated coordinates

	// Pixel buffers
	buffer []byte                // Last frame sent to the controller
	next   *image16bit.BigEndian // Frame being drawn, allocated on first Draw

	// State
	halted bool
}

// NewSPI creates a new ST7789 device connected via SPI.
//
// The SPI port is configured for 40MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults (240x240 inverted IPS panel).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 240, H: 240, Invert: true}
	}

	if _, ok := opts.Rotation.madctl(); !ok {
		return nil, fmt.Errorf("st7789: invalid rotation %d", opts.Rotation)
	}
	maxW, maxH := ramW, ramH
	rowStart, colStart := opts.RowStart, opts.ColStart
	if opts.Rotation.swapsAxes() {
		maxW, maxH = ramH, ramW
		rowStart, colStart = colStart, rowStart
	}
	if opts.W <= 0 || opts.W > maxW {
		return nil, fmt.Errorf("st7789: width must be between 1 and %d", maxW)
	}
	if opts.H <= 0 || opts.H > maxH {
		return nil, fmt.Errorf("st7789: height must be between 1 and %d", maxH)
	}
	if rowStart < 0 || colStart < 0 {
		return nil, errors.New("st7789: offsets must not be negative")
	}
	if opts.W+colStart > maxW || opts.H+rowStart > maxH {
		return nil, errors.New("st7789: visible area exceeds controller RAM")
	}
	if dc == nil {
		return nil, errors.New("st7789: dc pin is required")
	}

	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7789: %w", err)
	}

	d := &Dev{
		c:        c,
		dc:       dc,
		rst:      opts.RST,
		bl:       opts.Backlight,
		maxTx:    defaultMaxTx,
		rect:     image.Rect(0, 0, opts.W, opts.H),
		rowStart: rowStart,
		colStart: colStart,
		buffer:   make([]byte, opts.W*opts.H*2),
	}
	if l, ok := c.(conn.Limits); ok {
		if n := l.MaxTxSize(); n > 0 {
			d.maxTx = n
		}
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to pull RST high: %w", err)
		}
		time.Sleep(120 * time.Millisecond)
	}

	madctl, _ := opts.Rotation.madctl()
	if opts.BGR {
		madctl |= madctlBGR
	}
	inv := byte(cmdINVOFF)
	if opts.Invert {
		inv = cmdINVON
	}

	// Each step is a command, its parameters and the settle time after it.
	seq := []struct {
		cmd   byte
		data  []byte
		delay time.Duration
	}{
		{cmdSWRESET, nil, 150 * time.Millisecond},
		{cmdSLPOUT, nil, 120 * time.Millisecond},
		{cmdCOLMOD, []byte{0x55}, 10 * time.Millisecond}, // 16-bit color
		{cmdMADCTL, []byte{madctl}, 0},
		{inv, nil, 0},
		{cmdNORON, nil, 10 * time.Millisecond},
	}
	for _, s := range seq {
		if err := d.command(s.cmd, s.data...); err != nil {
			return err
		}
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}

	if err := d.clearRAM(); err != nil {
		return err
	}

	if err := d.command(cmdDISPON); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)

	if d.bl != nil {
		if err := d.bl.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to enable backlight: %w", err)
		}
	}
	return nil
}

// clearRAM clears all visible pixels.
func (d *Dev) clearRAM() error {
	return d.writeFullFrame(make([]byte, len(d.buffer)))
}

// command sends a command byte followed by its parameters.
func (d *Dev) command(cmd byte, data ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return d.sendData(data)
}

// sendData sends data bytes, split to fit the connection transfer limit.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := min(len(data), d.maxTx)
		if err := d.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// writeRect writes pixel data to a rectangular region of the display.
func (d *Dev) writeRect(x, y, width, height int, pixels []byte) error {
	x0, x1 := x+d.colStart, x+width-1+d.colStart
	y0, y1 := y+d.rowStart, y+height-1+d.rowStart

	if err := d.command(cmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.command(cmdRASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	if err := d.command(cmdRAMWR); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image16bit.RGB565Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in big-endian RGB565 format.
// The data must be exactly d.rect.Dx() * d.rect.Dy() * 2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("st7789: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	d.remember(pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
//
// Only the bounding box of the pixels that changed since the previous frame
// is sent to the controller.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: full-size frame already in controller format
	if srcImg, ok := src.(*image16bit.BigEndian); ok {
		if dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
			if err := d.writeFullFrame(srcImg.Pix); err != nil {
				return err
			}
			d.remember(srcImg.Pix)
			return nil
		}
	}

	if d.next == nil {
		d.next = image16bit.NewBigEndian(d.rect)
		copy(d.next.Pix, d.buffer)
	}

	draw.Draw(d.next, dst, src, sp, draw.Src)

	minCol, maxCol, minRow, maxRow := d.calculateDiff()
	if minCol > maxCol {
		return nil
	}

	changed := d.extractRegion(minCol, maxCol, minRow, maxRow)
	if err := d.writeRect(minCol, minRow, maxCol-minCol+1, maxRow-minRow+1, changed); err != nil {
		return err
	}

	copy(d.buffer, d.next.Pix)
	return nil
}

// remember records pixels as the content of the controller RAM.
func (d *Dev) remember(pixels []byte) {
	copy(d.buffer, pixels)
	if d.next != nil {
		copy(d.next.Pix, pixels)
	}
}

// calculateDiff compares the sent and next buffers to find the minimal
// changed region. Returns (minCol, maxCol, minRow, maxRow) with
// minCol > maxCol if nothing changed.
func (d *Dev) calculateDiff() (minCol, maxCol, minRow, maxRow int) {
	width := d.rect.Dx()
	height := d.rect.Dy()
	stride := width * 2

	minRow = height
	maxRow = -1
	minCol = width
	maxCol = -1

	for y := 0; y < height; y++ {
		rowStart := y * stride
		rowEnd := rowStart + stride

		if bytes.Equal(d.buffer[rowStart:rowEnd], d.next.Pix[rowStart:rowEnd]) {
			continue
		}
		if y < minRow {
			minRow = y
		}
		maxRow = y

		for x := 0; x < width; x++ {
			i := rowStart + x*2
			if d.buffer[i] != d.next.Pix[i] || d.buffer[i+1] != d.next.Pix[i+1] {
				minCol = min(minCol, x)
				maxCol = max(maxCol, x)
			}
		}
	}
	return
}

// extractRegion extracts the pixel data for a rectangular region.
func (d *Dev) extractRegion(minCol, maxCol, minRow, maxRow int) []byte {
	stride := d.rect.Dx() * 2
	byteWidth := (maxCol - minCol + 1) * 2

	result := make([]byte, 0, byteWidth*(maxRow-minRow+1))
	for y := minRow; y <= maxRow; y++ {
		start := y*stride + minCol*2
		result = append(result, d.next.Pix[start:start+byteWidth]...)
	}
	return result
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), pixels)
}

// SetBacklight switches the backlight pin.
func (d *Dev) SetBacklight(on bool) error {
	if d.halted {
		return errHalted
	}
	if d.bl == nil {
		return errors.New("st7789: no backlight pin")
	}
	return d.bl.Out(gpio.Level(on))
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	if invert {
		return d.command(cmdINVON)
	}
	return d.command(cmdINVOFF)
}

// Halt turns the display and its backlight off and puts the controller to
// sleep. After calling Halt, the display will not respond to further
// commands until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	if d.bl != nil {
		if err := d.bl.Out(gpio.Low); err != nil {
			return err
		}
	}
	if err := d.command(cmdDISPOFF); err != nil {
		return err
	}
	return d.command(cmdSLPIN)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
