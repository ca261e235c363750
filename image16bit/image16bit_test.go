package image16bit

import (
	"image"
	"image/color"
	"testing"
)

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name    string
		v       uint16
		r, g, b uint32
	}{
		{"black", 0x0000, 0x0000, 0x0000, 0x0000},
		{"white", 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", 0xF800, 0xFFFF, 0x0000, 0x0000},
		{"green", 0x07E0, 0x0000, 0xFFFF, 0x0000},
		{"blue", 0x001F, 0x0000, 0x0000, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := RGB565{V: tt.v}.RGBA()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGB565{0x%04X}.RGBA() = (0x%X, 0x%X, 0x%X), want (0x%X, 0x%X, 0x%X)",
					tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
			if a != 0xFFFF {
				t.Errorf("alpha = 0x%X, want 0xFFFF", a)
			}
		})
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 0xFF, 0xFF, 0xFF, 0xFFFF},
		{"red", 0xFF, 0, 0, 0xF800},
		{"green", 0, 0xFF, 0, 0x07E0},
		{"blue", 0, 0, 0xFF, 0x001F},
		{"low bits dropped", 0x07, 0x03, 0x07, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.r, tt.g, tt.b); got.V != tt.want {
				t.Errorf("Pack(%d, %d, %d) = 0x%04X, want 0x%04X", tt.r, tt.g, tt.b, got.V, tt.want)
			}
		})
	}
}

func TestRGB565Model(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want uint16
	}{
		{"RGB565 passthrough", RGB565{V: 0x1234}, 0x1234},
		{"white", color.White, 0xFFFF},
		{"black", color.Black, 0x0000},
		{"RGBA red", color.RGBA{R: 0xFF, A: 0xFF}, 0xF800},
		{"gray", color.Gray{Y: 0x80}, 0x8410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGB565Model.Convert(tt.in).(RGB565)
			if got.V != tt.want {
				t.Errorf("Convert(%v) = 0x%04X, want 0x%04X", tt.in, got.V, tt.want)
			}
		})
	}
}

func TestNewBigEndian(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 240, 240))
	if img.Stride != 480 {
		t.Errorf("Stride = %d, want 480", img.Stride)
	}
	if len(img.Pix) != 240*240*2 {
		t.Errorf("len(Pix) = %d, want %d", len(img.Pix), 240*240*2)
	}
}

func TestNewBigEndianEmpty(t *testing.T) {
	img := NewBigEndian(image.Rectangle{Min: image.Pt(4, 4), Max: image.Pt(2, 2)})
	if len(img.Pix) != 0 {
		t.Errorf("len(Pix) = %d, want 0", len(img.Pix))
	}
}

func TestBigEndianSetGet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 3, 2))

	values := [][3]uint16{
		{0x0000, 0xF800, 0x07E0},
		{0x001F, 0xFFFF, 0xABCD},
	}

	for y, row := range values {
		for x, v := range row {
			img.SetRGB565(x, y, RGB565{V: v})
		}
	}

	for y, row := range values {
		for x, want := range row {
			if got := img.RGB565At(x, y); got.V != want {
				t.Errorf("RGB565At(%d, %d) = 0x%04X, want 0x%04X", x, y, got.V, want)
			}
		}
	}
}

func TestBigEndianByteLayout(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 1))
	img.SetRGB565(0, 0, RGB565{V: 0xF800})
	img.SetRGB565(1, 0, RGB565{V: 0x07E0})

	want := []byte{0xF8, 0x00, 0x07, 0xE0}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestBigEndianAt(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 2))
	img.SetRGB565(1, 1, RGB565{V: 0x07E0})

	c := img.At(1, 1)
	v, ok := c.(RGB565)
	if !ok {
		t.Fatalf("At(1, 1) returned %T, want RGB565", c)
	}
	if v.V != 0x07E0 {
		t.Errorf("At(1, 1).V = 0x%04X, want 0x07E0", v.V)
	}
}

func TestBigEndianSet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 1))

	img.Set(0, 0, RGB565{V: 0x001F})
	if got := img.RGB565At(0, 0); got.V != 0x001F {
		t.Errorf("After Set(0, 0, RGB565{0x001F}), RGB565At(0, 0) = 0x%04X", got.V)
	}

	img.Set(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	if got := img.RGB565At(1, 0); got.V != 0xFFFF {
		t.Errorf("After Set(1, 0, white), RGB565At(1, 0) = 0x%04X, want 0xFFFF", got.V)
	}
}

func TestBigEndianColorModelAndBounds(t *testing.T) {
	rect := image.Rect(10, 20, 14, 24)
	img := NewBigEndian(rect)
	if img.ColorModel() != RGB565Model {
		t.Error("ColorModel() did not return RGB565Model")
	}
	if img.Bounds() != rect {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), rect)
	}
	if !img.Opaque() {
		t.Error("Opaque() = false, want true")
	}
}

func TestBigEndianOutOfBounds(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 4))

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		img.SetRGB565(p.X, p.Y, RGB565{V: 0xFFFF})
		if got := img.RGB565At(p.X, p.Y); got.V != 0 {
			t.Errorf("RGB565At(%d, %d) = 0x%04X, want 0 (out of bounds)", p.X, p.Y, got.V)
		}
	}
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = 0x%02X after out-of-bounds writes, want 0", i, b)
		}
	}
}

func TestBigEndianOffsetRect(t *testing.T) {
	img := NewBigEndian(image.Rect(100, 50, 104, 52))
	img.SetRGB565(100, 50, RGB565{V: 0xBEEF})

	if got := img.RGB565At(100, 50); got.V != 0xBEEF {
		t.Errorf("RGB565At(100, 50) = 0x%04X, want 0xBEEF", got.V)
	}
	if img.Pix[0] != 0xBE || img.Pix[1] != 0xEF {
		t.Errorf("Pix[0:2] = %02X %02X, want BE EF", img.Pix[0], img.Pix[1])
	}
}

func TestBigEndianPixOffset(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 8, 2))

	tests := []struct {
		x, y   int
		offset int
	}{
		{0, 0, 0},
		{1, 0, 2},
		{7, 0, 14},
		{0, 1, 16},
		{3, 1, 22},
	}

	for _, tt := range tests {
		if got := img.PixOffset(tt.x, tt.y); got != tt.offset {
			t.Errorf("PixOffset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.offset)
		}
	}
}
