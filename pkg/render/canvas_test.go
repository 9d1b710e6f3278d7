package render

import (
	"image"
	"image/color"
	"testing"
)

func TestCanvasSetPixelBounds(t *testing.T) {
	c := NewCanvas(4, 3)

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 3, 2, true},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x == width", 4, 0, false},
		{"y == height", 0, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.InBounds(tc.x, tc.y); got != tc.in {
				t.Fatalf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.in)
			}
			c.SetPixel(tc.x, tc.y, ColorRed)
			got := c.Pixel(tc.x, tc.y)
			if tc.in && got != ColorRed {
				t.Errorf("Pixel(%d, %d) = %v, want red", tc.x, tc.y, got)
			}
			if !tc.in && got != (color.RGBA{}) {
				t.Errorf("Pixel(%d, %d) = %v, want zero value", tc.x, tc.y, got)
			}
		})
	}

	if n := countNonBlack(c); n != 2 {
		t.Errorf("expected 2 pixels set, got %d", n)
	}
}

func TestFlipVertical(t *testing.T) {
	for _, h := range []int{1, 2, 3, 4} {
		c := NewCanvas(2, h)
		for y := range h {
			c.SetPixel(0, y, RGB(uint8(y), 0, 0))
		}
		c.FlipVertical()
		for y := range h {
			want := uint8(h - 1 - y)
			if got := c.Pixel(0, y).R; got != want {
				t.Errorf("height %d: row %d holds %d, want %d", h, y, got, want)
			}
		}
	}
}

func TestToImageRoundTrip(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetPixel(0, 0, ColorRed)
	c.SetPixel(2, 1, ColorGreen)

	img := c.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != ColorRed {
		t.Errorf("(0,0) = %v, want red", got)
	}
	if got := img.RGBAAt(2, 1); got != ColorGreen {
		t.Errorf("(2,1) = %v, want green", got)
	}

	back := CanvasFromImage(img)
	for i := range c.Pixels {
		if back.Pixels[i] != c.Pixels[i] {
			t.Fatalf("pixel %d = %v, want %v", i, back.Pixels[i], c.Pixels[i])
		}
	}
}

var (
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
	ColorBlue  = RGB(0, 0, 255)
)

// countNonBlack counts pixels with any color channel set.
func countNonBlack(c *Canvas) int {
	n := 0
	for _, p := range c.Pixels {
		if p.R != 0 || p.G != 0 || p.B != 0 {
			n++
		}
	}
	return n
}
