// Package render implements the software rasterizer: a bounds-checked pixel
// canvas, a Bresenham line drawer, a scanline triangle filler, a z-buffered
// barycentric triangle filler and the per-mode render pass that feeds them.
package render

import (
	"image"
	"image/color"
)

// Canvas is a 2D grid of RGBA pixels. Y grows upward in the renderer's
// convention; FlipVertical converts to image row order before encoding.
type Canvas struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data, index x + y*Width
}

// NewCanvas creates a transparent black canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// CanvasFromImage copies img into a new canvas, row for row.
func CanvasFromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := NewCanvas(b.Dx(), b.Dy())
	for y := range c.Height {
		for x := range c.Width {
			c.Pixels[y*c.Width+x] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
	}
	return c
}

// InBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// SetPixel sets a pixel at (x, y) to the given color.
// Writes outside the canvas are discarded.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if !c.InBounds(x, y) {
		return
	}
	c.Pixels[y*c.Width+x] = col
}

// Pixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if !c.InBounds(x, y) {
		return color.RGBA{}
	}
	return c.Pixels[y*c.Width+x]
}

// FlipVertical mirrors the canvas rows in place.
func (c *Canvas) FlipVertical() {
	for top, bot := 0, c.Height-1; top < bot; top, bot = top+1, bot-1 {
		a := c.Pixels[top*c.Width : (top+1)*c.Width]
		b := c.Pixels[bot*c.Width : (bot+1)*c.Width]
		for x := range a {
			a[x], b[x] = b[x], a[x]
		}
	}
}

// ToImage converts the canvas to a standard Go image.RGBA, row 0 first.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, c.Pixels[y*c.Width+x])
		}
	}
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
