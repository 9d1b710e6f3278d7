package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/image/draw"
)

// CellSetter is the part of an ultraviolet screen or buffer the canvas draws
// into.
type CellSetter interface {
	SetCell(x, y int, c *uv.Cell)
}

// Draw converts the canvas to terminal cells. Each terminal row covers two
// canvas rows: ▀ with fg = upper pixel and bg = lower pixel. The canvas is
// read in image row order, so flip it first if it is still Y-up.
func (c *Canvas) Draw(scr CellSetter, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < c.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(c.Pixel(col, topY)),
					Bg: rgbaToColor(c.Pixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// WritePreview scales img to cols terminal columns, keeping its aspect ratio
// with two pixel rows per terminal row, and writes it to w as styled
// half-block text.
func WritePreview(w io.Writer, img image.Image, cols int) error {
	b := img.Bounds()
	if cols <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("preview: nothing to draw (%d columns, %dx%d image)", cols, b.Dx(), b.Dy())
	}

	pixRows := max(cols*b.Dy()/b.Dx(), 1)
	pixRows += pixRows % 2

	scaled := image.NewRGBA(image.Rect(0, 0, cols, pixRows))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)

	buf := uv.NewBuffer(cols, pixRows/2)
	CanvasFromImage(scaled).Draw(buf, buf.Bounds())
	if _, err := io.WriteString(w, buf.Render()+"\n"); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
