package render

import "image/color"

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// ColorWhite is the default wireframe color and full-intensity shade.
var ColorWhite = RGB(255, 255, 255)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}
