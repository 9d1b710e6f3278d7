package render

import (
	"image/color"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// DrawLine draws a one-pixel-wide line from p0 to p1 using an integer-error
// Bresenham walk along the dominant axis. The loop always runs from the
// endpoint with the smaller dominant coordinate, so DrawLine(a, b) and
// DrawLine(b, a) set the same pixels. Steps outside the canvas on the
// dominant axis are skipped arithmetically, so the work is bounded by the
// canvas size however far away the endpoints are.
func (c *Canvas) DrawLine(p0, p1 math3d.Point, col color.RGBA) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y

	steep := false
	if abs(x0-x1) < abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	limit := c.Width
	if steep {
		limit = c.Height
	}
	start, end := max(x0, 0), min(x1, limit-1)
	if start > end {
		return
	}

	dx := x1 - x0
	derror2 := abs(y1-y0) * 2
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	// State after k = start-x0 steps: the error stays in (-dx, dx], which
	// fixes the number of minor-axis steps taken so far.
	error2, y := 0, y0
	if k := start - x0; k > 0 {
		acc := derror2 * k
		steps := ceilDiv(acc-dx, 2*dx)
		y += ystep * steps
		error2 = acc - 2*dx*steps
	}

	for x := start; x <= end; x++ {
		if steep {
			c.SetPixel(y, x, col)
		} else {
			c.SetPixel(x, y, col)
		}
		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}
	}
}

// ceilDiv returns ⌈a / b⌉ for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
