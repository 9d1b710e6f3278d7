package render

import (
	"image/color"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// FillTriangleScanline fills a triangle one row at a time by interpolating
// its long edge (lowest to highest vertex) against whichever short edge spans
// the current row. Rows run from the lowest vertex up to, but not including,
// the highest one. There is no depth test: the last triangle drawn over a
// pixel wins. Triangles with all three vertices on one row draw nothing.
// Rows and spans are clipped to the canvas before they are walked.
func (c *Canvas) FillTriangleScanline(t0, t1, t2 math3d.Point, col color.RGBA) {
	if t0.Y == t1.Y && t0.Y == t2.Y {
		return
	}

	// Sort by ascending Y
	if t0.Y > t1.Y {
		t0, t1 = t1, t0
	}
	if t0.Y > t2.Y {
		t0, t2 = t2, t0
	}
	if t1.Y > t2.Y {
		t1, t2 = t2, t1
	}

	totalHeight := t2.Y - t0.Y
	lowerHeight := t1.Y - t0.Y
	long := t2.Sub(t0)

	// Only rows that land on the canvas are visited.
	first := max(0, -t0.Y)
	last := min(totalHeight, c.Height-t0.Y)
	for i := first; i < last; i++ {
		secondHalf := i > lowerHeight || t1.Y == t0.Y

		var beta float64
		var start, edge math3d.Point
		if secondHalf {
			start, edge = t1, t2.Sub(t1)
			beta = float64(i-lowerHeight) / float64(t2.Y-t1.Y)
		} else {
			start, edge = t0, t1.Sub(t0)
			beta = float64(i) / float64(lowerHeight)
		}
		alpha := float64(i) / float64(totalHeight)

		ax := t0.X + int(float64(long.X)*alpha)
		bx := start.X + int(float64(edge.X)*beta)
		if ax > bx {
			ax, bx = bx, ax
		}

		y := t0.Y + i
		for x := max(ax, 0); x <= min(bx, c.Width-1); x++ {
			c.SetPixel(x, y, col)
		}
	}
}
