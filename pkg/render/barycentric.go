package render

import (
	"image/color"
	"math"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// degenerateEpsilon is the smallest |cross.Z| (twice the screen-space area)
// for which a triangle still yields barycentric weights.
const degenerateEpsilon = 1e-2

// Barycentric returns the weights of p with respect to triangle (a, b, c)
// using only the X and Y components. The weights sum to 1 and are all
// non-negative inside the triangle. For degenerate triangles the sentinel
// (-1, 1, 1) is returned so every pixel is rejected.
func Barycentric(a, b, c, p math3d.Vec3) math3d.Vec3 {
	sx := math3d.V3(c.X-a.X, b.X-a.X, a.X-p.X)
	sy := math3d.V3(c.Y-a.Y, b.Y-a.Y, a.Y-p.Y)
	u := sx.Cross(sy)
	if math.Abs(u.Z) > degenerateEpsilon {
		return math3d.V3(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z)
	}
	return math3d.V3(-1, 1, 1)
}

// FillTriangleDepth fills a triangle given in screen space (X, Y in pixels,
// Z as depth) by testing every pixel of its clamped bounding box. A covered
// pixel is written only when its interpolated depth is strictly greater than
// the value already in zb; ties keep the earlier fragment. It returns the
// number of pixels written.
func (c *Canvas) FillTriangleDepth(zb *ZBuffer, pts [3]math3d.Vec3, col color.RGBA) int {
	bboxMin := math3d.V3(math.MaxFloat64, math.MaxFloat64, 0)
	bboxMax := math3d.V3(-math.MaxFloat64, -math.MaxFloat64, 0)
	for _, p := range pts {
		bboxMin = bboxMin.Min(p)
		bboxMax = bboxMax.Max(p)
	}

	if math.IsNaN(bboxMin.X + bboxMin.Y + bboxMax.X + bboxMax.Y) {
		return 0
	}

	minX := clampPixel(bboxMin.X, c.Width)
	minY := clampPixel(bboxMin.Y, c.Height)
	maxX := clampPixel(bboxMax.X, c.Width)
	maxY := clampPixel(bboxMax.Y, c.Height)
	if bboxMax.X < 0 || bboxMax.Y < 0 ||
		bboxMin.X > float64(c.Width-1) || bboxMin.Y > float64(c.Height-1) {
		return 0
	}

	written := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			bc := Barycentric(pts[0], pts[1], pts[2], math3d.V3(float64(x), float64(y), 0))
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}

			z := pts[0].Z*bc.X + pts[1].Z*bc.Y + pts[2].Z*bc.Z
			if z <= zb.At(x, y) {
				continue
			}

			zb.Set(x, y, z)
			c.SetPixel(x, y, col)
			written++
		}
	}
	return written
}

// clampPixel floors v and clamps it to [0, size-1]. Clamping happens in
// float space so far-off vertices never overflow the int conversion.
func clampPixel(v float64, size int) int {
	return int(math.Floor(math.Min(math.Max(v, 0), float64(size-1))))
}
