package render

import (
	"math"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// Vertices are expected in normalized coordinates: [-1, 1] on X and Y maps
// to [0, width] and [0, height]. There is no camera; Z is kept as a depth
// proxy where greater is closer.

// maxScreenCoord bounds integer screen coordinates. Anything beyond it is far
// off every canvas, and keeping it small leaves the line and scanline error
// terms well inside int range.
const maxScreenCoord = 1 << 24

// ProjectTrunc maps v to an integer pixel by truncating toward zero.
// Wireframe and scanline paths use it. Coordinates are clamped to
// ±maxScreenCoord and NaN maps to 0.
func ProjectTrunc(v math3d.Vec3, width, height int) math3d.Point {
	return math3d.Pt(
		screenInt((v.X+1)*float64(width)/2),
		screenInt((v.Y+1)*float64(height)/2),
	)
}

// screenInt truncates f toward zero after clamping it in float space, so the
// int conversion is always defined.
func screenInt(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(math.Max(-maxScreenCoord, math.Min(f, maxScreenCoord)))
}

// ProjectRound maps v to the nearest pixel (floor of x + 0.5) and passes Z
// through. Depth-tested paths use it.
func ProjectRound(v math3d.Vec3, width, height int) math3d.Vec3 {
	return math3d.V3(
		math.Floor((v.X+1)*float64(width)/2+0.5),
		math.Floor((v.Y+1)*float64(height)/2+0.5),
		v.Z,
	)
}
