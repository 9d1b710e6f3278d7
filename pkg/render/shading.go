package render

import (
	"image/color"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// DefaultLight points into the screen. Faces wound counter-clockwise when
// seen from +Z receive full intensity.
var DefaultLight = math3d.V3(0, 0, -1)

// FaceNormal returns the unit normal (v2 - v0) × (v1 - v0). The operand order
// fixes which winding counts as front facing.
func FaceNormal(v0, v1, v2 math3d.Vec3) math3d.Vec3 {
	return v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
}

// Intensity returns the flat-shading factor of a face for a unit light
// direction. Values <= 0 mean the face is turned away and must be culled; NaN
// (from non-finite vertices) is culled as well.
func Intensity(v0, v1, v2, light math3d.Vec3) float64 {
	return FaceNormal(v0, v1, v2).Dot(light)
}

// ShadeColor converts an intensity into an opaque gray, truncating each
// channel. Intensities are clamped to [0, 1].
func ShadeColor(intensity float64) color.RGBA {
	intensity = min(max(intensity, 0), 1)
	g := uint8(255 * intensity)
	return RGB(g, g, g)
}
