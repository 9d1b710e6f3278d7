package render

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// Mode selects how faces are turned into pixels.
type Mode int

const (
	ModeWireframe Mode = iota // Triangle edges only
	ModeFlat                  // Scanline fill, flat gray, backface culled, no depth test
	ModeDepth                 // Z-buffered barycentric fill, random color per face
	ModeShaded                // Z-buffered barycentric fill, flat gray, backface culled
)

var modeNames = [...]string{
	ModeWireframe: "wireframe",
	ModeFlat:      "flat",
	ModeDepth:     "depth",
	ModeShaded:    "shaded",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode converts a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

// MeshSource is the read-only view of a mesh the renderer needs.
// models.Mesh implements it; keeping it here avoids importing models.
type MeshSource interface {
	FaceCount() int
	Face(i int) [3]int
	Vertex(i int) math3d.Vec3
}

// Stats summarizes one render pass.
type Stats struct {
	Faces  int // Faces visited
	Drawn  int // Faces handed to a line or triangle routine
	Culled int // Faces skipped by normal culling
	Pixels int // Pixels written by depth-tested fills
}

// Renderer draws every face of a mesh onto a canvas in file order.
type Renderer struct {
	Mode      Mode
	Light     math3d.Vec3 // Light direction for flat and shaded modes (normalized on use)
	Seed      int64       // Seed for per-face colors in depth mode
	WireColor Color       // Line color for wireframe mode

	zbuffer *ZBuffer
}

// NewRenderer creates a renderer with the default light, seed 1 and white
// wireframe lines.
func NewRenderer(mode Mode) *Renderer {
	return &Renderer{
		Mode:      mode,
		Light:     DefaultLight,
		Seed:      1,
		WireColor: ColorWhite,
	}
}

// ZBuffer returns the depth buffer of the last depth-tested pass, or nil.
func (r *Renderer) ZBuffer() *ZBuffer {
	return r.zbuffer
}

// Render runs one full pass over mesh. Depth-tested modes allocate a fresh
// z-buffer sized to c, cleared once before the first face.
func (r *Renderer) Render(mesh MeshSource, c *Canvas) Stats {
	var stats Stats
	light := r.Light.Normalize()

	var rng *rand.Rand
	r.zbuffer = nil
	switch r.Mode {
	case ModeDepth:
		rng = rand.New(rand.NewSource(r.Seed))
		fallthrough
	case ModeShaded:
		r.zbuffer = NewZBuffer(c.Width, c.Height)
	}

	for i := 0; i < mesh.FaceCount(); i++ {
		stats.Faces++
		face := mesh.Face(i)
		v0 := mesh.Vertex(face[0])
		v1 := mesh.Vertex(face[1])
		v2 := mesh.Vertex(face[2])

		switch r.Mode {
		case ModeWireframe:
			r.drawWireframe(c, [3]math3d.Vec3{v0, v1, v2})
			stats.Drawn++

		case ModeFlat:
			intensity := Intensity(v0, v1, v2, light)
			if !(intensity > 0) {
				stats.Culled++
				continue
			}
			c.FillTriangleScanline(
				ProjectTrunc(v0, c.Width, c.Height),
				ProjectTrunc(v1, c.Width, c.Height),
				ProjectTrunc(v2, c.Width, c.Height),
				ShadeColor(intensity),
			)
			stats.Drawn++

		case ModeDepth:
			col := randomColor(rng)
			stats.Pixels += c.FillTriangleDepth(r.zbuffer, projectRound3(v0, v1, v2, c), col)
			stats.Drawn++

		case ModeShaded:
			intensity := Intensity(v0, v1, v2, light)
			if !(intensity > 0) {
				stats.Culled++
				continue
			}
			stats.Pixels += c.FillTriangleDepth(r.zbuffer, projectRound3(v0, v1, v2, c), ShadeColor(intensity))
			stats.Drawn++
		}
	}

	return stats
}

// drawWireframe draws the three edges of a face.
func (r *Renderer) drawWireframe(c *Canvas, v [3]math3d.Vec3) {
	for j := range 3 {
		p0 := ProjectTrunc(v[j], c.Width, c.Height)
		p1 := ProjectTrunc(v[(j+1)%3], c.Width, c.Height)
		c.DrawLine(p0, p1, r.WireColor)
	}
}

func projectRound3(v0, v1, v2 math3d.Vec3, c *Canvas) [3]math3d.Vec3 {
	return [3]math3d.Vec3{
		ProjectRound(v0, c.Width, c.Height),
		ProjectRound(v1, c.Width, c.Height),
		ProjectRound(v2, c.Width, c.Height),
	}
}

// randomColor draws an opaque color, one uniform sample per channel.
func randomColor(rng *rand.Rand) color.RGBA {
	r := uint8(rng.Float64() * 255)
	g := uint8(rng.Float64() * 255)
	b := uint8(rng.Float64() * 255)
	return RGB(r, g, b)
}
