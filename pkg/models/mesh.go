// Package models provides mesh loading and representation for tinyrender.
package models

import (
	"github.com/taigrr/tinyrender/pkg/math3d"
)

// Mesh is a triangle mesh: vertex positions plus faces indexing into them.
// It is built once by a loader and only read while rendering.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle given as three 0-based indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Vertex returns vertex i. An out-of-range index is a programming error and
// panics with an *IndexError.
func (m *Mesh) Vertex(i int) math3d.Vec3 {
	if i < 0 || i >= len(m.Vertices) {
		panic(&IndexError{Kind: "vertex", Face: -1, Index: i, Count: len(m.Vertices)})
	}
	return m.Vertices[i]
}

// Face returns the vertex indices of face i, panicking with an *IndexError
// when i is out of range.
func (m *Mesh) Face(i int) [3]int {
	if i < 0 || i >= len(m.Faces) {
		panic(&IndexError{Kind: "face", Face: -1, Index: i, Count: len(m.Faces)})
	}
	return m.Faces[i].V
}

// Validate checks that every face references an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= n {
				return &IndexError{Kind: "vertex", Face: fi, Index: idx, Count: n}
			}
		}
	}
	return nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// FitUnitCube centers the mesh on the origin and scales it uniformly so its
// largest dimension spans [-1, 1]. Flat or empty meshes are only centered.
func (m *Mesh) FitUnitCube() {
	m.CalculateBounds()
	center := m.Center()
	size := m.Size()
	maxDim := max(size.X, size.Y, size.Z)

	transform := math3d.Translate(center.Scale(-1))
	if maxDim > 0 {
		transform = math3d.ScaleUniform(2 / maxDim).Mul(transform)
	}
	m.Transform(transform)
}
