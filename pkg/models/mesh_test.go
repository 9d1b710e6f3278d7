package models

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

func triangleMesh() *Mesh {
	mesh := NewMesh("test")
	mesh.Vertices = []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(4, 0, 0),
		math3d.V3(0, 2, 1),
	}
	mesh.Faces = []Face{{V: [3]int{0, 1, 2}}}
	return mesh
}

func TestAccessorsPanicOutOfRange(t *testing.T) {
	mesh := triangleMesh()

	tests := []struct {
		name string
		fn   func()
	}{
		{"vertex negative", func() { mesh.Vertex(-1) }},
		{"vertex past end", func() { mesh.Vertex(3) }},
		{"face past end", func() { mesh.Face(1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected panic with error, got %v", r)
				}
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("panic value %v is not ErrIndexOutOfRange", err)
				}
			}()
			tc.fn()
		})
	}
}

func TestValidate(t *testing.T) {
	mesh := triangleMesh()
	if err := mesh.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	mesh.Faces = append(mesh.Faces, Face{V: [3]int{0, 1, 7}})
	err := mesh.Validate()
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IndexError, got %v", err)
	}
	if ie.Face != 1 || ie.Index != 7 || ie.Count != 3 {
		t.Errorf("IndexError = %+v", ie)
	}
}

func TestBounds(t *testing.T) {
	mesh := triangleMesh()
	mesh.CalculateBounds()

	if mesh.Center() != math3d.V3(2, 1, 0.5) {
		t.Errorf("Center() = %v", mesh.Center())
	}
	if mesh.Size() != math3d.V3(4, 2, 1) {
		t.Errorf("Size() = %v", mesh.Size())
	}
}

func TestFitUnitCube(t *testing.T) {
	mesh := triangleMesh()
	mesh.FitUnitCube()

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	if !near(mesh.BoundsMin.X, -1) || !near(mesh.BoundsMax.X, 1) {
		t.Errorf("largest axis should span [-1, 1], got [%v, %v]", mesh.BoundsMin.X, mesh.BoundsMax.X)
	}
	if !near(mesh.BoundsMin.Y, -0.5) || !near(mesh.BoundsMax.Y, 0.5) {
		t.Errorf("Y should keep aspect, got [%v, %v]", mesh.BoundsMin.Y, mesh.BoundsMax.Y)
	}
}
