package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// maxLineSize bounds a single line of a geometry file.
const maxLineSize = 1 << 20

var (
	errShortVertex = errors.New("vertex needs 3 coordinates")
	errNonFinite   = errors.New("vertex coordinate is not a finite number")
	errFaceArity   = errors.New("face must have exactly 3 vertices")
)

// Load reads a mesh, choosing the loader by file extension:
// .glb and .gltf go through the glTF loader, everything else is parsed as
// Wavefront-style text.
func Load(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return LoadOBJ(path)
	}
}

// LoadOBJ reads a Wavefront-style geometry file from disk.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	return ParseOBJ(path, f)
}

// ParseOBJ parses `v x y z` and `f a[/..] b[/..] c[/..]` records from r.
// Face indices are 1-based in the input and stored 0-based. Every other
// record is ignored. The first malformed record aborts the parse with a
// *ParseError; a face pointing at a missing vertex yields an *IndexError.
func ParseOBJ(name string, r io.Reader) (*Mesh, error) {
	mesh := NewMesh(filepath.Base(name))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		perr := func(err error) error {
			return &ParseError{Path: name, Line: lineNo, Text: strings.TrimSpace(line), Err: err}
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, perr(errShortVertex)
			}
			var xyz [3]float64
			for i := range 3 {
				val, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, perr(err)
				}
				if math.IsNaN(val) || math.IsInf(val, 0) {
					return nil, perr(errNonFinite)
				}
				xyz[i] = val
			}
			mesh.Vertices = append(mesh.Vertices, math3d.V3(xyz[0], xyz[1], xyz[2]))

		case "f":
			groups := fields[1:]
			if len(groups) != 3 {
				return nil, perr(fmt.Errorf("%w, got %d", errFaceArity, len(groups)))
			}
			var face Face
			for i, group := range groups {
				idx, _, _ := strings.Cut(group, "/")
				n, err := strconv.Atoi(idx)
				if err != nil {
					return nil, perr(err)
				}
				face.V[i] = n - 1
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}
