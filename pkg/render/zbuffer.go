package render

import "math"

// EmptyDepth marks a z-buffer cell no surface has reached yet.
const EmptyDepth = -math.MaxFloat64

// ZBuffer holds one depth value per canvas pixel, row-major, at index
// x + y*Width. Greater values are closer to the viewer.
type ZBuffer struct {
	Width  int
	Height int
	Depth  []float64
}

// NewZBuffer allocates a z-buffer with every cell set to EmptyDepth.
func NewZBuffer(width, height int) *ZBuffer {
	zb := &ZBuffer{
		Width:  width,
		Height: height,
		Depth:  make([]float64, width*height),
	}
	zb.Clear()
	return zb
}

// Clear resets every cell to EmptyDepth.
func (zb *ZBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(zb.Depth)
	if n == 0 {
		return
	}
	zb.Depth[0] = EmptyDepth
	for i := 1; i < n; i *= 2 {
		copy(zb.Depth[i:], zb.Depth[:i])
	}
}

// Index returns the flat index of (x, y).
func (zb *ZBuffer) Index(x, y int) int {
	return x + y*zb.Width
}

// At returns the depth at (x, y). Out-of-range cells report +Inf so no
// fragment can ever pass the depth test there.
func (zb *ZBuffer) At(x, y int) float64 {
	if x < 0 || x >= zb.Width || y < 0 || y >= zb.Height {
		return math.Inf(1)
	}
	return zb.Depth[zb.Index(x, y)]
}

// Set stores z at (x, y). Out-of-range writes are discarded.
func (zb *ZBuffer) Set(x, y int, z float64) {
	if x < 0 || x >= zb.Width || y < 0 || y >= zb.Height {
		return
	}
	zb.Depth[zb.Index(x, y)] = z
}
