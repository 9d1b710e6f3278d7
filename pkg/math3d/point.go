package math3d

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt creates a new Point.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}
