package geometry

import "strconv"

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Equal reports whether both coordinates are exactly equal. There is no
// tolerance.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// DistanceSq returns the squared Euclidean distance between two points.
func (p Point) DistanceSq(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y

	return dx*dx + dy*dy
}

func (p Point) String() string {
	return "{" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + "}"
}
