package geometry

import "fmt"

// Circle is a disc with centre (X, Y) and radius R.
type Circle struct {
	X float64
	Y float64
	R float64
}

// Center returns the centre of the circle.
func (c Circle) Center() Point { return Point{X: c.X, Y: c.Y} }

// Contains reports whether p lies inside the circle or on its circumference.
func (c Circle) Contains(p Point) bool {
	return c.Center().DistanceSq(p) <= c.R*c.R
}

// IntersectsBox reports whether the circle reaches the box.
func (c Circle) IntersectsBox(b Box) bool {
	return b.IntersectsCircle(c)
}

// Bound returns the smallest box enclosing the circle.
func (c Circle) Bound() Box {
	return Box{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

func (c Circle) String() string {
	return fmt.Sprintf("{centre: {%g, %g}, r: %g}", c.X, c.Y, c.R)
}
