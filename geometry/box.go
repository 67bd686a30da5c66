package geometry

import "fmt"

// Box is an axis-aligned rectangle with its origin at the lower left corner
// (X, Y) and non-negative extents W and H.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Bx is a convenience constructor for Box.
func Bx(x, y, w, h float64) Box { return Box{X: x, Y: y, W: w, H: h} }

// Min returns the lower left corner.
func (b Box) Min() Point { return Point{X: b.X, Y: b.Y} }

// Max returns the upper right corner.
func (b Box) Max() Point { return Point{X: b.X + b.W, Y: b.Y + b.H} }

// Center returns the midpoint of the box, which is where the quadtree splits
// it.
func (b Box) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W &&
		p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Intersects reports whether two boxes overlap. Boxes that only touch along
// an edge or at a corner intersect.
func (b Box) Intersects(other Box) bool {
	return !(b.X > other.X+other.W ||
		b.X+b.W < other.X ||
		b.Y > other.Y+other.H ||
		b.Y+b.H < other.Y)
}

// IntersectsBox makes Box a [Shape]; it is the same test as [Box.Intersects].
func (b Box) IntersectsBox(other Box) bool {
	return b.Intersects(other)
}

// IntersectsCircle reports whether the circle reaches the box. The circle
// centre is clamped to the box extents and the distance from the clamped
// point to the centre is compared with the radius.
func (b Box) IntersectsCircle(c Circle) bool {
	closest := Point{
		X: clamp(c.X, b.X, b.X+b.W),
		Y: clamp(c.Y, b.Y, b.Y+b.H),
	}

	return closest.DistanceSq(c.Center()) <= c.R*c.R
}

func (b Box) String() string {
	return fmt.Sprintf("{[%g, %g], [%g, %g]}", b.X, b.X+b.W, b.Y, b.Y+b.H)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
