package geometry

import "github.com/paulmach/orb"

// FromOrbPoint converts an orb point, which stores [x, y].
func FromOrbPoint(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Orb returns the point as an orb point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// FromOrbBound converts an orb bound (min/max corners) into a Box.
func FromOrbBound(b orb.Bound) Box {
	return Box{
		X: b.Min.X(),
		Y: b.Min.Y(),
		W: b.Max.X() - b.Min.X(),
		H: b.Max.Y() - b.Min.Y(),
	}
}

// Orb returns the box as an orb bound.
func (b Box) Orb() orb.Bound {
	return orb.Bound{Min: b.Min().Orb(), Max: b.Max().Orb()}
}
