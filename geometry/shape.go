package geometry

// Shape is anything a range query can be made with.
//
// IntersectsBox must never return false for a box that contains a point the
// shape contains, otherwise range queries will miss results.
type Shape interface {
	Contains(p Point) bool
	IntersectsBox(b Box) bool
}

// Ensure that the concrete shapes implement the [Shape] interface.
var (
	_ Shape = Box{}
	_ Shape = Circle{}
)
