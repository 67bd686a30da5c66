// Package quadtree implements a point-region quadtree mapping planar points to
// arbitrary values.
//
// Points and values are stored in two parallel slices; the tree itself only
// holds indices into them. A leaf that overflows is split at its midpoint into
// four quadrants, and never merged back.
//
// A Tree is not safe for concurrent use.
package quadtree

import (
	"iter"

	"github.com/crystalix007/quadtree/geometry"
)

// Tree is a quadtree over a fixed bounding box.
type Tree[Data any] struct {
	bounds geometry.Box
	points []geometry.Point
	data   []Data
	root   node
	limits limits
}

// New creates an empty quadtree covering bounds. Only points inside bounds
// can be inserted.
//
// Options are normalised rather than rejected: a leaf capacity below 1 is
// raised to 1, and negative depths or capacity hints are raised to 0.
func New[Data any](bounds geometry.Box, opts ...Option) *Tree[Data] {
	o := defaultOptions()

	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[Data]{
		bounds: bounds,
		points: make([]geometry.Point, 0, o.capacityHint),
		data:   make([]Data, 0, o.capacityHint),
		root:   newLeafNode(bounds, 0),
		limits: limits{
			maxEntries: o.maxEntries,
			maxDepth:   o.maxDepth,
		},
	}
}

// Insert stores value at point. It returns false, without modifying the
// tree, if point lies outside the bounding box.
//
// Inserting the same coordinates twice stores both values; [Tree.Find] then
// returns the one inserted first.
func (t *Tree[Data]) Insert(point geometry.Point, value Data) bool {
	if !t.bounds.Contains(point) {
		return false
	}

	index := len(t.points)
	t.points = append(t.points, point)
	t.data = append(t.data, value)

	t.root = t.root.Add(point, index, t.points, t.limits)

	return true
}

// Find returns the value stored at exactly point.
//
// It fails with [ErrOutOfBounds] if point is outside the bounding box, and
// with [ErrNotFound] if nothing is stored there.
func (t *Tree[Data]) Find(point geometry.Point) (Data, error) {
	var zero Data

	if !t.bounds.Contains(point) {
		return zero, ErrOutOfBounds.New(point, t.bounds)
	}

	for _, index := range t.root.Find(point) {
		if t.points[index].Equal(point) {
			return t.data[index], nil
		}
	}

	return zero, ErrNotFound.New(point)
}

// FindIn returns every value whose point is contained by shape, in tree
// traversal order (not insertion order).
//
// It fails with [ErrOutOfRegion] if shape does not intersect the bounding box
// at all. A shape that only partly overlaps the bounding box is answered from
// the overlapping part.
func (t *Tree[Data]) FindIn(shape geometry.Shape) ([]Data, error) {
	if !shape.IntersectsBox(t.bounds) {
		return nil, ErrOutOfRegion.New(shape, t.bounds)
	}

	candidates := t.root.FindShape(shape)
	values := make([]Data, 0, len(candidates))

	for _, index := range candidates {
		if shape.Contains(t.points[index]) {
			values = append(values, t.data[index])
		}
	}

	return values, nil
}

// FindInBox returns every value whose point lies inside box.
func (t *Tree[Data]) FindInBox(box geometry.Box) ([]Data, error) {
	return t.FindIn(box)
}

// FindInCircle returns every value whose point lies inside circle.
func (t *Tree[Data]) FindInCircle(circle geometry.Circle) ([]Data, error) {
	return t.FindIn(circle)
}

// Bounds returns the bounding box the tree was created with.
func (t *Tree[Data]) Bounds() geometry.Box { return t.bounds }

// Len returns the number of stored points.
func (t *Tree[Data]) Len() int { return len(t.points) }

// Points returns the stored points in insertion order. The slice is shared
// with the tree and must not be modified.
func (t *Tree[Data]) Points() []geometry.Point { return t.points }

// Data returns the stored values in insertion order; Data()[i] belongs to
// Points()[i]. The slice is shared with the tree and must not be modified.
func (t *Tree[Data]) Data() []Data { return t.data }

// All returns an iterator over every point and its value, in insertion order.
func (t *Tree[Data]) All() iter.Seq2[geometry.Point, Data] {
	return func(yield func(geometry.Point, Data) bool) {
		for i, point := range t.points {
			if !yield(point, t.data[i]) {
				return
			}
		}
	}
}
