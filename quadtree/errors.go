package quadtree

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrOutOfBounds is returned when a point lookup falls outside the tree's
	// bounding box.
	ErrOutOfBounds = errors.NewKind("position %s is not in bounding box %s")

	// ErrNotFound is returned when no stored point has exactly the requested
	// coordinates.
	ErrNotFound = errors.NewKind("position %s is not in quadtree")

	// ErrOutOfRegion is returned when a range query shape does not touch the
	// tree's bounding box at all.
	ErrOutOfRegion = errors.NewKind("search shape %s does not intersect bounding box %s")
)
