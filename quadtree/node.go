package quadtree

import (
	"iter"
	"math"
	"slices"

	"github.com/crystalix007/quadtree/geometry"
)

// quadrant identifies one of the four children of an internal node.
//
//	    xSplit
//	       |
//	       V
//	  +----+----+
//	  | 10 | 11 |
//	y +----+----+ <- ySplit
//	  | 00 | 01 |
//	  +----+----+
//	       x
type quadrant int

const (
	botLeft quadrant = iota
	botRight
	topLeft
	topRight

	numQuadrants
)

// quadrantOf returns the child of region that point belongs to. Points lying
// exactly on a split line go to the lower/left side.
func quadrantOf(region geometry.Box, point geometry.Point) quadrant {
	split := region.Center()

	q := botLeft

	if point.Y > split.Y {
		q += topLeft
	}

	if point.X > split.X {
		q += botRight
	}

	return q
}

// limits bounds the shape of the tree.
type limits struct {
	// maxEntries is the number of indices a leaf holds before it splits.
	maxEntries int

	// maxDepth is the depth at which leaves stop splitting and grow instead.
	maxDepth int
}

// node is the interface that both node types in the quadtree implement.
//
// The indices a node deals in refer to the tree's point and data slices.
type node interface {
	// Add stores index, whose coordinates are point, below this node and
	// returns the node that should take this node's place in its parent.
	//
	// The caller must ensure that the node's region contains point.
	Add(point geometry.Point, index int, points []geometry.Point, lim limits) node

	// Find returns the indices of the leaf whose region point falls in. The
	// candidates are unfiltered.
	Find(point geometry.Point) []int

	// FindShape returns the indices of every leaf whose region intersects
	// shape, in child order. The caller must already know that this node's
	// region intersects shape.
	FindShape(shape geometry.Shape) []int

	// Region returns the area this node is responsible for.
	Region() geometry.Box

	// IsLeaf reports whether the node stores indices directly.
	IsLeaf() bool

	// Depth returns the number of levels between this node and the root.
	Depth() int
}

// leafNode stores point indices directly.
type leafNode struct {
	// Bounds is the region the leaf is responsible for. Every point whose
	// index is in Indices lies inside it.
	Bounds geometry.Box

	// Level is the depth of the leaf; the root is at level 0.
	Level int

	// Indices holds the stored points in insertion order. It only grows past
	// the leaf capacity once Level reaches the maximum depth.
	Indices []int
}

var _ node = &leafNode{}

// internalNode owns exactly four children which partition its region.
type internalNode struct {
	Bounds   geometry.Box
	Level    int
	Children [numQuadrants]node
}

// Ensure that internalNode implements the [node] interface.
var _ node = &internalNode{}

// newLeafNode creates an empty leaf covering region.
func newLeafNode(region geometry.Box, depth int) *leafNode {
	return &leafNode{
		Bounds: region,
		Level:  depth,
	}
}

// newInternalNode bisects region at its midpoint and creates an empty leaf
// for every quadrant.
//
// The right and top children are stretched to end at the far edge of region
// as [geometry.Box.Contains] computes it, so that every point region contains
// is contained by the child quadrantOf routes it to.
func newInternalNode(region geometry.Box, depth int) *internalNode {
	halfW := region.W / 2
	halfH := region.H / 2

	xSplit := region.X + halfW
	ySplit := region.Y + halfH

	farW := spanTo(xSplit, region.X+region.W)
	farH := spanTo(ySplit, region.Y+region.H)

	n := internalNode{
		Bounds: region,
		Level:  depth,
	}

	n.Children[botLeft] = newLeafNode(geometry.Box{X: region.X, Y: region.Y, W: halfW, H: halfH}, depth+1)
	n.Children[botRight] = newLeafNode(geometry.Box{X: xSplit, Y: region.Y, W: farW, H: halfH}, depth+1)
	n.Children[topLeft] = newLeafNode(geometry.Box{X: region.X, Y: ySplit, W: halfW, H: farH}, depth+1)
	n.Children[topRight] = newLeafNode(geometry.Box{X: xSplit, Y: ySplit, W: farW, H: farH}, depth+1)

	return &n
}

// spanTo returns an extent that, added to from, reaches at least to.
// The plain difference to-from can fall an ulp short once added back.
func spanTo(from, to float64) float64 {
	span := to - from

	for from+span < to {
		span = math.Nextafter(span, math.Inf(1))
	}

	return span
}

// Add inserts the index into the leaf.
//
// A full leaf is converted into an internal node: the indices it held are
// redistributed over the new children, which may split again straight away if
// the points are clustered. Leaves at the maximum depth never split, so
// repeatedly inserting the same coordinates cannot recurse without bound.
func (l *leafNode) Add(point geometry.Point, index int, points []geometry.Point, lim limits) node {
	if len(l.Indices) < lim.maxEntries || l.Level >= lim.maxDepth {
		l.Indices = append(l.Indices, index)

		return l
	}

	n := newInternalNode(l.Bounds, l.Level)

	for _, held := range l.Indices {
		n.Add(points[held], held, points, lim)
	}

	return n.Add(point, index, points, lim)
}

// Find returns a copy of every index in the leaf.
func (l *leafNode) Find(geometry.Point) []int {
	return slices.Clone(l.Indices)
}

// FindShape returns a copy of every index in the leaf.
func (l *leafNode) FindShape(geometry.Shape) []int {
	return slices.Clone(l.Indices)
}

func (l *leafNode) Region() geometry.Box { return l.Bounds }

func (l *leafNode) IsLeaf() bool { return true }

func (l *leafNode) Depth() int { return l.Level }

// Add passes the index down to the single child whose quadrant contains the
// point.
func (n *internalNode) Add(point geometry.Point, index int, points []geometry.Point, lim limits) node {
	q := quadrantOf(n.Bounds, point)

	n.Children[q] = n.Children[q].Add(point, index, points, lim)

	return n
}

// Find descends into the single child whose quadrant contains the point.
func (n *internalNode) Find(point geometry.Point) []int {
	return n.Children[quadrantOf(n.Bounds, point)].Find(point)
}

// FindShape concatenates the candidates of every child whose region
// intersects the shape, in quadrant order.
func (n *internalNode) FindShape(shape geometry.Shape) []int {
	var indices []int

	for _, child := range n.Children {
		if !shape.IntersectsBox(child.Region()) {
			continue
		}

		indices = append(indices, child.FindShape(shape)...)
	}

	return indices
}

func (n *internalNode) Region() geometry.Box { return n.Bounds }

func (n *internalNode) IsLeaf() bool { return false }

func (n *internalNode) Depth() int { return n.Level }

// walk returns a depth-first, pre-order iterator over root and every node
// below it.
func walk(root node) iter.Seq[node] {
	return func(yield func(node) bool) {
		walkNode(root, yield)
	}
}

func walkNode(n node, yield func(node) bool) bool {
	if !yield(n) {
		return false
	}

	internal, ok := n.(*internalNode)
	if !ok {
		return true
	}

	for _, child := range internal.Children {
		if !walkNode(child, yield) {
			return false
		}
	}

	return true
}
