package quadtree

import "github.com/crystalix007/quadtree/geometry"

const (
	// BotLeft, BotRight, TopLeft and TopRight re-export the quadrant order of
	// an internal node's children for testing purposes.
	BotLeft  = int(botLeft)
	BotRight = int(botRight)
	TopLeft  = int(topLeft)
	TopRight = int(topRight)
)

// Node reexports the internal [node] type.
type Node = node

// LeafNode reexports the internal [leafNode] type.
type LeafNode = leafNode

// InternalNode reexports the internal [internalNode] type.
type InternalNode = internalNode

// Root exposes the root node of the tree.
func (t *Tree[Data]) Root() Node {
	return t.root
}

// QuadrantOf reexports the internal [quadrantOf] function.
func QuadrantOf(region geometry.Box, point geometry.Point) int {
	return int(quadrantOf(region, point))
}
