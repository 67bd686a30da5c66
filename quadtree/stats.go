package quadtree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Stats summarises the shape of a tree.
type Stats struct {
	Points int

	// Nodes counts both leaves and internal nodes.
	Nodes  int
	Leaves int

	// MaxDepth is the depth of the deepest node; the root is at depth 0.
	MaxDepth int

	// LargestLeaf is the number of indices in the fullest leaf. It only
	// exceeds the leaf capacity for leaves at the maximum depth.
	LargestLeaf int
}

// Stats walks the tree and returns its statistics.
func (t *Tree[Data]) Stats() Stats {
	stats := Stats{Points: len(t.points)}

	for n := range walk(t.root) {
		stats.Nodes++
		stats.MaxDepth = max(stats.MaxDepth, n.Depth())

		if leaf, ok := n.(*leafNode); ok {
			stats.Leaves++
			stats.LargestLeaf = max(stats.LargestLeaf, len(leaf.Indices))
		}
	}

	return stats
}

// Dump writes one "{x, y} -> value" line per stored point, in insertion
// order.
func (t *Tree[Data]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for point, value := range t.All() {
		if _, err := fmt.Fprintf(bw, "%s -> %v\n", point, value); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// DumpTree writes the index list of every leaf, indented by two spaces per
// level of depth.
func (t *Tree[Data]) DumpTree(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for n := range walk(t.root) {
		leaf, ok := n.(*leafNode)
		if !ok {
			continue
		}

		if _, err := fmt.Fprintf(bw, "%s%v\n", strings.Repeat("  ", leaf.Level), leaf.Indices); err != nil {
			return err
		}
	}

	return bw.Flush()
}
