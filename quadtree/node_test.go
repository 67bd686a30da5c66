package quadtree_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/crystalix007/quadtree/geometry"
	"github.com/crystalix007/quadtree/quadtree"
)

func TestQuadrantOf(t *testing.T) {
	t.Parallel()

	region := geometry.Bx(0, 0, 10, 10)

	tests := []struct {
		name  string
		point geometry.Point
		want  int
	}{
		{"Centre", geometry.Pt(5, 5), quadtree.BotLeft},
		{"VerticalSplitLine", geometry.Pt(5, 7), quadtree.TopLeft},
		{"HorizontalSplitLine", geometry.Pt(7, 5), quadtree.BotRight},
		{"JustPastCentre", geometry.Pt(5.0001, 5.0001), quadtree.TopRight},
		{"Origin", geometry.Pt(0, 0), quadtree.BotLeft},
		{"FarCorner", geometry.Pt(10, 10), quadtree.TopRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, quadtree.QuadrantOf(region, tt.point))
		})
	}
}

func TestLeafNode_split(t *testing.T) {
	t.Parallel()

	const maxEntries = 4

	tree := quadtree.New[int](geometry.Bx(0, 0, 8, 8), quadtree.WithMaxEntries(maxEntries))

	// All of these fall in the bottom left quadrant of the root.
	points := []geometry.Point{
		geometry.Pt(1, 1),
		geometry.Pt(1, 2),
		geometry.Pt(2, 1),
		geometry.Pt(2, 2),
	}

	for i, point := range points {
		tree.Insert(point, i)
	}

	require.True(t, tree.Root().IsLeaf())

	tree.Insert(geometry.Pt(3, 3), maxEntries)

	root, ok := tree.Root().(*quadtree.InternalNode)
	require.True(t, ok, spew.Sdump(tree.Root()))

	require.Equal(t, geometry.Bx(0, 0, 4, 4), root.Children[quadtree.BotLeft].Region())
	require.Equal(t, geometry.Bx(4, 0, 4, 4), root.Children[quadtree.BotRight].Region())
	require.Equal(t, geometry.Bx(0, 4, 4, 4), root.Children[quadtree.TopLeft].Region())
	require.Equal(t, geometry.Bx(4, 4, 4, 4), root.Children[quadtree.TopRight].Region())

	var area float64

	for _, child := range root.Children {
		area += child.Region().W * child.Region().H
	}

	require.Equal(t, root.Region().W*root.Region().H, area)

	require.Equal(t, 0, root.Depth())
	require.Equal(t, 1, root.Children[quadtree.TopRight].Depth())

	// The clustered points overflow the bottom left child as well, which
	// splits straight away.
	require.False(t, root.Children[quadtree.BotLeft].IsLeaf())
	require.True(t, root.Children[quadtree.TopRight].IsLeaf())

	require.Equal(t, quadtree.Stats{
		Points:      5,
		Nodes:       9,
		Leaves:      7,
		MaxDepth:    2,
		LargestLeaf: 4,
	}, tree.Stats())
}

func TestInternalNode_splitLine(t *testing.T) {
	t.Parallel()

	tree := quadtree.New[int](geometry.Bx(0, 0, 10, 10), quadtree.WithMaxEntries(1))

	tree.Insert(geometry.Pt(1, 1), 0)
	tree.Insert(geometry.Pt(5, 5), 1)

	root, ok := tree.Root().(*quadtree.InternalNode)
	require.True(t, ok)

	for _, q := range []int{quadtree.BotRight, quadtree.TopLeft, quadtree.TopRight} {
		leaf, ok := root.Children[q].(*quadtree.LeafNode)

		require.True(t, ok)
		require.Empty(t, leaf.Indices, "the centre point must only be stored bottom left")
	}

	value, err := tree.Find(geometry.Pt(5, 5))

	require.NoError(t, err)
	require.Equal(t, 1, value)
}

func TestLeafNode_Find_unfiltered(t *testing.T) {
	t.Parallel()

	leaf := quadtree.LeafNode{
		Bounds:  geometry.Bx(0, 0, 1, 1),
		Indices: []int{3, 1, 2},
	}

	candidates := leaf.Find(geometry.Pt(0.5, 0.5))

	require.Equal(t, []int{3, 1, 2}, candidates)

	// The candidates are a copy.
	candidates[0] = 7
	require.Equal(t, []int{3, 1, 2}, leaf.Indices)
}

// requireLeavesContainPoints walks the tree and checks that every leaf's
// region contains the points it stores, and that the far children of every
// internal node reach the far edges of their parent.
func requireLeavesContainPoints(t *testing.T, tree *quadtree.Tree[int]) {
	t.Helper()

	var check func(n quadtree.Node)

	check = func(n quadtree.Node) {
		switch n := n.(type) {
		case *quadtree.InternalNode:
			parentMax := n.Region().Max()

			require.GreaterOrEqual(t, n.Children[quadtree.BotRight].Region().Max().X, parentMax.X)
			require.GreaterOrEqual(t, n.Children[quadtree.TopLeft].Region().Max().Y, parentMax.Y)
			require.GreaterOrEqual(t, n.Children[quadtree.TopRight].Region().Max().X, parentMax.X)
			require.GreaterOrEqual(t, n.Children[quadtree.TopRight].Region().Max().Y, parentMax.Y)

			for _, child := range n.Children {
				check(child)
			}
		case *quadtree.LeafNode:
			for _, index := range n.Indices {
				point := tree.Points()[index]

				require.True(t, n.Bounds.Contains(point), "%s outside leaf %s", point, n.Bounds)
			}
		}
	}

	check(tree.Root())
}

// requireExactQueries looks every stored point up with zero-extent box and
// circle queries and compares the results with a linear scan.
func requireExactQueries(t *testing.T, tree *quadtree.Tree[int]) {
	t.Helper()

	for _, point := range tree.Points() {
		box := geometry.Bx(point.X, point.Y, 0, 0)
		circle := geometry.Circle{X: point.X, Y: point.Y, R: 0}

		for _, shape := range []geometry.Shape{box, circle} {
			values, err := tree.FindIn(shape)

			require.NoError(t, err)
			require.ElementsMatch(t, linearScan(tree.Points(), shape), values, spew.Sdump(shape))
		}
	}
}

func TestInternalNode_farEdge(t *testing.T) {
	t.Parallel()

	t.Run("RightEdgeAfterSplit", func(t *testing.T) {
		t.Parallel()

		bounds := geometry.Bx(0.9526503624515125, 0, 2.370929683268978, 10)
		edge := geometry.Pt(bounds.X+bounds.W, 1)

		tree := quadtree.New[int](bounds, quadtree.WithMaxEntries(1))

		require.True(t, tree.Insert(geometry.Pt(1, 1), 0))
		require.True(t, tree.Insert(edge, 1))

		values, err := tree.FindInCircle(geometry.Circle{X: edge.X, Y: edge.Y, R: 0})
		require.NoError(t, err)
		require.Equal(t, []int{1}, values)

		values, err = tree.FindInBox(geometry.Bx(edge.X, edge.Y, 0, 0))
		require.NoError(t, err)
		require.Equal(t, []int{1}, values)

		requireLeavesContainPoints(t, tree)
	})

	t.Run("NonDyadicBounds", func(t *testing.T) {
		t.Parallel()

		bounds := geometry.Bx(0.9526503624515125, 0.1, 2.370929683268978, 3*math.Pi)
		far := bounds.Max()

		tree := quadtree.New[int](bounds, quadtree.WithMaxEntries(2))
		r := rand.New(rand.NewPCG(9, 9))

		points := []geometry.Point{far}

		for range 64 {
			points = append(points,
				geometry.Pt(far.X, bounds.Y+r.Float64()*bounds.H),
				geometry.Pt(bounds.X+r.Float64()*bounds.W, far.Y),
				geometry.Pt(bounds.X+r.Float64()*bounds.W, bounds.Y+r.Float64()*bounds.H),
			)
		}

		for i, point := range points {
			require.True(t, tree.Insert(point, i), "inserting %s", point)
		}

		require.False(t, tree.Root().IsLeaf())

		requireLeavesContainPoints(t, tree)
		requireExactQueries(t, tree)
	})
}
