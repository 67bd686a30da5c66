package quadtree

const (
	// DefaultMaxEntries is the number of points a leaf holds before it is
	// split into four quadrants.
	//
	// This is a performance tweakable: larger leaves make the tree shallower
	// at the cost of longer candidate lists.
	DefaultMaxEntries = 10

	// DefaultMaxDepth is the depth below which leaves are no longer split.
	//
	// Halving a float64 extent 64 times leaves cells far smaller than any
	// realistic point spacing, so only (near-)duplicate points ever reach it.
	DefaultMaxDepth = 64
)

// Option configures a tree created with [New].
type Option func(*options)

type options struct {
	maxEntries   int
	maxDepth     int
	capacityHint int
}

func defaultOptions() options {
	return options{
		maxEntries: DefaultMaxEntries,
		maxDepth:   DefaultMaxDepth,
	}
}

// WithMaxEntries sets the leaf capacity. Values below 1 are treated as 1.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = max(n, 1)
	}
}

// WithMaxDepth sets the depth at which leaves stop splitting. A leaf at this
// depth keeps accepting points past its capacity. Negative values are treated
// as 0, which never splits the root.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = max(depth, 0)
	}
}

// WithCapacityHint pre-sizes the point and data storage for n points.
func WithCapacityHint(n int) Option {
	return func(o *options) {
		o.capacityHint = max(n, 0)
	}
}
