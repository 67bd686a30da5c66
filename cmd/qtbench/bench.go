package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crystalix007/quadtree/geometry"
	"github.com/crystalix007/quadtree/internal/config"
	"github.com/crystalix007/quadtree/internal/pointsource"
	"github.com/crystalix007/quadtree/quadtree"
)

var (
	pass = color.New(color.FgGreen, color.Bold).SprintFunc()
	fail = color.New(color.FgRed, color.Bold).SprintFunc()
)

func verdict(ok bool) string {
	if ok {
		return pass("true")
	}

	return fail("false")
}

// report is the outcome of a run.
type report struct {
	Inserted int
	Rejected int
	Missing  int

	BoxCount         int
	BoxNaiveCount    int
	CircleCount      int
	CircleNaiveCount int

	Stats quadtree.Stats
}

// OK reports whether every verification of the run passed.
func (r report) OK() bool {
	return r.Rejected == 0 && r.Missing == 0 &&
		r.BoxCount == r.BoxNaiveCount &&
		r.CircleCount == r.CircleNaiveCount
}

// loadPoints returns the points the run inserts, together with the bounds of
// the tree.
func loadPoints(cfg config.Config) ([]geometry.Point, geometry.Box, error) {
	var points []geometry.Point

	if cfg.GeoJSON != "" {
		var err error

		points, err = pointsource.LoadGeoJSON(cfg.GeoJSON)
		if err != nil {
			return nil, geometry.Box{}, err
		}

		if len(points) == 0 {
			return nil, geometry.Box{}, errors.Errorf("%s contains no point features", cfg.GeoJSON)
		}
	} else {
		points = pointsource.Uniform(cfg.Bounds, cfg.Points, cfg.Seed)
	}

	if cfg.FitBounds {
		return points, pointsource.Bound(points), nil
	}

	return points, cfg.Bounds, nil
}

// run builds a tree from the configured points, checks that every point can
// be found again, and compares the configured range queries against a linear
// scan. Progress and timings are logged; with dumpTree the leaf layout is
// written to out.
func run(cfg config.Config, log logrus.FieldLogger, out io.Writer, dumpTree bool) (report, error) {
	var r report

	points, bounds, err := loadPoints(cfg)
	if err != nil {
		return r, err
	}

	tree := quadtree.New[int](bounds, cfg.TreeOptions()...)

	start := time.Now()

	for i, point := range points {
		if !tree.Insert(point, i) {
			r.Rejected++

			log.WithField("point", point).Debug("Point outside bounding box")
		}
	}

	r.Inserted = tree.Len()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	log.WithFields(logrus.Fields{
		"points":   humanize.Comma(int64(r.Inserted)),
		"rejected": r.Rejected,
		"heap":     humanize.Bytes(mem.HeapAlloc),
	}).Infof("Insertion took %s", time.Since(start))

	r.Missing = findAll(tree, log)

	log.Infof("Found all = %s", verdict(r.Missing == 0))

	absent := geometry.Pt(bounds.X+bounds.W/2, bounds.Y+bounds.H/2)
	if value, err := tree.Find(absent); err != nil {
		log.WithError(err).Info("Lookup of an unstored point failed as expected")
	} else {
		log.Infof("%s -> %d", absent, value)
	}

	r.BoxCount, r.BoxNaiveCount, err = compare(tree, cfg.QueryBox, "box", log)
	if err != nil {
		return r, err
	}

	r.CircleCount, r.CircleNaiveCount, err = compare(tree, cfg.QueryCircle, "circle", log)
	if err != nil {
		return r, err
	}

	r.Stats = tree.Stats()

	log.WithFields(logrus.Fields{
		"nodes":       humanize.Comma(int64(r.Stats.Nodes)),
		"leaves":      humanize.Comma(int64(r.Stats.Leaves)),
		"maxDepth":    r.Stats.MaxDepth,
		"largestLeaf": r.Stats.LargestLeaf,
	}).Info("Tree shape")

	if dumpTree {
		if err := tree.DumpTree(out); err != nil {
			return r, errors.Wrap(err, "failed to dump tree")
		}
	}

	return r, nil
}

// findAll looks up every stored point and returns how many did not resolve
// to their own payload. A point stored more than once resolves to the payload
// of its first copy.
func findAll(tree *quadtree.Tree[int], log logrus.FieldLogger) int {
	missing := 0
	start := time.Now()

	for i, point := range tree.Points() {
		want := tree.Data()[i]

		value, err := tree.Find(point)

		switch {
		case err != nil:
			log.WithError(err).Error("Stored point not found")
		case value != want && value != firstPayload(tree, point):
			log.WithField("point", point).Errorf("Found payload %d, want %d", value, want)
		default:
			continue
		}

		missing++
	}

	log.Infof("Looking up %s points took %s", humanize.Comma(int64(tree.Len())), time.Since(start))

	return missing
}

// firstPayload returns the payload of the first stored copy of point.
func firstPayload(tree *quadtree.Tree[int], point geometry.Point) int {
	for p, value := range tree.All() {
		if p.Equal(point) {
			return value
		}
	}

	return -1
}

// compare runs shape against the tree and against a linear scan of the stored
// points, logging both timings, and returns both counts.
func compare(tree *quadtree.Tree[int], shape geometry.Shape, name string, log logrus.FieldLogger) (int, int, error) {
	start := time.Now()

	values, err := tree.FindIn(shape)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s query failed", name)
	}

	treeTook := time.Since(start)

	start = time.Now()
	naive := 0

	for _, point := range tree.Points() {
		if shape.Contains(point) {
			naive++
		}
	}

	naiveTook := time.Since(start)

	log.WithFields(logrus.Fields{
		"shape":      fmt.Sprint(shape),
		"count":      len(values),
		"naiveCount": naive,
		"treeTook":   treeTook,
		"naiveTook":  naiveTook,
	}).Infof("Search in %s: correct count = %s", name, verdict(len(values) == naive))

	return len(values), naive, nil
}
