// Package pointsource produces the points the qtbench driver inserts.
package pointsource

import (
	"io"
	"math/rand/v2"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/crystalix007/quadtree/geometry"
)

// Uniform returns n points drawn uniformly from bounds. The same seed always
// yields the same points.
func Uniform(bounds geometry.Box, n int, seed int64) []geometry.Point {
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	points := make([]geometry.Point, n)

	for i := range points {
		points[i] = geometry.Pt(
			bounds.X+r.Float64()*bounds.W,
			bounds.Y+r.Float64()*bounds.H,
		)
	}

	return points
}

// ReadGeoJSON decodes a FeatureCollection and returns the location of every
// Point feature and every member of a MultiPoint feature, in document order.
// Features with any other geometry are skipped.
func ReadGeoJSON(r io.Reader) ([]geometry.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read geojson")
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode geojson feature collection")
	}

	var points []geometry.Point

	for _, feature := range fc.Features {
		switch g := feature.Geometry.(type) {
		case orb.Point:
			points = append(points, geometry.FromOrbPoint(g))
		case orb.MultiPoint:
			for _, p := range g {
				points = append(points, geometry.FromOrbPoint(p))
			}
		}
	}

	return points, nil
}

// LoadGeoJSON reads the FeatureCollection stored at path.
func LoadGeoJSON(path string) ([]geometry.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	return ReadGeoJSON(f)
}

// Bound returns the smallest box containing every point. It is the zero Box
// when points is empty.
func Bound(points []geometry.Point) geometry.Box {
	if len(points) == 0 {
		return geometry.Box{}
	}

	mp := make(orb.MultiPoint, len(points))

	for i, p := range points {
		mp[i] = p.Orb()
	}

	return geometry.FromOrbBound(mp.Bound())
}
