// Package config holds the settings of the qtbench driver.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/crystalix007/quadtree/geometry"
	"github.com/crystalix007/quadtree/quadtree"
)

// Config describes one benchmark run.
type Config struct {
	// Bounds is the bounding box of the tree.
	Bounds geometry.Box `toml:"bounds"`

	// FitBounds replaces Bounds with the bounding box of the loaded points.
	FitBounds bool `toml:"fit_bounds"`

	MaxEntries int `toml:"max_entries"`
	MaxDepth   int `toml:"max_depth"`

	// Points is the number of uniformly random points to generate. It is
	// ignored when GeoJSON is set.
	Points int   `toml:"points"`
	Seed   int64 `toml:"seed"`

	// GeoJSON is the path of a FeatureCollection to load points from.
	GeoJSON string `toml:"geojson"`

	QueryBox    geometry.Box    `toml:"query_box"`
	QueryCircle geometry.Circle `toml:"query_circle"`
}

// Default returns the configuration of the reference run: five million
// points over [0,100]x[0,150] with leaves of 100 points.
func Default() Config {
	return Config{
		Bounds:      geometry.Bx(0, 0, 100, 150),
		MaxEntries:  100,
		MaxDepth:    quadtree.DefaultMaxDepth,
		Points:      5_000_000,
		Seed:        1,
		QueryBox:    geometry.Bx(15, 23.4, 1, 2.5),
		QueryCircle: geometry.Circle{X: 15, Y: 23.4, R: 2.5},
	}
}

// Load decodes the TOML file at path over the defaults. Keys that do not
// belong to Config are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to decode config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("unknown keys in config %s: %v", path, undecoded)
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable benchmark.
func (c Config) Validate() error {
	if !c.FitBounds && (c.Bounds.W <= 0 || c.Bounds.H <= 0) {
		return errors.Errorf("bounds %s must have positive width and height", c.Bounds)
	}

	if c.MaxEntries < 1 {
		return errors.Errorf("max_entries must be at least 1, got %d", c.MaxEntries)
	}

	if c.MaxDepth < 1 {
		return errors.Errorf("max_depth must be at least 1, got %d", c.MaxDepth)
	}

	if c.GeoJSON == "" && c.Points < 1 {
		return errors.Errorf("points must be at least 1, got %d", c.Points)
	}

	if c.QueryBox.W < 0 || c.QueryBox.H < 0 {
		return errors.Errorf("query_box %s must not have negative extents", c.QueryBox)
	}

	if c.QueryCircle.R < 0 {
		return errors.Errorf("query_circle radius must not be negative, got %g", c.QueryCircle.R)
	}

	return nil
}

// TreeOptions returns the quadtree options the configuration asks for.
func (c Config) TreeOptions() []quadtree.Option {
	opts := []quadtree.Option{
		quadtree.WithMaxEntries(c.MaxEntries),
		quadtree.WithMaxDepth(c.MaxDepth),
	}

	if c.GeoJSON == "" {
		opts = append(opts, quadtree.WithCapacityHint(c.Points))
	}

	return opts
}
