// Command qtbench fills a quadtree with points, verifies that every point can
// be found again, and times box and circle queries against a linear scan.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/crystalix007/quadtree/internal/config"
)

var (
	app = kingpin.New("qtbench", "Benchmarks quadtree insertion and queries against a linear scan.")

	configPath = app.Flag("config", "TOML file to read the configuration from").Short('c').Envar("QTBENCH_CONFIG").ExistingFile()
	geoJSON    = app.Flag("geojson", "read points from a GeoJSON FeatureCollection instead of generating them").Envar("QTBENCH_GEOJSON").ExistingFile()
	points     = app.Flag("points", "number of random points to insert (0 keeps the configured value)").Short('n').Envar("QTBENCH_POINTS").Int()
	maxEntries = app.Flag("max-entries", "leaf capacity (0 keeps the configured value)").Envar("QTBENCH_MAX_ENTRIES").Int()
	maxDepth   = app.Flag("max-depth", "depth at which leaves stop splitting (0 keeps the configured value)").Envar("QTBENCH_MAX_DEPTH").Int()
	seed       = app.Flag("seed", "random seed (0 keeps the configured value)").Envar("QTBENCH_SEED").Int64()
	fitBounds  = app.Flag("fit-bounds", "use the bounding box of the points as the tree bounds").Bool()
	dumpTree   = app.Flag("dump-tree", "print the leaf layout of the tree to stdout").Bool()
	logLevel   = app.Flag("log-level", "log level").Default("info").Enum("trace", "debug", "info", "warn", "error")
)

// loadConfig reads the configuration file, if any, and applies the
// command-line overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if *configPath != "" {
		var err error

		cfg, err = config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if *geoJSON != "" {
		cfg.GeoJSON = *geoJSON
	}

	if *points != 0 {
		cfg.Points = *points
	}

	if *maxEntries != 0 {
		cfg.MaxEntries = *maxEntries
	}

	if *maxDepth != 0 {
		cfg.MaxDepth = *maxDepth
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *fitBounds {
		cfg.FitBounds = true
	}

	return cfg, cfg.Validate()
}

func main() {
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(*logLevel)
	app.FatalIfError(err, "")
	log.SetLevel(level)

	cfg, err := loadConfig()
	app.FatalIfError(err, "invalid configuration")

	log.WithFields(logrus.Fields{
		"bounds":     cfg.Bounds,
		"maxEntries": cfg.MaxEntries,
		"maxDepth":   cfg.MaxDepth,
	}).Info("Starting")

	r, err := run(cfg, log, os.Stdout, *dumpTree)
	if err != nil {
		log.WithError(err).Fatal("Benchmark failed")
	}

	if !r.OK() {
		log.Error("Verification failed")
		os.Exit(1)
	}
}
