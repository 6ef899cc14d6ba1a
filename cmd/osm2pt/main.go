package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LdDl/osm2pt"
	"github.com/LdDl/osm2pt/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	configFile  = flag.String("config", "", "Path to YAML configuration file (optional)")
	osmFileName = flag.String("file", "", "Filename of OSM data. Expected extensions: *.osm, *.xml, *.pbf, *.osm.pbf. Overrides 'input.file'")
	outDir      = flag.String("out", "", "Output directory. Overrides 'output.dir'")
	formats     = flag.String("formats", "", "Output formats separated by commas. Expected values: mvt / geojson / csv. Overrides 'output.formats'")
	minZoom     = flag.Int("minzoom", -1, "Minimum zoom of produced tiles. Overrides 'tiles.min_zoom'")
	maxZoom     = flag.Int("maxzoom", -1, "Maximum zoom of produced tiles. Overrides 'tiles.max_zoom'")
	verbose     = flag.Bool("verbose", false, "Print progress of processing stages")
)

func main() {

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	applyFlags(cfg)
	err = cfg.Validate()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	setupLogging(cfg.Log.Level, cfg.Log.Format)

	metrics := osm2pt.NewMetrics()
	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			slog.Info("serving metrics", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
	}

	parser := osm2pt.NewParser(
		cfg.Input.File,
		osm2pt.WithZoomRange(cfg.Tiles.MinZoom, cfg.Tiles.MaxZoom),
		osm2pt.WithWorkers(cfg.Workers),
		osm2pt.WithStrictMode(cfg.Strict),
		osm2pt.WithVerbose(cfg.Log.Verbose),
		osm2pt.WithParserMergeOptions(osm2pt.MergeOptions{
			MinLength: cfg.Merge.MinLength,
			Tolerance: cfg.Merge.Tolerance,
			Buffer:    cfg.Merge.Buffer,
			Extent:    osm2pt.TILE_EXTENT,
		}),
		osm2pt.WithMetrics(metrics),
	)
	if cfg.Log.Verbose {
		fmt.Println(parser)
	}

	st := time.Now()
	layer, err := parser.Process()
	if err != nil {
		slog.Error("processing failed", "file", cfg.Input.File, "error", err)
		os.Exit(1)
	}
	slog.Info("layer processed",
		"relations", len(layer.Routes.Relations()),
		"routes", layer.Routes.RoutesNum(),
		"fragments", len(layer.Fragments),
		"features", len(layer.Features),
		"tiles", len(layer.Tiles),
		"elapsed", time.Since(st),
	)

	err = os.MkdirAll(cfg.Output.Dir, 0755)
	if err != nil {
		slog.Error("can't create output directory", "dir", cfg.Output.Dir, "error", err)
		os.Exit(1)
	}
	for _, format := range cfg.Output.Formats {
		st := time.Now()
		switch format {
		case "mvt":
			err = layer.ExportToMVT(cfg.Output.Dir, cfg.Output.Gzip)
		case "geojson":
			err = layer.ExportToGeoJSON(filepath.Join(cfg.Output.Dir, osm2pt.LAYER_NAME+".geojson"))
		case "csv":
			err = layer.ExportToCSV(filepath.Join(cfg.Output.Dir, osm2pt.LAYER_NAME+".csv"))
		}
		if err != nil {
			slog.Error("export failed", "format", format, "error", err)
			os.Exit(1)
		}
		slog.Info("exported", "format", format, "dir", cfg.Output.Dir, "elapsed", time.Since(st))
	}
}

// applyFlags overrides configuration values by explicitly provided flags
func applyFlags(cfg *config.Config) {
	if *osmFileName != "" {
		cfg.Input.File = *osmFileName
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *formats != "" {
		cfg.Output.Formats = strings.Split(*formats, ",")
	}
	if *minZoom >= 0 {
		cfg.Tiles.MinZoom = *minZoom
	}
	if *maxZoom >= 0 {
		cfg.Tiles.MaxZoom = *maxZoom
	}
	if *verbose {
		cfg.Log.Verbose = true
	}
}
