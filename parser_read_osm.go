package osm2pt

import (
	"fmt"
	"time"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

// Layer is the processed public transport layer
type Layer struct {
	Routes    *RouteIndex
	Fragments []*Fragment
	// Emitted features in WGS84
	Features []*Feature
	// Merged features in pixels of each tile
	Tiles map[maptile.Tile][]*Feature
}

// Process reads OSM file and builds merged public transport layer for every tile in zoom range
func (parser *Parser) Process() (*Layer, error) {
	if parser.minZoom < 0 || parser.maxZoom < parser.minZoom {
		return nil, fmt.Errorf("Bad zoom range [%d, %d]", parser.minZoom, parser.maxZoom)
	}
	dataOSM, err := readOSM(parser.filename, parser.verbose)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse OSM data")
	}
	fragments, err := dataOSM.prepareFragments(parser.strictMode, parser.verbose)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare fragments")
	}
	if parser.metrics != nil {
		parser.metrics.RelationsIdentified.Add(float64(len(dataOSM.routes.Relations())))
	}
	features := parser.emit(fragments, dataOSM.routes)

	if parser.verbose {
		fmt.Printf("Slicing features into tiles...")
	}
	st := time.Now()
	tiles, err := BuildTiles(features, parser.minZoom, parser.maxZoom)
	if err != nil {
		return nil, errors.Wrap(err, "Can't slice features into tiles")
	}
	if parser.verbose {
		fmt.Printf("Done in %v\n\tTiles: %d\n", time.Since(st), len(tiles))
	}

	merged, err := parser.merge(tiles)
	if err != nil {
		return nil, errors.Wrap(err, "Can't merge routes")
	}
	return &Layer{
		Routes:    dataOSM.routes,
		Fragments: fragments,
		Features:  features,
		Tiles:     merged,
	}, nil
}

func (parser *Parser) emit(fragments []*Fragment, routes *RouteIndex) []*Feature {
	if parser.verbose {
		fmt.Printf("Emitting features...")
	}
	st := time.Now()
	features := EmitAll(fragments, routes, parser.workers)
	if parser.metrics != nil {
		for _, fragment := range fragments {
			if len(routes.MembershipsOf(fragment.WayID)) > 0 {
				parser.metrics.FragmentsEmitted.Inc()
			}
		}
		parser.metrics.FeaturesEmitted.Add(float64(len(features)))
	}
	if parser.verbose {
		fmt.Printf("Done in %v\n\tFeatures: %d\n", time.Since(st), len(features))
	}
	return features
}

func (parser *Parser) merge(tiles map[maptile.Tile][]*Feature) (map[maptile.Tile][]*Feature, error) {
	if parser.verbose {
		fmt.Printf("Merging routes in tiles...")
	}
	st := time.Now()
	merger := NewRouteMerger(WithMergeOptions(parser.mergeOptions))
	merged, err := MergeTiles(tiles, merger, parser.workers, parser.metrics)
	if err != nil {
		return nil, err
	}
	if parser.verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	return merged, nil
}

// EmitAll emits features for every fragment using its memberships from index. Output order follows fragments order
func EmitAll(fragments []*Fragment, routes *RouteIndex, workers int) []*Feature {
	perFragment := make([][]*Feature, len(fragments))
	// Emitting never fails
	_ = parallelFor(len(fragments), workers, func(index int) error {
		fragment := fragments[index]
		perFragment[index] = EmitFragment(fragment, routes.MembershipsOf(fragment.WayID))
		return nil
	})
	total := 0
	for _, features := range perFragment {
		total += len(features)
	}
	features := make([]*Feature, 0, total)
	for _, fragmentFeatures := range perFragment {
		features = append(features, fragmentFeatures...)
	}
	return features
}

// MergeTiles runs route merging for every tile independently. Metrics are optional
func MergeTiles(tiles map[maptile.Tile][]*Feature, merger *RouteMerger, workers int, metrics *Metrics) (map[maptile.Tile][]*Feature, error) {
	keys := sortedTiles(tiles)
	merged := make([][]*Feature, len(keys))
	err := parallelFor(len(keys), workers, func(index int) error {
		st := time.Now()
		features, err := merger.PostProcess(tiles[keys[index]])
		if err != nil {
			return errors.Wrapf(err, "Tile %d/%d/%d", keys[index].Z, keys[index].X, keys[index].Y)
		}
		merged[index] = features
		if metrics != nil {
			metrics.TileMergeDuration.Observe(time.Since(st).Seconds())
			metrics.TilesMerged.Inc()
			metrics.FeaturesMerged.Add(float64(len(features)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result := make(map[maptile.Tile][]*Feature, len(keys))
	for i, tile := range keys {
		if len(merged[i]) == 0 {
			continue
		}
		result[tile] = merged[i]
	}
	return result, nil
}
