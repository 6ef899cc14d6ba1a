package osm2pt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"
	"github.com/pkg/errors"
)

// PrepareMVT encodes merged features of single tile as Mapbox Vector Tile
func PrepareMVT(features []*Feature, gzipped bool) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	scale := float64(mvt.DefaultExtent) / TILE_EXTENT
	for _, feature := range features {
		geom := project.Geometry(orb.Clone(feature.Geom), func(pt orb.Point) orb.Point {
			return orb.Point{pt[0] * scale, pt[1] * scale}
		})
		gjFeature := geojson.NewFeature(geom)
		for key, value := range feature.Attributes.Properties() {
			gjFeature.Properties[key] = value
		}
		fc.Append(gjFeature)
	}
	layers := mvt.Layers{mvt.NewLayer(LAYER_NAME, fc)}
	if gzipped {
		return mvt.MarshalGzipped(layers)
	}
	return mvt.Marshal(layers)
}

// ExportToMVT writes every tile into '{dir}/{z}/{x}/{y}.mvt'
func (layer *Layer) ExportToMVT(dir string, gzipped bool) error {
	for _, tile := range sortedTiles(layer.Tiles) {
		b, err := PrepareMVT(layer.Tiles[tile], gzipped)
		if err != nil {
			return errors.Wrapf(err, "Can't encode tile %d/%d/%d", tile.Z, tile.X, tile.Y)
		}
		fname := tilePath(dir, tile)
		err = os.MkdirAll(filepath.Dir(fname), 0755)
		if err != nil {
			return errors.Wrap(err, "Can't create tile directory")
		}
		err = os.WriteFile(fname, b, 0644)
		if err != nil {
			return errors.Wrapf(err, "Can't write tile %d/%d/%d", tile.Z, tile.X, tile.Y)
		}
	}
	return nil
}

func tilePath(dir string, tile maptile.Tile) string {
	return filepath.Join(dir, fmt.Sprintf("%d", tile.Z), fmt.Sprintf("%d", tile.X), fmt.Sprintf("%d.mvt", tile.Y))
}
