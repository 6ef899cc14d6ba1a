package osm2pt

import (
	"fmt"
	"os"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"
	"github.com/pkg/errors"
)

// toWGS84 returns copy of pixel geometry of the tile converted to WGS84
func toWGS84(tile maptile.Tile, geom orb.Geometry) orb.Geometry {
	return project.Geometry(orb.Clone(geom), newTileProjection(tile).ToWGS84)
}

// PrepareGeoJSONFeature returns GeoJSON feature for given WGS84 line feature
func PrepareGeoJSONFeature(feature *Feature) (*geojson.Feature, error) {
	var gjFeature *geojson.Feature
	switch geom := feature.Geom.(type) {
	case orb.LineString:
		gjFeature = geojson.NewLineStringFeature(lineToCoordinates(geom))
	case orb.MultiLineString:
		lines := make([][][]float64, len(geom))
		for i, line := range geom {
			lines[i] = lineToCoordinates(line)
		}
		gjFeature = geojson.NewMultiLineStringFeature(lines...)
	default:
		return nil, fmt.Errorf("Geometry of type '%T' can't be converted to GeoJSON line", feature.Geom)
	}
	for key, value := range feature.Attributes.Properties() {
		gjFeature.SetProperty(key, value)
	}
	return gjFeature, nil
}

func lineToCoordinates(line orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].Lon(), line[i].Lat()}
	}
	return pts2d
}

// ExportToGeoJSON writes merged features into one GeoJSON file per zoom level.
// E.g.: if file name is 'routes.geojson' then files 'routes_z12.geojson', 'routes_z13.geojson', ... will be produced
func (layer *Layer) ExportToGeoJSON(fname string) error {
	fnamePart := strings.Split(fname, ".geojson")
	collections := make(map[maptile.Zoom]*geojson.FeatureCollection)
	zooms := []maptile.Zoom{}
	for _, tile := range sortedTiles(layer.Tiles) {
		fc, ok := collections[tile.Z]
		if !ok {
			fc = geojson.NewFeatureCollection()
			collections[tile.Z] = fc
			zooms = append(zooms, tile.Z)
		}
		for _, feature := range layer.Tiles[tile] {
			gjFeature, err := PrepareGeoJSONFeature(feature.copyWithGeometry(toWGS84(tile, feature.Geom)))
			if err != nil {
				return errors.Wrapf(err, "Can't convert feature of tile %d/%d/%d", tile.Z, tile.X, tile.Y)
			}
			gjFeature.SetProperty("tile", fmt.Sprintf("%d/%d/%d", tile.Z, tile.X, tile.Y))
			fc.AddFeature(gjFeature)
		}
	}
	for _, zoom := range zooms {
		b, err := collections[zoom].MarshalJSON()
		if err != nil {
			return errors.Wrapf(err, "Can't marshal features of zoom %d", zoom)
		}
		err = os.WriteFile(fmt.Sprintf("%s_z%d.geojson", fnamePart[0], zoom), b, 0644)
		if err != nil {
			return errors.Wrapf(err, "Can't write features of zoom %d", zoom)
		}
	}
	return nil
}
