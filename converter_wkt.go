package osm2pt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ExportToCSV writes merged features of every tile into single 'Comma-Separated Values' file (separator is ';'). Geometry is WKT in WGS84
func (layer *Layer) ExportToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()
	return layer.writeCSV(file)
}

func (layer *Layer) writeCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := writer.Write([]string{"z", "x", "y", "route_key", "class", "subclass", "ref", "network", "operator", "colour", "name", "min_zoom", "max_zoom", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, tile := range sortedTiles(layer.Tiles) {
		for _, feature := range layer.Tiles[tile] {
			attrs := feature.Attributes
			err = writer.Write([]string{
				fmt.Sprintf("%d", tile.Z),
				fmt.Sprintf("%d", tile.X),
				fmt.Sprintf("%d", tile.Y),
				string(attrs.RouteKey),
				attrs.Class.String(),
				attrs.Subclass,
				attrs.Ref,
				attrs.Network,
				attrs.Operator,
				attrs.Colour,
				attrs.Name,
				fmt.Sprintf("%d", feature.MinZoom),
				fmt.Sprintf("%d", feature.MaxZoom),
				wkt.MarshalString(toWGS84(tile, feature.Geom)),
			})
			if err != nil {
				return errors.Wrap(err, "Can't write feature")
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "Can't flush features")
	}
	return nil
}
