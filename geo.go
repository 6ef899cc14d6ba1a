package osm2pt

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"
)

// tileProjection converts WGS84 coordinates into pixels of the tile and back. Origin is the north-west corner of tile
type tileProjection struct {
	tile  maptile.Tile
	tiles float64
}

func newTileProjection(tile maptile.Tile) *tileProjection {
	return &tileProjection{
		tile:  tile,
		tiles: float64(uint32(1) << uint32(tile.Z)),
	}
}

func (proj *tileProjection) ToPixels(pt orb.Point) orb.Point {
	fraction := maptile.Fraction(pt, proj.tile.Z)
	return orb.Point{
		(fraction[0] - float64(proj.tile.X)) * TILE_EXTENT,
		(fraction[1] - float64(proj.tile.Y)) * TILE_EXTENT,
	}
}

func (proj *tileProjection) ToWGS84(pt orb.Point) orb.Point {
	fx := (float64(proj.tile.X) + pt[0]/TILE_EXTENT) / proj.tiles
	fy := (float64(proj.tile.Y) + pt[1]/TILE_EXTENT) / proj.tiles
	mercator := orb.Point{
		(fx - 0.5) * 2 * math.Pi * orb.EarthRadius,
		(0.5 - fy) * 2 * math.Pi * orb.EarthRadius,
	}
	return project.Mercator.ToWGS84(mercator)
}

// tileBox returns pixel bound of tile extended by buffer
func tileBox(buffer float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{-buffer, -buffer},
		Max: orb.Point{TILE_EXTENT + buffer, TILE_EXTENT + buffer},
	}
}

// tileRange returns range of tile indices covering [from, to] fractions at given zoom
func tileRange(from, to float64, zoom maptile.Zoom) (uint32, uint32) {
	maxIndex := float64(uint32(1)<<uint32(zoom)) - 1
	minTile := math.Max(0, math.Floor(from))
	maxTile := math.Min(maxIndex, math.Floor(to))
	return uint32(minTile), uint32(maxTile)
}

// sliceFeature projects WGS84 feature into pixels of every tile of the zoom level the feature touches.
// Parts of geometry further than feature's buffer outside of tile are clipped
func sliceFeature(feature *Feature, zoom maptile.Zoom) (map[maptile.Tile]*Feature, error) {
	lines, err := lineStrings(feature)
	if err != nil {
		return nil, err
	}
	bound := feature.Geom.Bound()
	bufferFraction := feature.BufferPixels / TILE_EXTENT
	northWest := maptile.Fraction(orb.Point{bound.Min[0], bound.Max[1]}, zoom)
	southEast := maptile.Fraction(orb.Point{bound.Max[0], bound.Min[1]}, zoom)
	minX, maxX := tileRange(northWest[0]-bufferFraction, southEast[0]+bufferFraction, zoom)
	minY, maxY := tileRange(northWest[1]-bufferFraction, southEast[1]+bufferFraction, zoom)

	box := tileBox(feature.BufferPixels)
	sliced := make(map[maptile.Tile]*Feature)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			tile := maptile.New(x, y, zoom)
			proj := newTileProjection(tile)
			parts := orb.MultiLineString{}
			for _, line := range lines {
				pixels := project.LineString(line.Clone(), proj.ToPixels)
				parts = append(parts, clip.LineString(box, pixels)...)
			}
			if len(parts) == 0 {
				continue
			}
			var geom orb.Geometry = parts
			if len(parts) == 1 {
				geom = parts[0]
			}
			sliced[tile] = feature.copyWithGeometry(geom)
		}
	}
	return sliced, nil
}

// BuildTiles splits WGS84 features into render units for every zoom in [minZoom, maxZoom].
// Inside of each tile features keep the input order
func BuildTiles(features []*Feature, minZoom, maxZoom int) (map[maptile.Tile][]*Feature, error) {
	tiles := make(map[maptile.Tile][]*Feature)
	for zoom := minZoom; zoom <= maxZoom; zoom++ {
		for _, feature := range features {
			if !feature.VisibleAt(zoom) {
				continue
			}
			sliced, err := sliceFeature(feature, maptile.Zoom(zoom))
			if err != nil {
				return nil, err
			}
			for tile, tileFeature := range sliced {
				tiles[tile] = append(tiles[tile], tileFeature)
			}
		}
	}
	return tiles, nil
}

// sortedTiles returns tiles ordered by zoom, x and y
func sortedTiles(tiles map[maptile.Tile][]*Feature) []maptile.Tile {
	sorted := make([]maptile.Tile, 0, len(tiles))
	for tile := range tiles {
		sorted = append(sorted, tile)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z < sorted[j].Z
		}
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	return sorted
}
