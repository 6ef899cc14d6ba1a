package osm2pt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
	"github.com/pkg/errors"
)

// TILE_EXTENT is size of render unit in pixels
const TILE_EXTENT = 256

// MergeOptions are parameters of line merging. Every value is in pixels
type MergeOptions struct {
	// Merged lines shorter than MinLength are removed
	MinLength float64
	// Douglas-Peucker tolerance for merged lines. Negative value disables simplification
	Tolerance float64
	// Detail further than Buffer outside of render unit is removed. Negative value disables clipping
	Buffer float64
	// Size of render unit
	Extent float64
}

// DefaultMergeOptions returns parameters used for public transport routes
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		MinLength: 0.5,
		Tolerance: 0.5,
		Buffer:    4,
		Extent:    TILE_EXTENT,
	}
}

// MergeLineStrings fuses touching lines of features with identical attributes.
// Lines are joined at points which are shared by exactly two line ends; join may reverse direction of a line.
// Output contains one feature per group of equal attributes, the first feature of group gives attributes and settings
func MergeLineStrings(features []*Feature, opts MergeOptions) ([]*Feature, error) {
	groups := groupByAttributes(features)
	result := make([]*Feature, 0, len(groups))
	box := orb.Bound{
		Min: orb.Point{-opts.Buffer, -opts.Buffer},
		Max: orb.Point{opts.Extent + opts.Buffer, opts.Extent + opts.Buffer},
	}
	for _, group := range groups {
		lines := make([]orb.LineString, 0, len(group))
		for _, feature := range group {
			featureLines, err := lineStrings(feature)
			if err != nil {
				return nil, err
			}
			lines = append(lines, featureLines...)
		}
		output := make([]orb.LineString, 0, len(lines))
		for _, line := range mergeLines(lines) {
			if planar.Length(line) < opts.MinLength {
				continue
			}
			// Some of joint points are not needed anymore
			if len(line) > 2 && opts.Tolerance >= 0 {
				line = simplify.DouglasPeucker(opts.Tolerance).LineString(line)
			}
			if opts.Buffer < 0 {
				output = append(output, line)
				continue
			}
			output = append(output, clip.LineString(box, line)...)
		}
		if len(output) == 0 {
			continue
		}
		var geom orb.Geometry = orb.MultiLineString(output)
		if len(output) == 1 {
			geom = output[0]
		}
		result = append(result, group[0].copyWithGeometry(geom))
	}
	return result, nil
}

// groupByAttributes splits features into groups of equal attributes. Order of groups and order inside of group follow input order
func groupByAttributes(features []*Feature) [][]*Feature {
	groups := [][]*Feature{}
	groupsByKey := make(map[RouteKey][]int)
	for _, feature := range features {
		found := false
		for _, groupIdx := range groupsByKey[feature.Attributes.RouteKey] {
			if groups[groupIdx][0].Attributes.Equal(feature.Attributes) {
				groups[groupIdx] = append(groups[groupIdx], feature)
				found = true
				break
			}
		}
		if !found {
			groupsByKey[feature.Attributes.RouteKey] = append(groupsByKey[feature.Attributes.RouteKey], len(groups))
			groups = append(groups, []*Feature{feature})
		}
	}
	return groups
}

// lineStrings extracts lines from feature geometry. Returns error for anything but non-degenerate lines
func lineStrings(feature *Feature) ([]orb.LineString, error) {
	switch geom := feature.Geom.(type) {
	case orb.LineString:
		if len(geom) < 2 {
			return nil, errors.Errorf("Malformed line of route '%s': %d point(s)", feature.Attributes.RouteKey, len(geom))
		}
		return []orb.LineString{geom}, nil
	case orb.MultiLineString:
		lines := make([]orb.LineString, 0, len(geom))
		for _, line := range geom {
			if len(line) < 2 {
				return nil, errors.Errorf("Malformed multiline of route '%s': part with %d point(s)", feature.Attributes.RouteKey, len(line))
			}
			lines = append(lines, line)
		}
		return lines, nil
	case nil:
		return nil, errors.Errorf("Missing geometry of route '%s'", feature.Attributes.RouteKey)
	default:
		return nil, errors.Errorf("Unexpected geometry type '%s' of route '%s'", geom.GeoJSONType(), feature.Attributes.RouteKey)
	}
}

// mergeLines concatenates lines touching each other. Input lines are never modified
func mergeLines(lines []orb.LineString) []orb.LineString {
	ends := make(map[orb.Point][]int, 2*len(lines))
	for i, line := range lines {
		ends[line[0]] = append(ends[line[0]], i)
		ends[line[len(line)-1]] = append(ends[line[len(line)-1]], i)
	}
	used := make([]bool, len(lines))
	merged := make([]orb.LineString, 0, len(lines))
	for i := range lines {
		if used[i] {
			continue
		}
		used[i] = true
		current := lines[i].Clone()
		// Forward
		for {
			last := current[len(current)-1]
			nextIdx, ok := adjacentLine(ends, last, used)
			if !ok {
				break
			}
			used[nextIdx] = true
			next := lines[nextIdx]
			if next[0] != last {
				next = reverseLine(next)
			}
			current = append(current, next[1:]...)
		}
		// Backward
		for {
			first := current[0]
			prevIdx, ok := adjacentLine(ends, first, used)
			if !ok {
				break
			}
			used[prevIdx] = true
			prev := lines[prevIdx].Clone()
			if prev[len(prev)-1] != first {
				prev = reverseLine(prev)
			}
			current = append(prev[:len(prev)-1], current...)
		}
		merged = append(merged, current)
	}
	return merged
}

// adjacentLine returns not used line which touches given point. Lines are adjacent only when exactly two line ends meet
func adjacentLine(ends map[orb.Point][]int, pt orb.Point, used []bool) (int, bool) {
	candidates := ends[pt]
	if len(candidates) != 2 {
		return -1, false
	}
	for _, idx := range candidates {
		if !used[idx] {
			return idx, true
		}
	}
	return -1, false
}

// reverseLine reverses order of points in given line. Returns new slice
func reverseLine(pts orb.LineString) orb.LineString {
	inputLen := len(pts)
	output := make(orb.LineString, inputLen)
	for i, n := range pts {
		j := inputLen - i - 1
		output[j] = n
	}
	return output
}
