package osm2pt

import (
	"fmt"

	"github.com/paulmach/orb"
)

// FeatureAttributes are attributes of rendered feature.
// RouteKey is used for grouping only and never reaches the output properties
type FeatureAttributes struct {
	RouteKey RouteKey
	Class    RouteType
	Subclass string
	Ref      string
	Network  string
	Operator string
	Colour   string
	Name     string
	Brunnel  Brunnel
	Layer    *int
}

// Strip returns copy of attributes without per-way attributes (brunnel and layer) which prevent fragments of the same route from merging
func (attrs FeatureAttributes) Strip() FeatureAttributes {
	stripped := attrs
	stripped.Brunnel = BRUNNEL_NONE
	stripped.Layer = nil
	return stripped
}

// Equal returns true if every attribute (route key included) matches
func (attrs FeatureAttributes) Equal(other FeatureAttributes) bool {
	if attrs.Layer == nil || other.Layer == nil {
		if attrs.Layer != other.Layer {
			return false
		}
	} else if *attrs.Layer != *other.Layer {
		return false
	}
	a, b := attrs, other
	a.Layer, b.Layer = nil, nil
	return a == b
}

func (attrs FeatureAttributes) clone() FeatureAttributes {
	cloned := attrs
	if attrs.Layer != nil {
		layer := *attrs.Layer
		cloned.Layer = &layer
	}
	return cloned
}

// Properties returns render visible attributes. Empty values are omitted
func (attrs FeatureAttributes) Properties() map[string]interface{} {
	props := make(map[string]interface{}, 9)
	if attrs.Class != ROUTE_UNDEFINED {
		props["class"] = attrs.Class.String()
	}
	setIfNotEmpty(props, "subclass", attrs.Subclass)
	setIfNotEmpty(props, "ref", attrs.Ref)
	setIfNotEmpty(props, "network", attrs.Network)
	setIfNotEmpty(props, "operator", attrs.Operator)
	setIfNotEmpty(props, "colour", attrs.Colour)
	setIfNotEmpty(props, "name", attrs.Name)
	if attrs.Brunnel != BRUNNEL_NONE {
		props["brunnel"] = attrs.Brunnel.String()
	}
	if attrs.Layer != nil {
		props["layer"] = *attrs.Layer
	}
	return props
}

func setIfNotEmpty(props map[string]interface{}, key, value string) {
	if value != "" {
		props[key] = value
	}
}

// Feature is a line feature of the output layer
type Feature struct {
	Layer        string
	Geom         orb.Geometry
	BufferPixels float64
	MinZoom      int
	MaxZoom      int
	MinPixelSize float64
	Attributes   FeatureAttributes
}

func (feature *Feature) String() string {
	return fmt.Sprintf("Feature '%s' [%d-%d] %s: %s", feature.Layer, feature.MinZoom, feature.MaxZoom, feature.Attributes.RouteKey, feature.Geom.GeoJSONType())
}

// VisibleAt returns true if feature should be rendered on given zoom
func (feature *Feature) VisibleAt(zoom int) bool {
	return zoom >= feature.MinZoom && zoom <= feature.MaxZoom
}

// copyWithGeometry returns new feature with the same settings and attributes but with another geometry
func (feature *Feature) copyWithGeometry(geom orb.Geometry) *Feature {
	return &Feature{
		Layer:        feature.Layer,
		Geom:         geom,
		BufferPixels: feature.BufferPixels,
		MinZoom:      feature.MinZoom,
		MaxZoom:      feature.MaxZoom,
		MinPixelSize: feature.MinPixelSize,
		Attributes:   feature.Attributes.clone(),
	}
}

// copyWithAttributes returns new feature with the same settings and geometry but with another attributes
func (feature *Feature) copyWithAttributes(attrs FeatureAttributes) *Feature {
	copied := feature.copyWithGeometry(feature.Geom)
	copied.Attributes = attrs
	return copied
}
