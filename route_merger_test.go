package osm2pt

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// routeFeatures emits features for two adjacent ways of the same bus route, the first of them is a bridge
func routeFeatures() []*Feature {
	rel, _ := IdentifyRelation(&osm.Relation{
		ID: 1,
		Tags: osm.Tags{
			{Key: "route", Value: "bus"},
			{Key: "ref", Value: "42"},
			{Key: "network", Value: "N"},
			{Key: "operator", Value: "O"},
			{Key: "name", Value: "Line 42"},
		},
	})
	layer := 1
	fragmentA := &Fragment{WayID: 1, Kind: FRAGMENT_HIGHWAY, Geom: orb.LineString{{0, 0}, {1, 0}}, Brunnel: BRUNNEL_BRIDGE, Layer: &layer}
	fragmentB := &Fragment{WayID: 2, Kind: FRAGMENT_HIGHWAY, Geom: orb.LineString{{1, 0}, {2, 0}}}
	features := EmitFragment(fragmentA, []*RouteRelation{rel})
	features = append(features, EmitFragment(fragmentB, []*RouteRelation{rel})...)
	return features
}

func TestPostProcessBridgeMerge(t *testing.T) {
	features := routeFeatures()
	if len(features) != 2 {
		t.Fatalf("Should be 2 emitted features, but got %d", len(features))
	}

	merger := NewRouteMerger(WithMergeOptions(MergeOptions{
		MinLength: 0.5,
		Tolerance: -1,
		Buffer:    DEFAULT_BUFFER_PIXELS,
		Extent:    TILE_EXTENT,
	}))
	merged, err := merger.PostProcess(features)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 1 {
		t.Fatalf("Should be single merged feature, but got %d", len(merged))
	}
	line, ok := merged[0].Geom.(orb.LineString)
	if !ok {
		t.Fatalf("Geometry should be LineString, but got %s", merged[0].Geom.GeoJSONType())
	}
	correct := orb.LineString{{0, 0}, {1, 0}, {2, 0}}
	if !line.Equal(correct) {
		t.Errorf("Merged line should be %v, but got %v", correct, line)
	}
	attrs := merged[0].Attributes
	if attrs.Brunnel != BRUNNEL_NONE || attrs.Layer != nil {
		t.Errorf("Brunnel and layer should be stripped, but got '%s' and %v", attrs.Brunnel, attrs.Layer)
	}
	if attrs.Ref != "42" || attrs.Network != "N" || attrs.Operator != "O" || attrs.Name != "Line 42" || attrs.Class != ROUTE_BUS {
		t.Errorf("Route attributes should be kept, but got %+v", attrs)
	}
	props := attrs.Properties()
	if _, ok := props["brunnel"]; ok {
		t.Errorf("Merged feature should not carry brunnel property")
	}
	// Inputs are not modified
	if features[0].Attributes.Brunnel != BRUNNEL_BRIDGE || features[0].Attributes.Layer == nil {
		t.Errorf("Input features should keep their attributes")
	}
}

func TestPostProcessDefaultOptions(t *testing.T) {
	merged, err := NewRouteMerger().PostProcess(routeFeatures())
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 1 {
		t.Fatalf("Should be single merged feature, but got %d", len(merged))
	}
	line, ok := merged[0].Geom.(orb.LineString)
	if !ok {
		t.Fatalf("Geometry should be LineString, but got %s", merged[0].Geom.GeoJSONType())
	}
	// Default tolerance trades the exact joint for fewer points: collinear (1, 0) is simplified away
	correct := orb.LineString{{0, 0}, {2, 0}}
	if !line.Equal(correct) {
		t.Errorf("Merged line should be %v, but got %v", correct, line)
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	merger := NewRouteMerger()
	once, err := merger.PostProcess(routeFeatures())
	if err != nil {
		t.Fatal(err)
	}
	twice, err := merger.PostProcess(once)
	if err != nil {
		t.Fatal(err)
	}
	if len(once) != len(twice) {
		t.Fatalf("Number of features should be the same, but got %d and %d", len(once), len(twice))
	}
	for i := range once {
		if !orb.Equal(once[i].Geom, twice[i].Geom) {
			t.Errorf("Feature %d: geometry changed on repeated merge: %v vs %v", i, once[i].Geom, twice[i].Geom)
		}
		if !once[i].Attributes.Equal(twice[i].Attributes) {
			t.Errorf("Feature %d: attributes changed on repeated merge", i)
		}
	}
}

func TestPostProcessSeparateRoutes(t *testing.T) {
	keyA := NewRouteKey(ROUTE_BUS, "1", "", "", "")
	keyB := NewRouteKey(ROUTE_TRAM, "1", "", "", "")
	features := []*Feature{
		lineFeature(keyA, orb.LineString{{0, 0}, {10, 0}}),
		lineFeature(keyB, orb.LineString{{10, 0}, {20, 0}}),
		lineFeature(keyA, orb.LineString{{10, 0}, {20, 0}}),
		lineFeature("", orb.LineString{{0, 50}, {10, 50}}),
		lineFeature("", orb.LineString{{10, 50}, {20, 50}}),
	}
	merged, err := NewRouteMerger().PostProcess(features)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 3 {
		t.Fatalf("Should be 3 merged features, but got %d", len(merged))
	}
	correctKeys := []RouteKey{keyA, keyB, ""}
	for i, feature := range merged {
		if feature.Attributes.RouteKey != correctKeys[i] {
			t.Errorf("Feature %d: route key should be '%s', but got '%s'", i, correctKeys[i], feature.Attributes.RouteKey)
		}
		if _, ok := feature.Geom.(orb.LineString); !ok {
			t.Errorf("Feature %d: geometry should be merged into LineString, but got %s", i, feature.Geom.GeoJSONType())
		}
	}
}

func TestPostProcessError(t *testing.T) {
	key := NewRouteKey(ROUTE_BUS, "1", "", "", "")
	features := []*Feature{
		lineFeature(key, orb.LineString{{0, 0}, {10, 0}}),
		lineFeature(key, orb.LineString{{10, 0}}),
	}
	merged, err := NewRouteMerger().PostProcess(features)
	if err == nil {
		t.Errorf("Malformed geometry should cause an error")
	}
	if merged != nil {
		t.Errorf("No features should be returned on error, but got %d", len(merged))
	}
}
