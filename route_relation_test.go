package osm2pt

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestIdentifyRelation(t *testing.T) {
	relation := &osm.Relation{
		ID: 101,
		Tags: osm.Tags{
			{Key: "type", Value: "route"},
			{Key: "route", Value: "bus"},
			{Key: "ref", Value: "42"},
			{Key: "network", Value: "N"},
			{Key: "operator", Value: "O"},
			{Key: "colour", Value: "#ff0000"},
			{Key: "name", Value: "Line 42"},
			{Key: "service", Value: "night"},
		},
	}
	rel, ok := IdentifyRelation(relation)
	if !ok {
		t.Fatalf("Relation %d should be identified as route", relation.ID)
	}
	correct := RouteRelation{
		ID:       101,
		Key:      RouteKey("bus|42|N|O|Line 42"),
		Route:    ROUTE_BUS,
		Subclass: "night",
		Ref:      "42",
		Network:  "N",
		Operator: "O",
		Colour:   "#ff0000",
		Name:     "Line 42",
	}
	if *rel != correct {
		t.Errorf("Identity should be %+v, but got %+v", correct, *rel)
	}
}

func TestIdentifyRelationCoach(t *testing.T) {
	relation := &osm.Relation{
		ID: 7,
		Tags: osm.Tags{
			{Key: "route", Value: "coach"},
			{Key: "service", Value: "long_distance"},
		},
	}
	rel, ok := IdentifyRelation(relation)
	if !ok {
		t.Fatalf("Coach relation should be identified")
	}
	if rel.Route != ROUTE_COACH {
		t.Errorf("Route type should be %s, but got %s", ROUTE_COACH, rel.Route)
	}
	if rel.Subclass != "coach" {
		t.Errorf("Subclass of coach route should be 'coach', but got '%s'", rel.Subclass)
	}
	if rel.Key != RouteKey("coach||||") {
		t.Errorf("Key should contain empty fields, but got '%s'", rel.Key)
	}
}

func TestIdentifyRelationMissingTags(t *testing.T) {
	relation := &osm.Relation{
		ID:   8,
		Tags: osm.Tags{{Key: "route", Value: "tram"}},
	}
	rel, ok := IdentifyRelation(relation)
	if !ok {
		t.Fatalf("Tram relation should be identified")
	}
	if rel.Ref != "" || rel.Network != "" || rel.Operator != "" || rel.Colour != "" || rel.Name != "" || rel.Subclass != "" {
		t.Errorf("Missing tags should give empty values, but got %+v", *rel)
	}
}

func TestIdentifyRelationNotRoute(t *testing.T) {
	relations := []*osm.Relation{
		{ID: 1, Tags: osm.Tags{{Key: "route", Value: "hiking"}}},
		{ID: 2, Tags: osm.Tags{{Key: "type", Value: "multipolygon"}}},
		{ID: 3, Tags: osm.Tags{{Key: "route", Value: "road"}}},
		{ID: 4},
	}
	for _, relation := range relations {
		if rel, ok := IdentifyRelation(relation); ok {
			t.Errorf("Relation %d should not be identified, but got %s", relation.ID, rel)
		}
	}
}

func TestRouteKeyEquality(t *testing.T) {
	forward := &osm.Relation{
		ID: 1,
		Tags: osm.Tags{
			{Key: "route", Value: "bus"},
			{Key: "ref", Value: "42"},
			{Key: "name", Value: "Line 42"},
			{Key: "colour", Value: "red"},
		},
	}
	backward := &osm.Relation{
		ID: 2,
		Tags: osm.Tags{
			{Key: "route", Value: "bus"},
			{Key: "ref", Value: "42"},
			{Key: "name", Value: "Line 42"},
			{Key: "colour", Value: "blue"},
		},
	}
	trolleybus := &osm.Relation{
		ID: 3,
		Tags: osm.Tags{
			{Key: "route", Value: "trolleybus"},
			{Key: "ref", Value: "42"},
			{Key: "name", Value: "Line 42"},
		},
	}
	identified := IdentifyRelations([]*osm.Relation{forward, backward, trolleybus})
	if len(identified) != 3 {
		t.Fatalf("Should be 3 identified relations, but got %d", len(identified))
	}
	if identified[0].Key != identified[1].Key {
		t.Errorf("Colour should not take part in route key: '%s' vs '%s'", identified[0].Key, identified[1].Key)
	}
	if identified[0].Key == identified[2].Key {
		t.Errorf("Route type should take part in route key: '%s'", identified[0].Key)
	}
	for i, rel := range identified {
		if rel.ID != osm.RelationID(i+1) {
			t.Errorf("Order of relations should be kept. Expected %d at %d, but got %d", i+1, i, rel.ID)
		}
	}
}

func TestRouteTypeZoomRange(t *testing.T) {
	correct := map[RouteType][2]int{
		ROUTE_FERRY:      {7, 14},
		ROUTE_TRAIN:      {8, 14},
		ROUTE_SUBWAY:     {8, 14},
		ROUTE_LIGHT_RAIL: {8, 14},
		ROUTE_MONORAIL:   {8, 14},
		ROUTE_TRAM:       {11, 14},
		ROUTE_BUS:        {12, 14},
		ROUTE_TROLLEYBUS: {12, 14},
		ROUTE_COACH:      {12, 14},
	}
	for routeType, zooms := range correct {
		minZoom, maxZoom := routeType.ZoomRange()
		if minZoom != zooms[0] || maxZoom != zooms[1] {
			t.Errorf("Zoom range of %s should be [%d, %d], but got [%d, %d]", routeType, zooms[0], zooms[1], minZoom, maxZoom)
		}
	}
}
