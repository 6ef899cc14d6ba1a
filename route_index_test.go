package osm2pt

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestRouteIndex(t *testing.T) {
	bus := &RouteRelation{ID: 1, Key: NewRouteKey(ROUTE_BUS, "1", "", "", "Bus 1"), Route: ROUTE_BUS}
	busBack := &RouteRelation{ID: 2, Key: NewRouteKey(ROUTE_BUS, "1", "", "", "Bus 1"), Route: ROUTE_BUS}
	tram := &RouteRelation{ID: 3, Key: NewRouteKey(ROUTE_TRAM, "5", "", "", "Tram 5"), Route: ROUTE_TRAM}

	idx := NewRouteIndex()
	idx.Add(bus, osm.Members{
		{Type: osm.TypeWay, Ref: 10},
		{Type: osm.TypeWay, Ref: 11},
		{Type: osm.TypeNode, Ref: 10, Role: "stop"},
	})
	idx.Add(busBack, osm.Members{
		{Type: osm.TypeWay, Ref: 11},
		{Type: osm.TypeWay, Ref: 10},
	})
	idx.Add(tram, osm.Members{
		{Type: osm.TypeWay, Ref: 11},
		{Type: osm.TypeRelation, Ref: 12},
	})
	// Duplicate relation must be ignored
	idx.Add(tram, osm.Members{{Type: osm.TypeWay, Ref: 13}})

	if len(idx.Relations()) != 3 {
		t.Errorf("Should be 3 relations, but got %d", len(idx.Relations()))
	}
	if idx.RoutesNum() != 2 {
		t.Errorf("Should be 2 distinct routes, but got %d", idx.RoutesNum())
	}
	if len(idx.ByKey(bus.Key)) != 2 {
		t.Errorf("Both bus directions should share route key, but got %d relation(s)", len(idx.ByKey(bus.Key)))
	}
	if rel, ok := idx.ByID(3); !ok || rel != tram {
		t.Errorf("Relation 3 should be found by ID")
	}

	memberships := idx.MembershipsOf(11)
	if len(memberships) != 2 {
		t.Fatalf("Way 11 should belong to 2 routes, but got %d", len(memberships))
	}
	if memberships[0] != bus || memberships[1] != tram {
		t.Errorf("Memberships should follow relations order, but got %s, %s", memberships[0], memberships[1])
	}
	if len(idx.MembershipsOf(10)) != 1 {
		t.Errorf("Way 10 should belong to 1 route, but got %d", len(idx.MembershipsOf(10)))
	}
	if idx.HasWay(12) {
		t.Errorf("Relation member should not be treated as way")
	}
	if idx.HasWay(13) {
		t.Errorf("Members of duplicated relation should be ignored")
	}
	if len(idx.MembershipsOf(999)) != 0 {
		t.Errorf("Unknown way should not have memberships")
	}
}
