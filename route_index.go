package osm2pt

import (
	"github.com/paulmach/osm"
)

// RouteIndex is a side table which binds identified routes with their relations and member ways.
// It should be treated as read-only once filled
type RouteIndex struct {
	relations []*RouteRelation
	byID      map[osm.RelationID]*RouteRelation
	byKey     map[RouteKey][]*RouteRelation
	// Memberships are kept in order of relations appearance
	wayMembers map[osm.WayID][]*RouteRelation
}

// NewRouteIndex returns empty index
func NewRouteIndex() *RouteIndex {
	return &RouteIndex{
		relations:  []*RouteRelation{},
		byID:       make(map[osm.RelationID]*RouteRelation),
		byKey:      make(map[RouteKey][]*RouteRelation),
		wayMembers: make(map[osm.WayID][]*RouteRelation),
	}
}

// Add registers identified relation and its way members.
// A way gets at most one membership per RouteKey: direction variants of the same line collapse into one route
func (idx *RouteIndex) Add(rel *RouteRelation, members osm.Members) {
	if _, ok := idx.byID[rel.ID]; ok {
		return
	}
	idx.relations = append(idx.relations, rel)
	idx.byID[rel.ID] = rel
	idx.byKey[rel.Key] = append(idx.byKey[rel.Key], rel)
	for _, member := range members {
		if member.Type != osm.TypeWay {
			continue
		}
		wayID := osm.WayID(member.Ref)
		if idx.hasMembership(wayID, rel.Key) {
			continue
		}
		idx.wayMembers[wayID] = append(idx.wayMembers[wayID], rel)
	}
}

func (idx *RouteIndex) hasMembership(wayID osm.WayID, key RouteKey) bool {
	for _, rel := range idx.wayMembers[wayID] {
		if rel.Key == key {
			return true
		}
	}
	return false
}

// ByID returns identified relation by its OSM identifier
func (idx *RouteIndex) ByID(id osm.RelationID) (*RouteRelation, bool) {
	rel, ok := idx.byID[id]
	return rel, ok
}

// ByKey returns every relation which has been collapsed into given route
func (idx *RouteIndex) ByKey(key RouteKey) []*RouteRelation {
	return idx.byKey[key]
}

// MembershipsOf returns ordered list of routes the way belongs to
func (idx *RouteIndex) MembershipsOf(wayID osm.WayID) []*RouteRelation {
	return idx.wayMembers[wayID]
}

// HasWay returns true if way is a member of at least one route
func (idx *RouteIndex) HasWay(wayID osm.WayID) bool {
	return len(idx.wayMembers[wayID]) > 0
}

// Relations returns identified relations in order of registration
func (idx *RouteIndex) Relations() []*RouteRelation {
	return idx.relations
}

// RoutesNum returns number of distinct route keys
func (idx *RouteIndex) RoutesNum() int {
	return len(idx.byKey)
}
