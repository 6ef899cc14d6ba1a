package osm2pt

import (
	"fmt"
	"strings"

	"github.com/paulmach/osm"
)

const routeKeySeparator = "|"

// RouteKey identifies logical route. Relations sharing route type, ref, network, operator and name are the same route
type RouteKey string

// NewRouteKey joins route-level fields in the fixed order: route, ref, network, operator, name
func NewRouteKey(route RouteType, ref, network, operator, name string) RouteKey {
	return RouteKey(strings.Join([]string{route.String(), ref, network, operator, name}, routeKeySeparator))
}

// RouteRelation is the identity of public transport route relation.
// It is built once per relation and never changes afterwards
type RouteRelation struct {
	ID       osm.RelationID
	Key      RouteKey
	Route    RouteType
	Subclass string
	Ref      string
	Network  string
	Operator string
	Colour   string
	Name     string
}

func (rel *RouteRelation) String() string {
	return fmt.Sprintf("Relation %d (%s): %s", rel.ID, rel.Route, rel.Key)
}

// IdentifyRelation returns route identity for given relation if the relation is one of supported public transport routes
func IdentifyRelation(relation *osm.Relation) (*RouteRelation, bool) {
	routeType := getRouteType(relation.Tags.Find("route"))
	if routeType == ROUTE_UNDEFINED {
		return nil, false
	}
	subclass := relation.Tags.Find("service")
	if routeType == ROUTE_COACH {
		subclass = ROUTE_COACH.String()
	}
	ref := relation.Tags.Find("ref")
	network := relation.Tags.Find("network")
	operator := relation.Tags.Find("operator")
	name := relation.Tags.Find("name")
	return &RouteRelation{
		ID:       relation.ID,
		Key:      NewRouteKey(routeType, ref, network, operator, name),
		Route:    routeType,
		Subclass: subclass,
		Ref:      ref,
		Network:  network,
		Operator: operator,
		Colour:   relation.Tags.Find("colour"),
		Name:     name,
	}, true
}

// IdentifyRelations applies IdentifyRelation to every relation. Order of identified relations is preserved
func IdentifyRelations(relations []*osm.Relation) []*RouteRelation {
	identified := make([]*RouteRelation, 0, len(relations))
	for _, relation := range relations {
		if rel, ok := IdentifyRelation(relation); ok {
			identified = append(identified, rel)
		}
	}
	return identified
}
