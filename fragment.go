package osm2pt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Fragment is a single physical way which could be shared by several routes
type Fragment struct {
	WayID   osm.WayID
	Kind    FragmentKind
	Geom    orb.LineString
	Brunnel Brunnel
	// nil when `layer` tag is missing or malformed
	Layer *int
}

// IsLinear returns true if fragment could be rendered as a line
func (fragment *Fragment) IsLinear() bool {
	return fragment.Kind.IsLinear() && len(fragment.Geom) >= 2
}
