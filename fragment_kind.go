package osm2pt

// FragmentKind is a kind of linear OSM object which could carry public transport routes
type FragmentKind uint16

const (
	FRAGMENT_HIGHWAY = FragmentKind(iota + 1)
	FRAGMENT_RAILWAY
	FRAGMENT_SHIPWAY
	FRAGMENT_UNDEFINED = FragmentKind(0)
)

func (iotaIdx FragmentKind) String() string {
	if iotaIdx > FRAGMENT_SHIPWAY {
		return "undefined"
	}
	return [...]string{"undefined", "highway", "railway", "shipway"}[iotaIdx]
}

// IsLinear returns true if fragments of such kind could be rendered as lines
func (iotaIdx FragmentKind) IsLinear() bool {
	return iotaIdx >= FRAGMENT_HIGHWAY && iotaIdx <= FRAGMENT_SHIPWAY
}
