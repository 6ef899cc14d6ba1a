package osm2pt

// Brunnel is a bridge/tunnel/ford classification of a single way
type Brunnel uint16

const (
	BRUNNEL_BRIDGE = Brunnel(iota + 1)
	BRUNNEL_TUNNEL
	BRUNNEL_FORD
	BRUNNEL_NONE = Brunnel(0)
)

func (iotaIdx Brunnel) String() string {
	if iotaIdx > BRUNNEL_FORD {
		return ""
	}
	return [...]string{"", "bridge", "tunnel", "ford"}[iotaIdx]
}

// getBrunnel picks classification for given flags. Bridge wins over tunnel, tunnel wins over ford
func getBrunnel(isBridge, isTunnel, isFord bool) Brunnel {
	switch {
	case isBridge:
		return BRUNNEL_BRIDGE
	case isTunnel:
		return BRUNNEL_TUNNEL
	case isFord:
		return BRUNNEL_FORD
	default:
		return BRUNNEL_NONE
	}
}
