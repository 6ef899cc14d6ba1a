package osm2pt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// WayData is a way read from OSM file with flattened tags
type WayData struct {
	highway string
	railway string
	route   string
	bridge  string
	tunnel  string
	ford    string
	TagMap  osm.Tags
	Nodes   []osm.NodeID
	ID      osm.WayID
	layer   *int
}

func (way *WayData) processTags(verbose bool) {
	way.highway = way.TagMap.Find("highway")
	way.railway = way.TagMap.Find("railway")
	way.route = way.TagMap.Find("route")
	way.bridge = way.TagMap.Find("bridge")
	way.tunnel = way.TagMap.Find("tunnel")
	way.ford = way.TagMap.Find("ford")

	layer := strings.TrimSpace(way.TagMap.Find("layer"))
	if layer != "" {
		layerValue, err := strconv.Atoi(layer)
		if err != nil {
			if verbose {
				fmt.Printf("[WARNING]: Provided `layer` tag value should be an integer. Got '%s'. Way ID: '%d'\n", layer, way.ID)
			}
		} else {
			way.layer = &layerValue
		}
	}
}

func (way *WayData) isHighway() bool {
	if way.highway == "" {
		return false
	}
	_, negligible := negligibleHighwayTags[way.highway]
	return !negligible
}

func (way *WayData) isRailway() bool {
	_, ok := railwayTags[way.railway]
	return ok
}

func (way *WayData) isShipway() bool {
	_, ok := shipwayTags[way.route]
	return ok
}

func (way *WayData) kind() FragmentKind {
	switch {
	case way.isHighway():
		return FRAGMENT_HIGHWAY
	case way.isRailway():
		return FRAGMENT_RAILWAY
	case way.isShipway():
		return FRAGMENT_SHIPWAY
	default:
		return FRAGMENT_UNDEFINED
	}
}

func (way *WayData) brunnel() Brunnel {
	_, isBridge := yesValues[way.bridge]
	_, isTunnel := yesValues[way.tunnel]
	_, isFord := yesValues[way.ford]
	return getBrunnel(isBridge, isTunnel, isFord)
}

// toFragment builds fragment using nodes coordinates. Returns error if some of way's nodes are missing
func (way *WayData) toFragment(nodes map[osm.NodeID]*Node) (*Fragment, error) {
	geom := make(orb.LineString, 0, len(way.Nodes))
	for _, nodeID := range way.Nodes {
		node, ok := nodes[nodeID]
		if !ok {
			return nil, fmt.Errorf("No such node '%d'. Way ID: '%d'", nodeID, way.ID)
		}
		geom = append(geom, node.Point())
	}
	return &Fragment{
		WayID:   way.ID,
		Kind:    way.kind(),
		Geom:    geom,
		Brunnel: way.brunnel(),
		Layer:   way.layer,
	}, nil
}
