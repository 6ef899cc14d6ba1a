package osm2pt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type Node struct {
	node osm.Node
	ID   osm.NodeID
}

// Point returns WGS84 coordinates of the node
func (n *Node) Point() orb.Point {
	return orb.Point{n.node.Lon, n.node.Lat}
}
