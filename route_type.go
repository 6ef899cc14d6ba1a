package osm2pt

type RouteType uint16

const (
	ROUTE_BUS = RouteType(iota + 1)
	ROUTE_COACH
	ROUTE_TRAIN
	ROUTE_TRAM
	ROUTE_SUBWAY
	ROUTE_FERRY
	ROUTE_TROLLEYBUS
	ROUTE_MONORAIL
	ROUTE_LIGHT_RAIL
	ROUTE_UNDEFINED = RouteType(0)
)

func (iotaIdx RouteType) String() string {
	if iotaIdx > ROUTE_LIGHT_RAIL {
		return "undefined"
	}
	return [...]string{"undefined", "bus", "coach", "train", "tram", "subway", "ferry", "trolleybus", "monorail", "light_rail"}[iotaIdx]
}

// getRouteType returns route type for given value of `route` tag. ROUTE_UNDEFINED means that relation is not a public transport route
func getRouteType(route string) RouteType {
	if routeType, ok := routeTypes[route]; ok {
		return routeType
	}
	return ROUTE_UNDEFINED
}

// ZoomRange returns the minimum and maximum zoom level the route is rendered on
func (iotaIdx RouteType) ZoomRange() (int, int) {
	minZoom, ok := minZoomByRouteType[iotaIdx]
	if !ok {
		minZoom = DEFAULT_MIN_ZOOM
	}
	return minZoom, DEFAULT_MAX_ZOOM
}
