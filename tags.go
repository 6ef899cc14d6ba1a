package osm2pt

const (
	// LAYER_NAME is the name of the output layer
	LAYER_NAME = "public_transport"

	DEFAULT_MIN_ZOOM      = 12
	DEFAULT_MAX_ZOOM      = 14
	DEFAULT_BUFFER_PIXELS = 4
)

var (
	routeTypes = map[string]RouteType{
		"bus":        ROUTE_BUS,
		"coach":      ROUTE_COACH,
		"train":      ROUTE_TRAIN,
		"tram":       ROUTE_TRAM,
		"subway":     ROUTE_SUBWAY,
		"ferry":      ROUTE_FERRY,
		"trolleybus": ROUTE_TROLLEYBUS,
		"monorail":   ROUTE_MONORAIL,
		"light_rail": ROUTE_LIGHT_RAIL,
	}

	// Routes which are not listed here fall back to DEFAULT_MIN_ZOOM
	minZoomByRouteType = map[RouteType]int{
		ROUTE_FERRY:      7,
		ROUTE_TRAIN:      8,
		ROUTE_SUBWAY:     8,
		ROUTE_LIGHT_RAIL: 8,
		ROUTE_MONORAIL:   8,
		ROUTE_TRAM:       11,
	}

	railwayTags = map[string]struct{}{
		"rail":         {},
		"light_rail":   {},
		"subway":       {},
		"narrow_gauge": {},
		"tram":         {},
		"monorail":     {},
		"funicular":    {},
		"preserved":    {},
	}

	shipwayTags = map[string]struct{}{
		"ferry": {},
	}

	negligibleHighwayTags = map[string]struct{}{
		"construction": {},
		"proposed":     {},
		"raceway":      {},
		"planned":      {},
		"abandoned":    {},
		"dismantled":   {},
		"disused":      {},
		"razed":        {},
		"rest_area":    {},
		"services":     {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Key:bridge
	yesValues = map[string]struct{}{
		"yes": {},
	}
)
