package osm2pt

// RouteMerger stitches fragments of the same route into continuous lines within one render unit
type RouteMerger struct {
	options MergeOptions
}

// NewRouteMerger returns merger with DefaultMergeOptions unless other options are provided
func NewRouteMerger(options ...func(*RouteMerger)) *RouteMerger {
	merger := &RouteMerger{
		options: DefaultMergeOptions(),
	}
	for _, option := range options {
		option(merger)
	}
	return merger
}

func WithMergeOptions(opts MergeOptions) func(*RouteMerger) {
	return func(merger *RouteMerger) {
		merger.options = opts
	}
}

// PostProcess groups features by route key, drops brunnel and layer from every feature and merges each group.
// Merged features lose per-way brunnel and layer: continuity of route is preferred over styling of single ways.
// Features without route key end up in the same group. Errors of merging are returned as is
func (merger *RouteMerger) PostProcess(features []*Feature) ([]*Feature, error) {
	keys := []RouteKey{}
	groups := make(map[RouteKey][]*Feature)
	for _, feature := range features {
		key := feature.Attributes.RouteKey
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], feature)
	}
	result := make([]*Feature, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		stripped := make([]*Feature, len(group))
		for i, feature := range group {
			stripped[i] = feature.copyWithAttributes(feature.Attributes.Strip())
		}
		merged, err := MergeLineStrings(stripped, merger.options)
		if err != nil {
			return nil, err
		}
		result = append(result, merged...)
	}
	return result, nil
}
