package osm2pt

// EmitFragment creates one feature per route membership of the fragment.
// Route-level attributes come from membership, brunnel and layer come from the fragment itself.
// Features do not share geometry or attributes, so they could be modified independently
func EmitFragment(fragment *Fragment, memberships []*RouteRelation) []*Feature {
	if len(memberships) == 0 || !fragment.IsLinear() {
		return nil
	}
	features := make([]*Feature, 0, len(memberships))
	for _, rel := range memberships {
		minZoom, maxZoom := rel.Route.ZoomRange()
		attrs := FeatureAttributes{
			RouteKey: rel.Key,
			Class:    rel.Route,
			Subclass: rel.Subclass,
			Ref:      rel.Ref,
			Network:  rel.Network,
			Operator: rel.Operator,
			Colour:   rel.Colour,
			Name:     rel.Name,
			Brunnel:  fragment.Brunnel,
			Layer:    fragment.Layer,
		}
		features = append(features, &Feature{
			Layer:        LAYER_NAME,
			Geom:         fragment.Geom.Clone(),
			BufferPixels: DEFAULT_BUFFER_PIXELS,
			MinZoom:      minZoom,
			MaxZoom:      maxZoom,
			MinPixelSize: 0,
			Attributes:   attrs.clone(),
		})
	}
	return features
}
