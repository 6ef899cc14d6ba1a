package osm2pt

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are counters of processing stages. Each instance owns its registry
type Metrics struct {
	Registry            *prometheus.Registry
	RelationsIdentified prometheus.Counter
	FragmentsEmitted    prometheus.Counter
	FeaturesEmitted     prometheus.Counter
	FeaturesMerged      prometheus.Counter
	TilesMerged         prometheus.Counter
	TileMergeDuration   prometheus.Histogram
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		Registry: registry,
		RelationsIdentified: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "osm2pt",
			Subsystem: "routes",
			Name:      "relations_identified_total",
			Help:      "Total relations identified as public transport routes",
		}),
		FragmentsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "osm2pt",
			Subsystem: "routes",
			Name:      "fragments_emitted_total",
			Help:      "Total ways which produced at least one feature",
		}),
		FeaturesEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "osm2pt",
			Subsystem: "routes",
			Name:      "features_emitted_total",
			Help:      "Total features emitted before merging",
		}),
		FeaturesMerged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "osm2pt",
			Subsystem: "tiles",
			Name:      "features_merged_total",
			Help:      "Total features left in tiles after merging",
		}),
		TilesMerged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "osm2pt",
			Subsystem: "tiles",
			Name:      "tiles_merged_total",
			Help:      "Total tiles passed through route merging",
		}),
		TileMergeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "osm2pt",
			Subsystem: "tiles",
			Name:      "merge_duration_seconds",
			Help:      "Duration of route merging for single tile",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}
