package config

// Config holds all application configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Tiles   TilesConfig   `mapstructure:"tiles"`
	Merge   MergeConfig   `mapstructure:"merge"`
	Workers int           `mapstructure:"workers" validate:"gte=0"`
	Strict  bool          `mapstructure:"strict"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// InputConfig points to OSM file (*.osm, *.xml, *.pbf, *.osm.pbf)
type InputConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

// OutputConfig contains output destinations. Empty formats list disables writing
type OutputConfig struct {
	Dir     string   `mapstructure:"dir" validate:"required"`
	Formats []string `mapstructure:"formats" validate:"dive,oneof=geojson csv mvt"`
	Gzip    bool     `mapstructure:"gzip"`
}

// TilesConfig is the zoom range of produced tiles
type TilesConfig struct {
	MinZoom int `mapstructure:"min_zoom" validate:"gte=0,lte=22"`
	MaxZoom int `mapstructure:"max_zoom" validate:"gte=0,lte=22,gtefield=MinZoom"`
}

// MergeConfig contains line merging parameters in pixels
type MergeConfig struct {
	MinLength float64 `mapstructure:"min_length" validate:"gte=0"`
	Tolerance float64 `mapstructure:"tolerance"`
	Buffer    float64 `mapstructure:"buffer"`
}

// LogConfig configures slog default logger
type LogConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format  string `mapstructure:"format" validate:"oneof=json text"`
	Verbose bool   `mapstructure:"verbose"`
}

// MetricsConfig configures Prometheus endpoint. Empty address disables it
type MetricsConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}
