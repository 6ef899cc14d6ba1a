package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, optional YAML file and environment variables (OSM2PT_TILES_MAX_ZOOM → tiles.max_zoom).
// Empty path means that only defaults and environment are used
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("input.file", "")
	v.SetDefault("output.dir", "./tiles")
	v.SetDefault("output.formats", []string{"mvt"})
	v.SetDefault("output.gzip", false)
	v.SetDefault("tiles.min_zoom", 7)
	v.SetDefault("tiles.max_zoom", 14)
	v.SetDefault("merge.min_length", 0.5)
	v.SetDefault("merge.tolerance", 0.5)
	v.SetDefault("merge.buffer", 4)
	v.SetDefault("workers", 0)
	v.SetDefault("strict", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.verbose", false)
	v.SetDefault("metrics.addr", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "Can't read config file '%s'", path)
		}
	}

	v.SetEnvPrefix("OSM2PT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal config")
	}
	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
func (cfg *Config) Validate() error {
	err := validator.New().Struct(cfg)
	if err != nil {
		return errors.Wrap(err, "Config validation failed")
	}
	return nil
}
