package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, read from configs/config.yaml
// with environment variable overrides.
type Config struct {
	ServerAddress     string  `mapstructure:"server_address"`
	ItemsFile         string  `mapstructure:"items_file"`
	NeighborhoodsFile string  `mapstructure:"neighborhoods_file"`
	PostalFile        string  `mapstructure:"postal_file"`
	DefaultRadiusKm   float64 `mapstructure:"default_radius_km"`
}

// LoadConfig reads configuration from the given directory. A missing
// config file is not an error; defaults apply.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server_address", ":8080")
	v.SetDefault("items_file", "data/items.json")
	v.SetDefault("neighborhoods_file", "data/neighborhoods.json")
	v.SetDefault("postal_file", "data/pincodes.csv")
	v.SetDefault("default_radius_km", 50.0)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
