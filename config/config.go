package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Cache   CacheConfig
	State   StateConfig
	Market  MarketConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RatePerIP      int      `mapstructure:"rate_per_ip"`
}

// CatalogConfig holds upstream catalog API configuration
type CatalogConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RatePerSec float64       `mapstructure:"rate_per_sec"`
	Burst      int           `mapstructure:"burst"`
}

// CacheConfig holds the upstream read-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// StateConfig holds persisted client-state configuration
type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

// MarketConfig holds the market preference defaults
type MarketConfig struct {
	DefaultCondition string   `mapstructure:"default_condition"`
	CoreStores       []string `mapstructure:"core_stores"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/comparehub/")

	v.SetEnvPrefix("COMPAREHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8090")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})
	v.SetDefault("server.rate_per_ip", 100)

	v.SetDefault("catalog.base_url", "http://localhost:8080")
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("catalog.rate_per_sec", 10)
	v.SetDefault("catalog.burst", 20)

	v.SetDefault("cache.ttl", "5m")

	v.SetDefault("state.dir", ".comparehub")

	v.SetDefault("market.default_condition", "New")
	v.SetDefault("market.core_stores", []string{"Amazon", "Best Buy", "Walmart"})
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set COMPAREHUB_CATALOG_BASE_URL)")
	}
	if config.State.Dir == "" {
		return fmt.Errorf("state directory is required (set COMPAREHUB_STATE_DIR)")
	}
	if config.Catalog.RatePerSec <= 0 {
		return fmt.Errorf("catalog rate must be positive, got: %v", config.Catalog.RatePerSec)
	}
	return nil
}
