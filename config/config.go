package config

import (
	"fmt"
	"time"

	"uberclone/pkg/configparser"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		LogLevel string `env:"LOG_LEVEL" default:"DEBUG"`

		Server     ServerConfig
		Auth       AuthConfig
		Simulation SimulationConfig
	}

	ServerConfig struct {
		Host string `env:"SERVER_HOST" default:"0.0.0.0"`
		Port string `env:"SERVER_PORT" default:"3000"`
	}

	AuthConfig struct {
		AccessTokenTTL  time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" default:"15m"`
		RefreshTokenTTL time.Duration `env:"AUTH_REFRESH_TOKEN_TTL" default:"168h"`
		JWTSecret       string        `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}

	// SimulationConfig sets the fake network latency of each simulated
	// backend call. The reference delays are kept as defaults; tests run
	// with zero values.
	SimulationConfig struct {
		AuthLatency     time.Duration `env:"SIMULATION_AUTH_LATENCY" default:"1500ms"`
		LocationLatency time.Duration `env:"SIMULATION_LOCATION_LATENCY" default:"1s"`
		CatalogLatency  time.Duration `env:"SIMULATION_CATALOG_LATENCY" default:"1500ms"`
		PriceLatency    time.Duration `env:"SIMULATION_PRICE_LATENCY" default:"800ms"`
		BookingLatency  time.Duration `env:"SIMULATION_BOOKING_LATENCY" default:"2s"`
		HistoryLatency  time.Duration `env:"SIMULATION_HISTORY_LATENCY" default:"1200ms"`

		// Interval between driver-arrival updates pushed over the
		// booking websocket.
		DriverUpdateInterval time.Duration `env:"SIMULATION_DRIVER_UPDATE_INTERVAL" default:"5s"`
	}
)

// Addr returns the listen address of the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading environmental variables and parsing into the config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
