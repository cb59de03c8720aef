package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
uberclone - simulated ride-booking backend

Usage:
  uberclone [-config-path config.yaml]

Configuration is read from the YAML file, overridable via environment
variables (SERVER_PORT, AUTH_JWT_SECRET, SIMULATION_*_LATENCY, LOG_LEVEL).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig dumps the effective configuration on startup.
func PrintConfig(cfg *Config) {
	fmt.Printf("server:      %s\n", cfg.Server.Addr())
	fmt.Printf("log level:   %s\n", cfg.LogLevel)
	fmt.Printf("access ttl:  %s\n", cfg.Auth.AccessTokenTTL)
	fmt.Printf("refresh ttl: %s\n", cfg.Auth.RefreshTokenTTL)
	fmt.Printf("simulated latencies: auth=%s location=%s catalog=%s price=%s booking=%s history=%s\n",
		cfg.Simulation.AuthLatency,
		cfg.Simulation.LocationLatency,
		cfg.Simulation.CatalogLatency,
		cfg.Simulation.PriceLatency,
		cfg.Simulation.BookingLatency,
		cfg.Simulation.HistoryLatency,
	)
}
