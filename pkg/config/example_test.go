package config_test

import (
	"fmt"

	"github.com/wonny/pairlens/backend/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	// Access configuration values
	fmt.Printf("Server running on port: %s\n", cfg.Port)
	fmt.Printf("Environment: %s\n", cfg.Env)
	fmt.Printf("Upstream: %s (%.0f req/s)\n", cfg.Upstream.BaseURL, cfg.Upstream.RequestsPerSecond)
	fmt.Printf("Price cache: %v / %d entries\n", cfg.Cache.PriceTTL, cfg.Cache.PriceMaxEntries)
}
