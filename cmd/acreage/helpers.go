package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/at-ishikawa/acreage/internal/config"
	"github.com/at-ishikawa/acreage/internal/conversion"
	"github.com/at-ishikawa/acreage/internal/practice"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.Display.Color {
		color.NoColor = true
	}
	return cfg, nil
}

// newGenerator builds a generator from the configuration. Flags override it when they are set,
// and a maxAcres of 0 means the flag is not set.
func newGenerator(cfg *config.Config, seed uint64, direction conversion.Direction, maxAcres int) (*practice.Generator, error) {
	if maxAcres == 0 {
		maxAcres = cfg.Practice.MaxAcres
	}
	if maxAcres < 1 || maxAcres > practice.MaxAcresLimit {
		return nil, fmt.Errorf("--max-acres must be between 1 and %d, got %d", practice.MaxAcresLimit, maxAcres)
	}
	if direction == "" {
		direction = cfg.Practice.ConversionDirection()
	}
	return practice.NewGenerator(practice.NewRand(seed), maxAcres, direction), nil
}
