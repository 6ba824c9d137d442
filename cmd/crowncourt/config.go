package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	Seed         int64         `env:"CROWNCOURT_SEED" envDefault:"42"`
	DBPath       string        `env:"CROWNCOURT_DB" envDefault:"data/crowncourt.db"`
	APIPort      int           `env:"CROWNCOURT_API_PORT" envDefault:"8080"`
	AdminKey     string        `env:"CROWNCOURT_ADMIN_KEY"`
	DayInterval  time.Duration `env:"CROWNCOURT_DAY_INTERVAL" envDefault:"1s"`
	MapRadius    int           `env:"CROWNCOURT_MAP_RADIUS" envDefault:"12"`
	SeedKingdoms int           `env:"CROWNCOURT_SEED_KINGDOMS" envDefault:"3"`
	StartingGold int           `env:"CROWNCOURT_STARTING_GOLD" envDefault:"500"`

	// Host-side scalars fed into the daily tick. In the full game these
	// come from the combat and skill subsystems.
	ThreatLevel    float64 `env:"CROWNCOURT_THREAT_LEVEL" envDefault:"1"`
	DiplomacyBonus float64 `env:"CROWNCOURT_DIPLOMACY_BONUS" envDefault:"0"`

	// Optional random.org API key for true randomness. Unset = seeded.
	RandomOrgKey string `env:"RANDOM_ORG_KEY"`
}

// loadConfig parses configuration from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
