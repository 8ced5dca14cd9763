package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings.
type Config struct {
	// Count is the number of listings to generate.
	Count int `yaml:"count"      env:"SEEDER_COUNT"      env-default:"50"`
	// Sellers is the number of seller accounts listings are spread over.
	// Zero means one per three listings, capped at 15.
	Sellers   int    `yaml:"sellers"    env:"SEEDER_SELLERS"`
	BatchSize int    `yaml:"batch_size" env:"SEEDER_BATCH_SIZE" env-default:"10"`
	Password  string `yaml:"password"   env:"SEEDER_PASSWORD"   env-default:"Test@123456"`
	// RandSeed makes a run reproducible. Zero seeds from the clock.
	RandSeed uint64 `yaml:"rand_seed"  env:"SEEDER_RAND_SEED"`
	DryRun   bool   `yaml:"dry_run"    env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}

// sellerCount resolves the number of seller accounts for cfg.
func (c Config) sellerCount() int {
	if c.Sellers > 0 {
		return c.Sellers
	}
	n := (c.Count + 2) / 3
	return max(1, min(15, n))
}
