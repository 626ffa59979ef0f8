package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/YohanChabiduPerera/leasing-calculator/internal/config"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address   string               `yaml:"address"`
	Logging   config.LoggingConfig `yaml:"logging"`
	RateLimit RateLimitConfig      `yaml:"rateLimit"`
}

// RateLimitConfig controls the per-client request budget.
type RateLimitConfig struct {
	Capacity      int `yaml:"capacity"`      // requests per window per client
	WindowSeconds int `yaml:"windowSeconds"` // refill window
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address: constants.DefaultServerAddress,
		RateLimit: RateLimitConfig{
			Capacity:      constants.DefaultRateLimitCapacity,
			WindowSeconds: constants.DefaultRateLimitWindowSeconds,
		},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.RateLimit.Capacity <= 0 {
		c.RateLimit.Capacity = constants.DefaultRateLimitCapacity
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = constants.DefaultRateLimitWindowSeconds
	}
}
