package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/tbessler/pocketchess/internal/engine"
)

// Config is the server configuration. Everything has a sensible
// default; a YAML file overrides selectively.
type Config struct {
	Addr              string `yaml:"addr"`
	AllowOrigins      string `yaml:"allow_origins"`
	ClockSeconds      int    `yaml:"clock_seconds"`
	AIMoveDelayMs     int    `yaml:"ai_move_delay_ms"`
	DefaultDifficulty int    `yaml:"default_difficulty"`
}

func Default() Config {
	return Config{
		Addr:              ":3000",
		AllowOrigins:      "http://localhost:5173",
		ClockSeconds:      600,
		AIMoveDelayMs:     400,
		DefaultDifficulty: 2,
	}
}

// Load reads path over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DefaultDifficulty < engine.MinLevel || c.DefaultDifficulty > engine.MaxLevel {
		return fmt.Errorf("default_difficulty %d outside [%d, %d]", c.DefaultDifficulty, engine.MinLevel, engine.MaxLevel)
	}
	if c.ClockSeconds <= 0 {
		return fmt.Errorf("clock_seconds must be positive, got %d", c.ClockSeconds)
	}
	if c.AIMoveDelayMs < 0 {
		return fmt.Errorf("ai_move_delay_ms must not be negative, got %d", c.AIMoveDelayMs)
	}
	return nil
}
