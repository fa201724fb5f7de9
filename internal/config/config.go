// Package config loads run settings from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/talgya/splitting-world/internal/engine"
	"github.com/talgya/splitting-world/internal/world"
)

// Config contains all settings for a run.
type Config struct {
	// Simulation holds the tuning of the era/century loop.
	Simulation SimulationConfig `yaml:"simulation"`

	// Seed for the shared random source. 0 picks one from the clock.
	Seed int64 `yaml:"seed"`

	// Pace is the pause between simulation steps. 0 runs flat out.
	Pace time.Duration `yaml:"pace"`

	Logging   LoggingConfig   `yaml:"logging"`
	Chronicle ChronicleConfig `yaml:"chronicle"`

	// Names overrides the built-in name inventory when non-empty.
	Names []string `yaml:"names,omitempty"`
}

// SimulationConfig mirrors engine.Config.
type SimulationConfig struct {
	MaxEra                        int `yaml:"max_era"`
	MaxCentury                    int `yaml:"max_century"`
	PopulationRequirementIncrease int `yaml:"population_requirement_increase"`
	EraCooldown                   int `yaml:"era_cooldown"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
}

// ChronicleConfig configures the SQLite chronicle.
type ChronicleConfig struct {
	// Path of the database file. Empty disables the chronicle.
	Path string `yaml:"path"`
}

// Default returns the standard nine-era configuration.
func Default() *Config {
	d := engine.DefaultConfig()
	return &Config{
		Simulation: SimulationConfig{
			MaxEra:                        d.MaxEra,
			MaxCentury:                    d.MaxCentury,
			PopulationRequirementIncrease: d.PopulationRequirementIncrease,
			EraCooldown:                   d.EraCooldown,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load applies, in order: defaults, the file at path (if path is not
// empty), then SPLITWORLD_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.MaxEra < 1 || s.MaxEra > world.MaxScriptedEra {
		return fmt.Errorf("max_era must be between 1 and %d, got %d", world.MaxScriptedEra, s.MaxEra)
	}
	if s.MaxCentury < 1 {
		return fmt.Errorf("max_century must be positive, got %d", s.MaxCentury)
	}
	if s.PopulationRequirementIncrease < 0 {
		return fmt.Errorf("population_requirement_increase must be non-negative, got %d", s.PopulationRequirementIncrease)
	}
	if s.EraCooldown < 0 {
		return fmt.Errorf("era_cooldown must be non-negative, got %d", s.EraCooldown)
	}
	if c.Pace < 0 {
		return fmt.Errorf("pace must be non-negative, got %v", c.Pace)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	seen := make(map[string]bool, len(c.Names))
	for _, n := range c.Names {
		if n == "" {
			return fmt.Errorf("names must not be empty")
		}
		if seen[n] {
			return fmt.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
	return nil
}

// Engine converts the simulation section to an engine.Config.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		MaxEra:                        c.Simulation.MaxEra,
		MaxCentury:                    c.Simulation.MaxCentury,
		PopulationRequirementIncrease: c.Simulation.PopulationRequirementIncrease,
		EraCooldown:                   c.Simulation.EraCooldown,
	}
}

func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SPLITWORLD_MAX_ERA", &cfg.Simulation.MaxEra},
		{"SPLITWORLD_MAX_CENTURY", &cfg.Simulation.MaxCentury},
		{"SPLITWORLD_POPULATION_REQUIREMENT_INCREASE", &cfg.Simulation.PopulationRequirementIncrease},
		{"SPLITWORLD_ERA_COOLDOWN", &cfg.Simulation.EraCooldown},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	if v := os.Getenv("SPLITWORLD_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SPLITWORLD_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("SPLITWORLD_PACE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SPLITWORLD_PACE: %w", err)
		}
		cfg.Pace = d
	}
	if v := os.Getenv("SPLITWORLD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SPLITWORLD_CHRONICLE"); v != "" {
		cfg.Chronicle.Path = v
	}
	return nil
}
