// Package config loads hexcrawl settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig    = "HEXCRAWL_CONFIG"
	EnvSeed      = "HEXCRAWL_SEED"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Config holds all settings.
type Config struct {
	// Seed for world generation. Zero picks a random seed.
	Seed      int64           `yaml:"seed"`
	Log       LogConfig       `yaml:"log"`
	World     WorldConfig     `yaml:"world"`
	Sight     SightConfig     `yaml:"sight"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // logrus level name
	Format string `yaml:"format"` // "text" or "json"
	File   string `yaml:"file"`   // Empty logs to stderr
}

// WorldConfig holds map generation settings.
type WorldConfig struct {
	StartDepth    int `yaml:"start_depth"`
	PrewarmRadius int `yaml:"prewarm_radius"` // Chunks assembled around the start at launch
}

// SightConfig holds field of view settings.
type SightConfig struct {
	DungeonRange int `yaml:"dungeon_range"`
}

// TelemetryConfig holds tracing settings.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "hexcrawl.log",
		},
		World: WorldConfig{
			StartDepth:    1,
			PrewarmRadius: 2,
		},
		Sight: SightConfig{
			DungeonRange: 7,
		},
		Telemetry: TelemetryConfig{
			Enabled: true,
		},
	}
}

// Load reads settings from path, if given, on top of the defaults and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by HEXCRAWL_CONFIG, or only defaults and
// environment overrides when it is unset.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfig))
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.World.StartDepth < 0 {
		return fmt.Errorf("world.start_depth must not be negative, got %d", c.World.StartDepth)
	}
	if c.World.PrewarmRadius < 0 {
		return fmt.Errorf("world.prewarm_radius must not be negative, got %d", c.World.PrewarmRadius)
	}
	if c.Sight.DungeonRange <= 0 {
		return fmt.Errorf("sight.dungeon_range must be positive, got %d", c.Sight.DungeonRange)
	}
	return nil
}
