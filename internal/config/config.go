// Package config provides Viper-based configuration loading for the fight simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig holds catalog directory paths. An empty path means the
// built-in catalog ships for that content type.
type ContentConfig struct {
	// WoundsDir is a directory of wound template YAML files.
	WoundsDir string `mapstructure:"wounds_dir"`
	// EnemiesDir is a directory of enemy class YAML files.
	EnemiesDir string `mapstructure:"enemies_dir"`
	// GearDir is a directory of weapon and armor YAML files.
	GearDir string `mapstructure:"gear_dir"`
}

// SimConfig holds fight simulator settings.
type SimConfig struct {
	// Fights is the number of fights to simulate.
	Fights int `mapstructure:"fights"`
	// Seed seeds the random source; 0 derives a seed from the clock.
	Seed int64 `mapstructure:"seed"`
	// Tier is the league tier used for reward payouts.
	Tier int `mapstructure:"tier"`
	// BaseHype overrides the opening crowd hype; 0 keeps the engine default.
	BaseHype int `mapstructure:"base_hype"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Sim     SimConfig     `mapstructure:"sim"`
}

// Validate checks all configuration invariants. Content paths are not
// checked here; the catalog loaders report missing or malformed files.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSim(c.Sim); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSim(s SimConfig) error {
	var errs []string
	if s.Fights < 1 {
		errs = append(errs, fmt.Sprintf("sim.fights must be >= 1, got %d", s.Fights))
	}
	if s.Tier < 1 {
		errs = append(errs, fmt.Sprintf("sim.tier must be >= 1, got %d", s.Tier))
	}
	if s.BaseHype < 0 || s.BaseHype > 100 {
		errs = append(errs, fmt.Sprintf("sim.base_hype must be 0-100, got %d", s.BaseHype))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with MARK_ prefix
	v.SetEnvPrefix("MARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("content.wounds_dir", "")
	v.SetDefault("content.enemies_dir", "")
	v.SetDefault("content.gear_dir", "")

	v.SetDefault("sim.fights", 10)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.tier", 1)
	v.SetDefault("sim.base_hype", 0)
}
