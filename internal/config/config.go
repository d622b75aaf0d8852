// Package config provides Viper-based configuration loading for the arena
// simulator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SimulationConfig holds tick clock and reproducibility settings.
type SimulationConfig struct {
	// TicksPerSecond is the fixed simulation frame rate.
	TicksPerSecond int `mapstructure:"ticks_per_second"`
	// Seed seeds the randomness source. Zero means draw a fresh seed; the
	// chosen seed is always logged so a battle can be replayed.
	Seed int64 `mapstructure:"seed"`
	// MaxTicks aborts a battle that has not ended after this many battle
	// ticks. Zero disables the limit.
	MaxTicks int64 `mapstructure:"max_ticks"`
}

// RosterConfig holds roster intake settings.
type RosterConfig struct {
	// Path is the roster manifest YAML file.
	Path string `mapstructure:"path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Roster     RosterConfig     `mapstructure:"roster"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRoster(c.Roster); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.TicksPerSecond < 1 || s.TicksPerSecond > 1000 {
		errs = append(errs, fmt.Sprintf("simulation.ticks_per_second must be 1-1000, got %d", s.TicksPerSecond))
	}
	if s.MaxTicks < 0 {
		errs = append(errs, fmt.Sprintf("simulation.max_ticks must be >= 0, got %d", s.MaxTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRoster(r RosterConfig) error {
	if r.Path == "" {
		return errors.New("roster.path must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	if l.Format != "json" && l.Format != "console" {
		return fmt.Errorf("logging.format must be \"json\" or \"console\", got %q", l.Format)
	}
	return nil
}

// Load reads configuration from path with ARENA_-prefixed environment
// variable overrides and built-in defaults.
//
// Precondition: path must point to a readable config file.
// Postcondition: Returns a validated Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
	v.SetDefault("simulation.ticks_per_second", 60)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.max_ticks", 0)

	v.SetDefault("roster.path", "content/roster.yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
