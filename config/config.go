// Package config loads runtime settings from FACTORY_* environment variables
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/factory/event"
)

// Config holds engine and host settings
type Config struct {
	MaxHistorySize int    `env:"FACTORY_MAX_HISTORY_SIZE" envDefault:"1000"`
	ErrorLogging   bool   `env:"FACTORY_ERROR_LOGGING" envDefault:"true"`
	LogLevel       string `env:"FACTORY_LOG_LEVEL" envDefault:"info"`
	Audio          bool   `env:"FACTORY_AUDIO" envDefault:"false"`
	TPS            int    `env:"FACTORY_TPS" envDefault:"60"`
	BaselineState  string `env:"FACTORY_BASELINE_STATE" envDefault:"Playing"`
	KeyReleaseMS   int    `env:"FACTORY_KEY_RELEASE_MS" envDefault:"600"`
	ModeTable      string `env:"FACTORY_MODE_TABLE"` // Optional YAML transition table path
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration of an empty environment
func Default() Config {
	return Config{
		MaxHistorySize: event.DefaultMaxHistorySize,
		ErrorLogging:   true,
		LogLevel:       "info",
		TPS:            60,
		BaselineState:  "Playing",
		KeyReleaseMS:   600,
	}
}

func (c Config) Validate() error {
	if c.MaxHistorySize < 1 {
		return fmt.Errorf("FACTORY_MAX_HISTORY_SIZE must be positive, got %d", c.MaxHistorySize)
	}
	if c.TPS < 1 || c.TPS > 1000 {
		return fmt.Errorf("FACTORY_TPS must be in 1..1000, got %d", c.TPS)
	}
	if c.KeyReleaseMS < 1 {
		return fmt.Errorf("FACTORY_KEY_RELEASE_MS must be positive, got %d", c.KeyReleaseMS)
	}
	if c.BaselineState == "" {
		return fmt.Errorf("FACTORY_BASELINE_STATE must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel as a slog level
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("FACTORY_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// TickInterval is the frame period for TPS
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

func (c Config) KeyReleaseWindow() time.Duration {
	return time.Duration(c.KeyReleaseMS) * time.Millisecond
}

// BusOptions returns event bus options for this configuration
func (c Config) BusOptions(logger *slog.Logger) []event.Option {
	opts := []event.Option{
		event.WithMaxHistorySize(c.MaxHistorySize),
		event.WithErrorLogging(c.ErrorLogging),
	}
	if logger != nil {
		opts = append(opts, event.WithLogger(logger))
	}
	return opts
}
