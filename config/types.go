package config

import (
	"time"

	"github.com/katalvlaran/itinera/itinerary"
)

// PolicyConfig holds the connection window.
type PolicyConfig struct {
	MinConnection time.Duration `yaml:"minConnection" validate:"gte=0"`
	MaxConnection time.Duration `yaml:"maxConnection" validate:"gtefield=MinConnection"`
}

// OutputConfig selects rendering.
type OutputConfig struct {
	Format         string `yaml:"format" validate:"required"`
	SubItineraries bool   `yaml:"subItineraries"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// MetricsConfig configures the prometheus textfile dump.
// An empty Textfile disables it.
type MetricsConfig struct {
	Textfile  string `yaml:"textfile"`
	Namespace string `yaml:"namespace" validate:"required"`
}

// Config is the root configuration structure.
type Config struct {
	Policy   PolicyConfig  `yaml:"policy"`
	Strategy string        `yaml:"strategy" validate:"oneof=indexed naive"`
	Output   OutputConfig  `yaml:"output"`
	Log      LogConfig     `yaml:"log"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// Default returns the built-in settings.
func Default() *Config {
	p := itinerary.DefaultPolicy()
	return &Config{
		Policy: PolicyConfig{
			MinConnection: p.MinConnection,
			MaxConnection: p.MaxConnection,
		},
		Strategy: "indexed",
		Output:   OutputConfig{Format: "flights"},
		Log:      LogConfig{Level: "info"},
		Metrics:  MetricsConfig{Namespace: "itinera"},
	}
}

// ItineraryPolicy converts the policy section.
func (c *Config) ItineraryPolicy() itinerary.Policy {
	return itinerary.Policy{
		MinConnection: c.Policy.MinConnection,
		MaxConnection: c.Policy.MaxConnection,
	}
}
