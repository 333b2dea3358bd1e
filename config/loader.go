package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvMinConnection = "ITINERA_MIN_CONNECTION"
	EnvMaxConnection = "ITINERA_MAX_CONNECTION"
	EnvStrategy      = "ITINERA_STRATEGY"
	EnvFormat        = "ITINERA_FMT"
	EnvSubItins      = "ITINERA_SUB_ITINS"
	EnvLogLevel      = "ITINERA_LOG_LEVEL"
	EnvMetricsFile   = "ITINERA_METRICS_FILE"
)

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty), a .env file and the environment. envFiles replaces the default
// ".env"; unlike the default, an explicitly named file must exist.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	// 1. YAML file
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	// 2. .env into the environment; existing variables win
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// 3. Environment
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// 4. Validation
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if err := envDuration(EnvMinConnection, &c.Policy.MinConnection); err != nil {
		return err
	}
	if err := envDuration(EnvMaxConnection, &c.Policy.MaxConnection); err != nil {
		return err
	}
	if v := os.Getenv(EnvSubItins); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSubItins, v, err)
		}
		c.Output.SubItineraries = b
	}
	envString(EnvStrategy, &c.Strategy)
	envString(EnvFormat, &c.Output.Format)
	envString(EnvLogLevel, &c.Log.Level)
	envString(EnvMetricsFile, &c.Metrics.Textfile)

	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err)
	}
	*dst = d

	return nil
}
