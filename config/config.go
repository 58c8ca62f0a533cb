package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort uint16 `envconfig:"TIDEPOOL_HTTP_SERVER_PORT" default:"8080" required:"true"`

	ForecastHorizonDays    int    `envconfig:"TIDEPOOL_RISK_FORECAST_HORIZON_DAYS" default:"30"`
	MaxForecastHorizonDays int    `envconfig:"TIDEPOOL_RISK_MAX_FORECAST_HORIZON_DAYS" default:"365"`
	GlucoseWindow          int    `envconfig:"TIDEPOOL_RISK_GLUCOSE_WINDOW" default:"30"`
	BenchmarksFile         string `envconfig:"TIDEPOOL_RISK_BENCHMARKS_FILE"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.ForecastHorizonDays <= 0 {
		return fmt.Errorf("forecast horizon must be positive, got %d", c.ForecastHorizonDays)
	}
	if c.MaxForecastHorizonDays < c.ForecastHorizonDays {
		return fmt.Errorf("max forecast horizon %d is lower than the default horizon %d", c.MaxForecastHorizonDays, c.ForecastHorizonDays)
	}
	if c.GlucoseWindow < 2 {
		return fmt.Errorf("glucose window must contain at least two readings, got %d", c.GlucoseWindow)
	}
	return nil
}

// Provider is used by the fx graph
func Provider() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
