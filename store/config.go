package store

import (
	"cmp"
	"fmt"
	"net/url"

	"github.com/kelseyhightower/envconfig"
)

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

type Config struct {
	DatabaseName string `envconfig:"TIDEPOOL_RISK_DATABASE_NAME" default:"riskanalytics"`
	Hosts        string `envconfig:"TIDEPOOL_STORE_ADDRESSES"  default:"localhost"`
	OptParams    string `envconfig:"TIDEPOOL_STORE_OPT_PARAMS"`
	Password     string `envconfig:"TIDEPOOL_STORE_PASSWORD"`
	Scheme       string `envconfig:"TIDEPOOL_STORE_SCHEME" default:"mongodb"`
	Ssl          bool   `envconfig:"TIDEPOOL_STORE_TLS"`
	User         string `envconfig:"TIDEPOOL_STORE_USERNAME"`
}

// GetConnectionString builds a mongo uri from the configuration. Hosts may be a comma
// separated list of addresses.
func (c *Config) GetConnectionString() (string, error) {
	uri := url.URL{
		Scheme:   cmp.Or(c.Scheme, "mongodb"),
		Host:     cmp.Or(c.Hosts, "localhost"),
		Path:     "/",
		RawQuery: fmt.Sprintf("ssl=%t", c.Ssl),
	}

	if c.User != "" {
		uri.User = url.User(c.User)
		if c.Password != "" {
			uri.User = url.UserPassword(c.User, c.Password)
		}
	}

	if c.OptParams != "" {
		if _, err := url.ParseQuery(c.OptParams); err != nil {
			return "", fmt.Errorf("invalid store options %q: %w", c.OptParams, err)
		}
		uri.RawQuery += "&" + c.OptParams
	}

	return uri.String(), nil
}
