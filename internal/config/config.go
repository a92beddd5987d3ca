// Package config reads the Automizor API connection settings from the
// process environment. Settings are read once, at client construction.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Environment variables the platform clients are configured from.
const (
	EnvAPIHost  = "AUTOMIZOR_API_HOST"
	EnvAPIToken = "AUTOMIZOR_API_TOKEN"
)

// Config carries the settings required to reach the Automizor API.
type Config struct {
	// APIHost is the API host, e.g. "api.automizor.io". A scheme may be
	// included; without one the clients assume https.
	APIHost string

	// APIToken is the bearer credential for the Authorization header.
	APIToken string
}

// FromEnv builds a Config from AUTOMIZOR_API_HOST and
// AUTOMIZOR_API_TOKEN. Both variables are required; a missing one is a
// construction error rather than a request-time failure.
func FromEnv() (*Config, error) {
	v := viper.New()
	if err := v.BindEnv("api_host", EnvAPIHost); err != nil {
		return nil, errors.Wrap(err, "bind api host")
	}
	if err := v.BindEnv("api_token", EnvAPIToken); err != nil {
		return nil, errors.Wrap(err, "bind api token")
	}

	cfg := &Config{
		APIHost:  v.GetString("api_host"),
		APIToken: v.GetString("api_token"),
	}
	if cfg.APIHost == "" {
		return nil, errors.Errorf("%s is not set", EnvAPIHost)
	}
	if cfg.APIToken == "" {
		return nil, errors.Errorf("%s is not set", EnvAPIToken)
	}
	return cfg, nil
}
