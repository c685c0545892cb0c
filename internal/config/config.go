// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Default endpoints of the production tournament backend.
const (
	// DefaultAPIBaseURL is the REST API host used for submissions, scores
	// and round configuration.
	DefaultAPIBaseURL = "https://api.tournament.crunchdao.com"

	// DefaultDataBaseURL is the host serving dataset files.
	DefaultDataBaseURL = "https://tournament.crunchdao.com/data"

	// DefaultRequestTimeout bounds a single outbound request.
	DefaultRequestTimeout = 30 * time.Second
)

// Config is the resolved client configuration.
//
// Struct tags:
//   - env — environment variable consulted when the field is not set
//     explicitly (caarlos0/env).
type Config struct {
	// APIKey is the tournament API key used on authenticated calls. May be
	// empty: construction still succeeds and only authenticated operations
	// fail. Env: CRUNCHDAO_API_KEY
	APIKey string `env:"CRUNCHDAO_API_KEY"`

	// APIBaseURL is the base URL of the REST API.
	// Env: CRUNCHDAO_API_URL
	APIBaseURL string `env:"CRUNCHDAO_API_URL"`

	// DataBaseURL is the base URL dataset files are downloaded from.
	// Env: CRUNCHDAO_DATA_URL
	DataBaseURL string `env:"CRUNCHDAO_DATA_URL"`

	// RequestTimeout is the per-request timeout for all outbound calls
	// (e.g. "30s", "2m"). Env: CRUNCHDAO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CRUNCHDAO_REQUEST_TIMEOUT"`

	// ShowProgress enables terminal progress bars during dataset
	// downloads. Env: CRUNCHDAO_SHOW_PROGRESS
	ShowProgress bool `env:"CRUNCHDAO_SHOW_PROGRESS"`
}

// GetConfig builds and validates the client configuration. Non-zero fields
// of overrides take precedence over environment variables, which take
// precedence over the built-in defaults.
func GetConfig(overrides *Config) (*Config, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withDefaults().
		build()
}

// HasCredential reports whether an API key was resolved from any source.
func (cfg *Config) HasCredential() bool {
	return cfg.APIKey != ""
}

func (cfg *Config) validate() error {
	if cfg.APIBaseURL == "" || cfg.DataBaseURL == "" {
		return ErrInvalidEndpointConfigs
	}
	if cfg.RequestTimeout <= 0 {
		return ErrInvalidTimeoutConfigs
	}
	return nil
}
