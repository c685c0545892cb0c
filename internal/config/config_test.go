// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_Defaults(t *testing.T) {
	cfg, err := GetConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultDataBaseURL, cfg.DataBaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.False(t, cfg.HasCredential())
}

func TestGetConfig_EnvCredential(t *testing.T) {
	t.Setenv("CRUNCHDAO_API_KEY", "env-key")

	cfg, err := GetConfig(nil)
	require.NoError(t, err)

	assert.True(t, cfg.HasCredential())
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestGetConfig_OverrideBeatsEnv(t *testing.T) {
	t.Setenv("CRUNCHDAO_API_KEY", "env-key")
	t.Setenv("CRUNCHDAO_API_URL", "https://env.example.com")

	cfg, err := GetConfig(&Config{APIKey: "explicit-key"})
	require.NoError(t, err)

	// explicit argument wins over env; unset fields still come from env
	assert.Equal(t, "explicit-key", cfg.APIKey)
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
}

func TestGetConfig_EnvBeatsDefaults(t *testing.T) {
	t.Setenv("CRUNCHDAO_API_URL", "https://staging.example.com")
	t.Setenv("CRUNCHDAO_REQUEST_TIMEOUT", "5s")

	cfg, err := GetConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, DefaultDataBaseURL, cfg.DataBaseURL)
}

func TestGetConfig_InvalidEnvValue(t *testing.T) {
	t.Setenv("CRUNCHDAO_REQUEST_TIMEOUT", "not-a-duration")

	_, err := GetConfig(nil)
	require.Error(t, err)
}

func TestValidate_RejectsNonPositiveTimeout(t *testing.T) {
	cfg := &Config{
		APIBaseURL:     DefaultAPIBaseURL,
		DataBaseURL:    DefaultDataBaseURL,
		RequestTimeout: -time.Second,
	}

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidTimeoutConfigs)
}

func TestValidate_RejectsEmptyEndpoints(t *testing.T) {
	cfg := &Config{RequestTimeout: time.Second}

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidEndpointConfigs)
}
