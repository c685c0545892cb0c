package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration is incomplete or invalid.
var (
	// ErrInvalidEndpointConfigs indicates a missing API or data base URL.
	ErrInvalidEndpointConfigs = errors.New("invalid endpoint configuration")
	// ErrInvalidTimeoutConfigs indicates a non-positive request timeout.
	ErrInvalidTimeoutConfigs = errors.New("invalid timeout configuration")
)
