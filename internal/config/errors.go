package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates an unusable listen address, skill path
	// or body size limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDownstreamConfigs indicates a webhook URL that is set but is not
	// an absolute http(s) URL, or a negative timeout.
	ErrInvalidDownstreamConfigs = errors.New("invalid downstream configuration")
	// ErrInvalidVerificationConfigs indicates a negative timestamp tolerance or
	// certificate cache size.
	ErrInvalidVerificationConfigs = errors.New("invalid verification configuration")
	// ErrInvalidAppConfigs indicates an empty primary intent name.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnsupportedConfigFile is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
)
