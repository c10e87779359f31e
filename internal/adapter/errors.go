package adapter

import "errors"

var (
	ErrDownstreamNotConfigured = errors.New("downstream webhook is not configured")
	ErrDownstreamUnavailable   = errors.New("downstream webhook unavailable")
	ErrDownstreamStatus        = errors.New("downstream webhook returned an error status")
)
