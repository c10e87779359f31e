// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading and decoding the skill request body.
// Callers can match against them with [errors.Is].
var (
	// ErrPayloadTooLarge is returned when the body exceeds the configured
	// limit.
	ErrPayloadTooLarge = errors.New("request body too large")

	// ErrReadingBody is returned when the body cannot be read to the end.
	ErrReadingBody = errors.New("error reading request body")

	// ErrMalformedRequest is returned when the body is not a JSON envelope.
	ErrMalformedRequest = errors.New("malformed request envelope")
)
