// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package verifier checks that an inbound request was really sent by the voice
// platform.
//
// [Verifier] is the narrow interface the HTTP handler depends on. The
// production implementation validates the signing certificate chain named by
// the SignatureCertChainUrl header, the body signature, the request timestamp
// and, optionally, the application id. [Nop] is used when an operator turns
// verification off.
//
// Every failure wraps one of the sentinel errors from errors.go. Callers must
// not expose which check failed to the client.
package verifier

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/verifier_mock.go -package=mock

// Verifier validates the authenticity of one inbound request.
type Verifier interface {
	// Verify checks header and the exact raw body bytes. It returns nil when
	// the request is authentic.
	Verify(ctx context.Context, header http.Header, body []byte) error
}

// certFetcher downloads a PEM certificate chain.
type certFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
