// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package verifier

import (
	"context"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/models"
)

// Request headers carrying the authenticity proof.
const (
	HeaderCertChainURL = "SignatureCertChainUrl"
	HeaderSignature256 = "Signature-256"
	HeaderSignature    = "Signature"
)

type alexaVerifier struct {
	fetcher certFetcher
	cache   *certCache
	// roots is nil in production, meaning the system pool.
	roots *x509.CertPool
	now   func() time.Time

	tolerance time.Duration
	skillID   string

	logger *logger.Logger
}

// New returns the verifier selected by cfg: [Nop] when verification is
// disabled, the certificate-chain verifier otherwise.
func New(cfg config.Verification, logger *logger.Logger) Verifier {
	if !cfg.Enabled() {
		logger.Warn().Msg("request signature verification is DISABLED; use for local testing only")
		return Nop{}
	}
	return NewAlexaVerifier(cfg, logger)
}

// NewAlexaVerifier constructs the production [Verifier]. Zero tolerance and
// cache size fall back to the config defaults.
func NewAlexaVerifier(cfg config.Verification, logger *logger.Logger) Verifier {
	tolerance := cfg.TimestampTolerance
	if tolerance <= 0 {
		tolerance = config.DefaultTimestampTolerance
	}
	cacheSize := cfg.CertCacheSize
	if cacheSize <= 0 {
		cacheSize = config.DefaultCertCacheSize
	}

	return &alexaVerifier{
		fetcher:   newHTTPCertFetcher(),
		cache:     newCertCache(cacheSize),
		now:       time.Now,
		tolerance: tolerance,
		skillID:   strings.TrimSpace(cfg.SkillID),
		logger:    logger,
	}
}

// Verify implements [Verifier].
//
// Signature-256 is preferred; the legacy SHA-1 Signature header is used only
// when Signature-256 is absent. The body is decoded only after the signature
// has been accepted.
func (v *alexaVerifier) Verify(ctx context.Context, header http.Header, body []byte) error {
	certURL := strings.TrimSpace(header.Get(HeaderCertChainURL))
	alg, encoded := sha256Signature, strings.TrimSpace(header.Get(HeaderSignature256))
	if encoded == "" {
		alg, encoded = sha1Signature, strings.TrimSpace(header.Get(HeaderSignature))
	}
	if certURL == "" || encoded == "" {
		return ErrMissingSignature
	}

	signature, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	normalized, err := normalizeCertURL(certURL)
	if err != nil {
		return err
	}

	cert, err := v.certificate(ctx, normalized)
	if err != nil {
		return err
	}

	if err = cert.checkSignature(alg, signature, body); err != nil {
		return err
	}

	return v.checkRequest(body)
}

// certificate returns a chain for url that is valid right now, from the cache
// when possible.
func (v *alexaVerifier) certificate(ctx context.Context, url string) (*signingCert, error) {
	now := v.now()
	if cert, ok := v.cache.get(url); ok {
		if err := cert.verify(v.roots, now); err == nil {
			return cert, nil
		}
		v.cache.remove(url)
	}

	pemData, err := v.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	cert, err := parseChain(pemData)
	if err != nil {
		return nil, err
	}
	if err = cert.verify(v.roots, now); err != nil {
		return nil, err
	}

	v.cache.put(url, cert)
	v.logger.Debug().Str("url", url).Msg("signing certificate cached")
	return cert, nil
}

// checkRequest enforces timestamp freshness and the optional application id.
// A body that is not JSON is left for the request decoder to reject.
func (v *alexaVerifier) checkRequest(body []byte) error {
	var envelope models.RequestEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(envelope.Request.Timestamp))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, envelope.Request.Timestamp)
	}
	skew := v.now().Sub(ts)
	if skew < 0 {
		skew = -skew
	}
	if skew > v.tolerance {
		return fmt.Errorf("%w: skew %s", ErrTimestampExpired, skew.Round(time.Second))
	}

	if v.skillID != "" && envelope.ApplicationID() != v.skillID {
		return ErrApplicationMismatch
	}

	return nil
}
