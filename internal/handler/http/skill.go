// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/speech"
	"github.com/MKhiriev/voice-bridge/internal/utils"
	"github.com/MKhiriev/voice-bridge/models"
)

// skill serves the voice platform. The body is read once and kept as raw
// bytes: the signature covers exactly those bytes, and nothing in the body
// is looked at before verification passes.
func (h *Handler) skill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	body, err := h.readBody(w, r)
	if err != nil {
		log.Err(err).Msg("error reading skill request body")
		h.writeReply(w, r, replyFromError(err, speech.For("")))
		return
	}

	if err = h.verifier.Verify(ctx, r.Header, body); err != nil {
		log.Warn().Err(err).Msg("request authenticity check failed")
		h.writeReply(w, r, replyFromError(err, speech.For("")))
		return
	}

	envelope, err := decodeRequest(body)
	if err != nil {
		log.Err(err).Msg("error decoding skill request")
		h.writeReply(w, r, replyFromError(err, speech.For("")))
		return
	}

	setRequestType(ctx, envelope.Request.Type)
	log.Debug().
		Str("type", envelope.Request.Type).
		Str("request_id", envelope.Request.RequestID).
		Str("locale", envelope.Request.Locale).
		Msg("skill request decoded")

	h.writeReply(w, r, h.services.SkillService.Respond(ctx, envelope))
}

// decodeRequest rejects bodies that are valid JSON but carry no request,
// such as null or {}.
func decodeRequest(body []byte) (models.RequestEnvelope, error) {
	var envelope models.RequestEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return envelope, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if envelope.Request.Type == "" {
		return envelope, fmt.Errorf("%w: missing request type", ErrMalformedRequest)
	}
	return envelope, nil
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	reader := r.Body
	if h.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingBody, err)
	}

	return body, nil
}

func (h *Handler) writeReply(w http.ResponseWriter, r *http.Request, reply models.Reply) {
	if _, err := utils.WriteReply(w, reply); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing skill response")
	}
}
