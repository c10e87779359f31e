// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"net/http"
)

// Reply is exactly one response to one inbound request.
//
// When Raw is set it holds a complete envelope produced downstream and is
// written to the client unchanged; Envelope is ignored in that case.
type Reply struct {
	Status   int
	Envelope ResponseEnvelope
	Raw      json.RawMessage
}

// NewReply wraps a built envelope with 200 OK.
func NewReply(envelope ResponseEnvelope) Reply {
	return Reply{Status: http.StatusOK, Envelope: envelope}
}

// PassThrough wraps downstream bytes that already form an envelope.
func PassThrough(raw []byte) Reply {
	return Reply{Status: http.StatusOK, Raw: json.RawMessage(raw)}
}

// WithStatus returns a copy of r carrying status.
func (r Reply) WithStatus(status int) Reply {
	r.Status = status
	return r
}

// Body returns the bytes to write as the HTTP response body.
func (r Reply) Body() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	return json.Marshal(r.Envelope)
}
