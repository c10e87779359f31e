// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/json"
	"strings"
)

// answerKind tags what a downstream body turned out to be.
type answerKind int

const (
	// answerEmpty means nothing speakable was found.
	answerEmpty answerKind = iota
	// answerEnvelope is a complete response envelope to pass through.
	answerEnvelope
	// answerText is a text answer to wrap in SSML.
	answerText
)

func (k answerKind) String() string {
	switch k {
	case answerEnvelope:
		return "envelope"
	case answerText:
		return "text"
	default:
		return "empty"
	}
}

// answerFields lists, in priority order, the object fields that may carry
// the answer.
var answerFields = []string{"ssml", "speech", "answer", "message", "text"}

// downstreamAnswer is the classified downstream body.
type downstreamAnswer struct {
	kind answerKind
	// raw is the untouched body, set for answerEnvelope.
	raw []byte
	// text is the trimmed answer, set for answerText.
	text string
	// markup is true when text came from the "ssml" field and must not be
	// escaped.
	markup bool
}

// classifyAnswer decides what body is without building any reply.
//
// A JSON object with both "version" and "response" keys is an envelope. For
// any other object the first present answer field decides: a string with
// content is the answer, anything else is empty. A null field counts as
// absent. A JSON string is the answer itself. A body that is not JSON is
// treated as plain text.
func classifyAnswer(body []byte) downstreamAnswer {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return downstreamAnswer{kind: answerEmpty}
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return textAnswer(string(trimmed), false)
	}

	switch v := decoded.(type) {
	case map[string]any:
		_, hasVersion := v["version"]
		_, hasResponse := v["response"]
		if hasVersion && hasResponse {
			return downstreamAnswer{kind: answerEnvelope, raw: body}
		}
		for _, field := range answerFields {
			value, ok := v[field]
			if !ok || value == nil {
				continue
			}
			s, isString := value.(string)
			if !isString {
				return downstreamAnswer{kind: answerEmpty}
			}
			return textAnswer(s, field == "ssml")
		}
		return downstreamAnswer{kind: answerEmpty}
	case string:
		return textAnswer(v, false)
	default:
		return downstreamAnswer{kind: answerEmpty}
	}
}

func textAnswer(s string, markup bool) downstreamAnswer {
	s = strings.TrimSpace(s)
	if s == "" {
		return downstreamAnswer{kind: answerEmpty}
	}
	return downstreamAnswer{kind: answerText, text: s, markup: markup}
}
