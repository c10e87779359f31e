// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package speech

import (
	"html"
	"strings"

	"github.com/MKhiriev/voice-bridge/models"
)

// SSML escapes text and wraps it in a <speak> element.
func SSML(text string) string {
	return "<speak>" + html.EscapeString(strings.TrimSpace(text)) + "</speak>"
}

// SSMLMarkup keeps existing markup and adds the <speak> wrapper only when it
// is missing. A root <speak> with attributes counts as present.
func SSMLMarkup(markup string) string {
	markup = strings.TrimSpace(markup)
	if hasSpeakRoot(markup) {
		return markup
	}
	return "<speak>" + markup + "</speak>"
}

func hasSpeakRoot(markup string) bool {
	if !strings.HasSuffix(markup, "</speak>") {
		return false
	}
	rest, ok := strings.CutPrefix(markup, "<speak")
	if !ok || rest == "" {
		return false
	}
	switch rest[0] {
	case '>', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func plain(text string) *models.OutputSpeech {
	return &models.OutputSpeech{Type: models.SpeechPlainText, Text: text}
}

func envelope(speech *models.OutputSpeech, reprompt *models.OutputSpeech, endSession bool) models.ResponseEnvelope {
	env := models.ResponseEnvelope{
		Version: models.EnvelopeVersion,
		Response: models.Response{
			OutputSpeech:     speech,
			ShouldEndSession: endSession,
		},
	}
	if reprompt != nil {
		env.Response.Reprompt = &models.Reprompt{OutputSpeech: reprompt}
	}
	return env
}

// Launch greets the user and keeps the session open.
func Launch(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.Launch), plain(p.LaunchReprompt), false)
}

// AskQuery asks for the question again when the query slot was empty.
func AskQuery(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.AskQuery), plain(p.AskReprompt), false)
}

// Answer speaks ssml, which must already be a complete <speak> document, and
// closes the session.
func Answer(ssml string) models.ResponseEnvelope {
	return envelope(&models.OutputSpeech{Type: models.SpeechSSML, SSML: ssml}, nil, true)
}

func NotUnderstood(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.NotUnderstood), nil, true)
}

func NoAnswer(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.NoAnswer), nil, true)
}

func GenericError(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.GenericError), nil, true)
}

func ConfigError(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.ConfigError), nil, true)
}

func InvalidRequest(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.InvalidRequest), nil, true)
}

// Unauthenticated never says why verification failed.
func Unauthenticated(p Phrases) models.ResponseEnvelope {
	return envelope(plain(p.Unauthenticated), nil, true)
}
