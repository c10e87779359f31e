// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request types delivered by the voice platform.
const (
	LaunchRequest       = "LaunchRequest"
	IntentRequest       = "IntentRequest"
	SessionEndedRequest = "SessionEndedRequest"
)

// Output speech types.
const (
	SpeechSSML      = "SSML"
	SpeechPlainText = "PlainText"
)

// EnvelopeVersion is the only envelope version the platform speaks.
const EnvelopeVersion = "1.0"

// RequestEnvelope is the inbound event posted by the voice platform.
// https://developer.amazon.com/en-US/docs/alexa/custom-skills/request-and-response-json-reference.html
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

// Session describes the conversation the request belongs to. The bridge does
// not interpret it beyond forwarding identifiers downstream.
type Session struct {
	New         bool         `json:"new"`
	SessionID   string       `json:"sessionId"`
	Application *Application `json:"application,omitempty"`
	User        *User        `json:"user,omitempty"`
}

type Context struct {
	System *System `json:"System,omitempty"`
}

type System struct {
	Application *Application `json:"application,omitempty"`
	User        *User        `json:"user,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Request is the typed part of the envelope. Intent is set for IntentRequest
// only, Reason for SessionEndedRequest only.
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Intent is a recognized voice command with its captured slots.
type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

// Slot is a single captured parameter. Value is empty when the user did not
// fill the slot.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SessionID returns the session identifier or an empty string.
func (e RequestEnvelope) SessionID() string {
	if e.Session == nil {
		return ""
	}
	return e.Session.SessionID
}

// UserID prefers the session user and falls back to the context user, which is
// the only one present on requests outside of a session.
func (e RequestEnvelope) UserID() string {
	if e.Session != nil && e.Session.User != nil && e.Session.User.UserID != "" {
		return e.Session.User.UserID
	}
	if e.Context != nil && e.Context.System != nil && e.Context.System.User != nil {
		return e.Context.System.User.UserID
	}
	return ""
}

// ApplicationID returns the skill id the request was addressed to.
func (e RequestEnvelope) ApplicationID() string {
	if e.Context != nil && e.Context.System != nil && e.Context.System.Application != nil &&
		e.Context.System.Application.ApplicationID != "" {
		return e.Context.System.Application.ApplicationID
	}
	if e.Session != nil && e.Session.Application != nil {
		return e.Session.Application.ApplicationID
	}
	return ""
}

// ResponseEnvelope is the speech response returned to the platform.
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech carries either Text (PlainText) or SSML (SSML).
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}
