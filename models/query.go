package models

// Query is the payload forwarded to the downstream webhook.
type Query struct {
	Query     string `json:"query"`
	SessionID string `json:"sessionId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Locale    string `json:"locale,omitempty"`
}
