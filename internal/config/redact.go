package config

import "net/url"

const redactedValue = "[REDACTED]"

// Redacted returns a copy of cfg that is safe to log. The webhook URL keeps
// only its scheme and host, since path and query often carry a token.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	cfg.Downstream.WebhookURL = redactURL(cfg.Downstream.WebhookURL)
	return cfg
}

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return redactedValue
	}
	if u.User == nil && (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == "" {
		return u.Scheme + "://" + u.Host
	}
	return u.Scheme + "://" + u.Host + "/" + redactedValue
}
