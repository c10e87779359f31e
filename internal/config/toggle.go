package config

import "strings"

// ParseToggle interprets a boolean-like string. Recognized spellings are
// true/false, 1/0, yes/no, on/off and enabled/disabled in any case; anything
// else, including the empty string, yields def.
func ParseToggle(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "enabled":
		return true
	case "false", "0", "no", "n", "off", "disabled":
		return false
	default:
		return def
	}
}
