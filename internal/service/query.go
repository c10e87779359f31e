package service

import (
	"strings"

	"github.com/MKhiriev/voice-bridge/models"
)

// querySlotNames lists, in priority order, the slots that may carry the
// user's free-text question.
var querySlotNames = []string{"query", "SearchQuery", "pergunta", "texto"}

// ExtractQuery returns the first non-blank value among querySlotNames,
// trimmed. A missing intent or unfilled slots yield "".
func ExtractQuery(intent *models.Intent) string {
	if intent == nil {
		return ""
	}
	for _, name := range querySlotNames {
		slot, ok := intent.Slots[name]
		if !ok {
			continue
		}
		if value := strings.TrimSpace(slot.Value); value != "" {
			return value
		}
	}
	return ""
}
