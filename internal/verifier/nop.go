package verifier

import (
	"context"
	"net/http"
)

// Nop accepts every request. It is selected when verification is disabled by
// configuration.
type Nop struct{}

// Verify implements [Verifier].
func (Nop) Verify(context.Context, http.Header, []byte) error {
	return nil
}
