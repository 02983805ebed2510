package signing

import (
	"strings"

	"github.com/google/uuid"
)

// NewNonce returns a 128-bit random nonce rendered as 32 lowercase hex
// characters (a UUID v4 with the hyphens stripped).
func NewNonce() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
