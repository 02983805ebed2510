package signing

import (
	"strconv"
	"time"
)

// SimpleScheme implements the original signing protocol:
//
//	message = apiKey + timestampMillis + nonce + rawBody
//
// The timestamp is milliseconds since epoch as a decimal string.
type SimpleScheme struct {
	// Now supplies the timestamp. Defaults to time.Now.
	Now Clock
	// Nonce supplies the per-request nonce. Defaults to NewNonce.
	Nonce NonceFunc
}

// compile-time assertion
var _ Scheme = (*SimpleScheme)(nil)

// NewSimpleScheme creates a SimpleScheme backed by the wall clock and
// random nonces.
func NewSimpleScheme() *SimpleScheme {
	return &SimpleScheme{Now: time.Now, Nonce: NewNonce}
}

// Name returns "simple".
func (s *SimpleScheme) Name() string { return "simple" }

// Headers computes the signed header set for one request.
func (s *SimpleScheme) Headers(creds Credentials, facts RequestFacts) map[string]string {
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	nonce := s.nonce()

	message := creds.APIKey + timestamp + nonce + facts.Body
	signature := Sign([]byte(creds.APISecret), []byte(message))

	return map[string]string{
		HeaderAPIKey:      creds.APIKey,
		HeaderTimestamp:   timestamp,
		HeaderNonce:       nonce,
		HeaderSignature:   signature,
		HeaderContentType: contentTypeJSON,
	}
}

func (s *SimpleScheme) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SimpleScheme) nonce() string {
	if s.Nonce != nil {
		return s.Nonce()
	}
	return NewNonce()
}
