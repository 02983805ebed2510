package signing

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// PathScheme implements the path-aware signing protocol:
//
//	message = UPPERCASE(method) + pathWithQuery + apiKey + timestampSecs + nonce + bodyDigest
//
// The timestamp is seconds since epoch as a decimal string. bodyDigest is
// the hex SHA-256 of the raw body bytes, or the empty string when the body
// is empty. The empty-body sentinel is deliberate: an empty body does NOT
// contribute sha256(""), and the server verifies signatures accordingly.
type PathScheme struct {
	// Now supplies the timestamp. Defaults to time.Now.
	Now Clock
	// Nonce supplies the per-request nonce. Defaults to NewNonce.
	Nonce NonceFunc
}

// compile-time assertion
var _ Scheme = (*PathScheme)(nil)

// NewPathScheme creates a PathScheme backed by the wall clock and random
// nonces.
func NewPathScheme() *PathScheme {
	return &PathScheme{Now: time.Now, Nonce: NewNonce}
}

// Name returns "path".
func (s *PathScheme) Name() string { return "path" }

// Headers computes the signed header set for one request.
func (s *PathScheme) Headers(creds Credentials, facts RequestFacts) map[string]string {
	timestamp := strconv.FormatInt(s.now().Unix(), 10)
	nonce := s.nonce()

	message := strings.ToUpper(facts.Method) + facts.PathWithQuery +
		creds.APIKey + timestamp + nonce + BodyDigest(facts.Body)
	signature := Sign([]byte(creds.APISecret), []byte(message))

	return map[string]string{
		HeaderAPIKey:      creds.APIKey,
		HeaderTimestamp:   timestamp,
		HeaderNonce:       nonce,
		HeaderSignature:   signature,
		HeaderContentType: contentTypeJSON,
	}
}

// BodyDigest returns the hex SHA-256 of body, or "" for an empty body.
func BodyDigest(body string) string {
	if body == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

func (s *PathScheme) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *PathScheme) nonce() string {
	if s.Nonce != nil {
		return s.Nonce()
	}
	return NewNonce()
}
