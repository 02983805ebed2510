package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Auth header names shared by both schemes.
const (
	HeaderAPIKey      = "X-Api-Key"
	HeaderTimestamp   = "X-Timestamp"
	HeaderNonce       = "X-Nonce"
	HeaderSignature   = "X-Signature"
	HeaderContentType = "Content-Type"

	contentTypeJSON = "application/json"
)

// Credentials holds the API key pair for the HMAC scheme.
// Immutable once constructed.
type Credentials struct {
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	APISecret string `yaml:"api_secret" mapstructure:"api_secret"`
}

// RequestFacts are the per-request inputs to canonicalization.
// Constructed fresh for every outgoing request, never persisted.
type RequestFacts struct {
	// Method is the HTTP method. Only PathScheme signs it.
	Method string
	// PathWithQuery is the resolved request path including the raw query
	// string (e.g. "/v1/orders?page=2"). Only PathScheme signs it.
	PathWithQuery string
	// Body is the serialized request payload, or empty for bodyless requests.
	Body string
}

// Scheme canonicalizes request facts and produces the signed header set.
// Implementations must be safe for concurrent use.
type Scheme interface {
	// Name identifies the scheme ("simple" or "path").
	Name() string
	// Headers computes the auth header set for one request. The timestamp
	// and nonce are generated at call time; the result must not be reused.
	Headers(creds Credentials, facts RequestFacts) map[string]string
}

// Sign computes the HMAC-SHA256 of message keyed by secret and returns the
// lowercase hex encoding of the digest (64 characters). Pure and
// deterministic; empty keys are permitted, as HMAC defines them.
func Sign(secret, message []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write(message)
	return hex.EncodeToString(h.Sum(nil))
}

// Clock returns the current wall-clock time. Injectable for tests.
type Clock func() time.Time

// NonceFunc returns a fresh nonce. Injectable for tests.
type NonceFunc func() string
