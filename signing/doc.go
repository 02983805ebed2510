// Package signing implements the request-signing protocol for the OpenAPI
// backend: deterministic canonical message construction from request facts
// and HMAC-SHA256 header generation.
//
// Two canonicalization schemes are supported behind the Scheme interface:
//
//   - SimpleScheme signs apiKey + millisecond timestamp + nonce + raw body.
//   - PathScheme signs UPPERCASE(method) + path?query + apiKey + second
//     timestamp + nonce + sha256-hex(body).
//
// Both produce the same header set (X-Api-Key, X-Timestamp, X-Nonce,
// X-Signature) and force Content-Type: application/json. Headers are
// computed fresh per request; replay protection depends on the per-request
// timestamp and nonce.
//
//	scheme := signing.NewSimpleScheme()
//	headers := scheme.Headers(creds, signing.RequestFacts{
//	    Method: http.MethodPost,
//	    Body:   `{"name":"alice"}`,
//	})
package signing
