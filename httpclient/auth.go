package httpclient

import (
	"encoding/base64"
	"net/http"
)

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer sends Authorization: Bearer <token>.
	AuthBearer
	// AuthHeader sends the token in a custom header.
	AuthHeader
	// AuthCustom applies a custom function to the request.
	AuthCustom
)

// AuthConfig configures request authentication. Auth headers are applied
// after default and request headers, so they win on conflicting names.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Name is the header name (AuthHeader).
	Name string
	// Value is the header value (AuthHeader).
	Value string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates an auth config sending Authorization: Basic with the
// base64 encoding of credentials.
func BasicAuth(credentials string) *AuthConfig {
	encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
	return &AuthConfig{Type: AuthHeader, Name: "Authorization", Value: "Basic " + encoded}
}

// HeaderAuth creates an auth config sending a single static header.
func HeaderAuth(name, value string) *AuthConfig {
	return &AuthConfig{Type: AuthHeader, Name: name, Value: value}
}

// CustomAuth creates an auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// HeaderSetter returns a modifier that sets every header in the map.
// Useful for per-request computed header sets (e.g. HMAC signatures).
func HeaderSetter(headers map[string]string) func(*http.Request) {
	return func(req *http.Request) {
		for k, v := range headers {
			req.Header.Set(k, v)
		}
	}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthHeader:
		if a.Name != "" {
			req.Header.Set(a.Name, a.Value)
		}
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}
