package openapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/skillsenselab/openapi-client/httpclient"
	"github.com/skillsenselab/openapi-client/logger"
)

// Auth type names accepted by GetWithAuthType.
const (
	AuthTypeBearer = "bearer"
	AuthTypeBasic  = "basic"
)

// HeaderMethodOverride carries the logical verb for backends that only
// accept GET and POST.
const HeaderMethodOverride = "X-HTTP-Method-Override"

// TokenClient authenticates every request with a static token header. The
// header name and format come from the configuration; RefreshToken swaps
// the token atomically, so in-flight requests keep the value they started
// with.
//
// Safe for concurrent use.
type TokenClient struct {
	http         *httpclient.Client
	headerName   string
	headerFormat string
	log          *logger.Logger

	mu    sync.RWMutex
	token string
	auth  *httpclient.AuthConfig
}

// NewTokenClient creates a TokenClient from the configuration.
func NewTokenClient(cfg Config, opts ...Option) (*TokenClient, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hc, err := httpclient.New(cfg.httpConfig())
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)

	c := &TokenClient{
		http:         hc,
		headerName:   cfg.AuthHeaderName,
		headerFormat: cfg.AuthHeaderFormat,
		log:          o.log.WithComponent("openapi.token"),
	}
	c.setToken(cfg.Token)
	return c, nil
}

// Token returns the current token.
func (c *TokenClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// RefreshToken replaces the token. The auth header value is rebuilt
// wholesale rather than mutated in place.
func (c *TokenClient) RefreshToken(token string) {
	c.setToken(token)
	c.log.Debug("auth token replaced", nil)
}

func (c *TokenClient) setToken(token string) {
	value := fmt.Sprintf(c.headerFormat, token)
	c.mu.Lock()
	c.token = token
	c.auth = httpclient.HeaderAuth(c.headerName, value)
	c.mu.Unlock()
}

func (c *TokenClient) authConfig() *httpclient.AuthConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.auth
}

// Get issues an authenticated GET request.
func (c *TokenClient) Get(ctx context.Context, path string, params map[string]string) (any, error) {
	return c.dispatch(ctx, http.MethodGet, path, params, "", nil, c.authConfig())
}

// GetWithAuthType issues a GET with the token presented under a different
// convention: "bearer" sends Authorization: Bearer <token>, "basic" sends
// Authorization: Basic base64(<token>), anything else falls back to the
// configured header with the raw token. The client's own auth state is
// untouched.
func (c *TokenClient) GetWithAuthType(ctx context.Context, path, authType string) (any, error) {
	token := c.Token()

	var auth *httpclient.AuthConfig
	switch strings.ToLower(authType) {
	case AuthTypeBearer:
		auth = httpclient.BearerAuth(token)
	case AuthTypeBasic:
		auth = httpclient.BasicAuth(token)
	default:
		auth = httpclient.HeaderAuth(c.headerName, token)
	}

	return c.dispatch(ctx, http.MethodGet, path, nil, "", nil, auth)
}

// Post issues an authenticated POST with a JSON body.
func (c *TokenClient) Post(ctx context.Context, path string, body any) (any, error) {
	raw, err := marshalBody(body)
	if err != nil {
		return nil, httpclient.NewSerializationError(err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return c.dispatch(ctx, http.MethodPost, path, nil, raw, headers, c.authConfig())
}

// PostForm issues an authenticated POST with a URL-encoded form body.
func (c *TokenClient) PostForm(ctx context.Context, path string, form map[string]string) (any, error) {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}
	return c.dispatch(ctx, http.MethodPost, path, nil, values.Encode(), headers, c.authConfig())
}

// Put issues a PUT as a POST carrying the method override header, for
// backends that only route GET and POST.
func (c *TokenClient) Put(ctx context.Context, path string, body any) (any, error) {
	raw, err := marshalBody(body)
	if err != nil {
		return nil, httpclient.NewSerializationError(err)
	}
	headers := map[string]string{
		"Content-Type":       "application/json",
		HeaderMethodOverride: http.MethodPut,
	}
	return c.dispatch(ctx, http.MethodPost, path, nil, raw, headers, c.authConfig())
}

// Delete issues a DELETE as a GET carrying the method override header.
func (c *TokenClient) Delete(ctx context.Context, path string) (any, error) {
	headers := map[string]string{HeaderMethodOverride: http.MethodDelete}
	return c.dispatch(ctx, http.MethodGet, path, nil, "", headers, c.authConfig())
}

// Request dispatches by method name; unknown verbs return
// UnsupportedMethodError.
func (c *TokenClient) Request(ctx context.Context, method, path string, body any, params map[string]string) (any, error) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return c.Get(ctx, path, params)
	case http.MethodPost:
		return c.Post(ctx, path, body)
	case http.MethodPut:
		return c.Put(ctx, path, body)
	case http.MethodDelete:
		return c.Delete(ctx, path)
	default:
		return nil, &UnsupportedMethodError{Method: method}
	}
}

// Close releases pooled connections.
func (c *TokenClient) Close() {
	c.http.Close()
}

func (c *TokenClient) dispatch(ctx context.Context, method, path string, params map[string]string, body string, headers map[string]string, auth *httpclient.AuthConfig) (any, error) {
	c.log.Debug("dispatching token request", logger.Fields(
		logger.FieldMethod, method,
		logger.FieldURL, path,
	))

	var reqBody any
	if body != "" {
		reqBody = body
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  method,
		Path:    path,
		Query:   params,
		Headers: headers,
		Body:    reqBody,
		Auth:    auth,
	})
	return coerceResponse(resp, err)
}
