package openapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/skillsenselab/openapi-client/httpclient"
	"github.com/skillsenselab/openapi-client/logger"
	"github.com/skillsenselab/openapi-client/signing"
)

// KeyClient authenticates every request with an HMAC-SHA256 signature
// computed from the configured credentials. The signature covers the exact
// bytes sent on the wire, so bodies are serialized once, before signing.
//
// Safe for concurrent use.
type KeyClient struct {
	creds  signing.Credentials
	scheme signing.Scheme
	http   *httpclient.Client
	log    *logger.Logger
}

// NewKeyClient creates a KeyClient from the configuration.
func NewKeyClient(cfg Config, opts ...Option) (*KeyClient, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hc, err := httpclient.New(cfg.httpConfig())
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	scheme := o.scheme
	if scheme == nil {
		scheme = cfg.newScheme()
	}

	return &KeyClient{
		creds:  cfg.Credentials,
		scheme: scheme,
		http:   hc,
		log:    o.log.WithComponent("openapi.key"),
	}, nil
}

// Get issues a signed GET request. params are merged into the query string
// before signing, so path-aware signatures cover them.
func (c *KeyClient) Get(ctx context.Context, path string, params map[string]string) (any, error) {
	return c.dispatch(ctx, http.MethodGet, path, params, "", nil)
}

// Post issues a signed POST request with a JSON body. A string body is sent
// verbatim; any other value is marshaled to JSON.
func (c *KeyClient) Post(ctx context.Context, path string, body any) (any, error) {
	raw, err := marshalBody(body)
	if err != nil {
		return nil, httpclient.NewSerializationError(err)
	}
	return c.dispatch(ctx, http.MethodPost, path, nil, raw, nil)
}

// PostForm issues a signed POST with a URL-encoded form body. The signature
// covers the JSON rendering of the form fields, matching the server's
// verifier, while the wire body is the standard URL encoding.
func (c *KeyClient) PostForm(ctx context.Context, path string, form map[string]string) (any, error) {
	signed, err := marshalBody(form)
	if err != nil {
		return nil, httpclient.NewSerializationError(err)
	}

	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}

	return c.dispatchForm(ctx, path, signed, values.Encode())
}

// Request dispatches by method name. PUT is folded into POST and DELETE
// into GET, mirroring the backend's accepted verbs; anything else returns
// UnsupportedMethodError.
func (c *KeyClient) Request(ctx context.Context, method, path string, body any, params map[string]string) (any, error) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return c.Get(ctx, path, params)
	case http.MethodPost, http.MethodPut:
		return c.Post(ctx, path, body)
	case http.MethodDelete:
		return c.Get(ctx, path, params)
	default:
		return nil, &UnsupportedMethodError{Method: method}
	}
}

// Close releases pooled connections.
func (c *KeyClient) Close() {
	c.http.Close()
}

// dispatch resolves the target URL, computes the auth header set over the
// serialized body, and executes the request.
func (c *KeyClient) dispatch(ctx context.Context, method, path string, params map[string]string, body string, headers map[string]string) (any, error) {
	target, err := c.http.ResolveURL(path, params)
	if err != nil {
		return nil, err
	}

	facts := signing.RequestFacts{
		Method:        method,
		PathWithQuery: pathWithQuery(target),
		Body:          body,
	}
	auth := c.scheme.Headers(c.creds, facts)

	c.log.Debug("dispatching signed request", logger.Fields(
		logger.FieldMethod, method,
		logger.FieldURL, target.String(),
		"scheme", c.scheme.Name(),
	))

	var reqBody any
	if body != "" {
		reqBody = body
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  method,
		Path:    target.String(),
		Headers: headers,
		Body:    reqBody,
		Auth:    httpclient.CustomAuth(httpclient.HeaderSetter(auth)),
	})
	return coerceResponse(resp, err)
}

// dispatchForm is dispatch with the signed and wire bodies decoupled: the
// signature is computed over signed while encoded travels on the wire.
func (c *KeyClient) dispatchForm(ctx context.Context, path, signed, encoded string) (any, error) {
	target, err := c.http.ResolveURL(path, nil)
	if err != nil {
		return nil, err
	}

	facts := signing.RequestFacts{
		Method:        http.MethodPost,
		PathWithQuery: pathWithQuery(target),
		Body:          signed,
	}
	auth := c.scheme.Headers(c.creds, facts)

	c.log.Debug("dispatching signed form request", logger.Fields(
		logger.FieldMethod, http.MethodPost,
		logger.FieldURL, target.String(),
		"scheme", c.scheme.Name(),
	))

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    target.String(),
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		Body:    encoded,
		Auth:    httpclient.CustomAuth(httpclient.HeaderSetter(auth)),
	})
	return coerceResponse(resp, err)
}

// marshalBody serializes a request body to its wire form. Strings pass
// through untouched; nil yields the empty string.
func marshalBody(body any) (string, error) {
	switch v := body.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// pathWithQuery renders the canonical path-with-query form signed by the
// path-aware scheme.
func pathWithQuery(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}
	return u.Path + "?" + u.RawQuery
}
