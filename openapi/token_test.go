package openapi

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestTokenClient(t *testing.T, baseURL, token string, mutate func(*Config)) *TokenClient {
	t.Helper()
	cfg := Config{BaseURL: baseURL, Token: token}
	if mutate != nil {
		mutate(&cfg)
	}
	client, err := NewTokenClient(cfg)
	if err != nil {
		t.Fatalf("NewTokenClient() error = %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestTokenClientSendsConfiguredHeader(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("token")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestTokenClient(t, server.URL, "tok-1", nil)

	if _, err := client.Get(context.Background(), "v1/status", nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "tok-1" {
		t.Errorf("token header = %q, want tok-1", got)
	}
}

func TestTokenClientHeaderFormat(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestTokenClient(t, server.URL, "tok-1", func(cfg *Config) {
		cfg.AuthHeaderName = "Authorization"
		cfg.AuthHeaderFormat = "Bearer %s"
	})

	if _, err := client.Get(context.Background(), "v1/status", nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", got)
	}
}

func TestTokenClientRefreshTokenSwaps(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("token")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestTokenClient(t, server.URL, "old", nil)

	client.RefreshToken("new")
	if client.Token() != "new" {
		t.Errorf("Token() = %q, want new", client.Token())
	}

	if _, err := client.Get(context.Background(), "v1/status", nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "new" {
		t.Errorf("token header = %q, want new", got)
	}
}

func TestTokenClientPutDeleteUseMethodOverride(t *testing.T) {
	type seen struct {
		method   string
		override string
		body     string
	}
	var got seen
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = seen{
			method:   r.Method,
			override: r.Header.Get(HeaderMethodOverride),
			body:     string(body),
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestTokenClient(t, server.URL, "tok", nil)
	ctx := context.Background()

	if _, err := client.Put(ctx, "v1/orders/7", map[string]string{"status": "done"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if got.method != http.MethodPost || got.override != http.MethodPut {
		t.Errorf("Put sent %s/%s, want POST/PUT", got.method, got.override)
	}
	if got.body != `{"status":"done"}` {
		t.Errorf("Put body = %q", got.body)
	}

	if _, err := client.Delete(ctx, "v1/orders/7"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got.method != http.MethodGet || got.override != http.MethodDelete {
		t.Errorf("Delete sent %s/%s, want GET/DELETE", got.method, got.override)
	}
}

func TestTokenClientGetWithAuthType(t *testing.T) {
	var auth, tokenHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		tokenHeader = r.Header.Get("token")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestTokenClient(t, server.URL, "tok-1", func(cfg *Config) {
		cfg.AuthHeaderFormat = "Custom %s"
	})
	ctx := context.Background()

	if _, err := client.GetWithAuthType(ctx, "v1/x", AuthTypeBearer); err != nil {
		t.Fatalf("GetWithAuthType(bearer) error = %v", err)
	}
	if auth != "Bearer tok-1" {
		t.Errorf("bearer Authorization = %q", auth)
	}

	if _, err := client.GetWithAuthType(ctx, "v1/x", AuthTypeBasic); err != nil {
		t.Fatalf("GetWithAuthType(basic) error = %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("tok-1"))
	if auth != want {
		t.Errorf("basic Authorization = %q, want %q", auth, want)
	}

	// Unknown types fall back to the configured header with the raw token,
	// bypassing the format template.
	if _, err := client.GetWithAuthType(ctx, "v1/x", "whatever"); err != nil {
		t.Fatalf("GetWithAuthType(default) error = %v", err)
	}
	if tokenHeader != "tok-1" {
		t.Errorf("default token header = %q, want tok-1", tokenHeader)
	}

	if client.Token() != "tok-1" {
		t.Errorf("Token() = %q after GetWithAuthType, want unchanged", client.Token())
	}
}

func TestTokenClientPostForm(t *testing.T) {
	var body, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		contentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestTokenClient(t, server.URL, "tok", nil)

	if _, err := client.PostForm(context.Background(), "v1/form", map[string]string{"a": "1"}); err != nil {
		t.Fatalf("PostForm() error = %v", err)
	}
	if body != "a=1" {
		t.Errorf("body = %q, want a=1", body)
	}
	if contentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", contentType)
	}
}

func TestTokenClientRequestUnsupportedMethod(t *testing.T) {
	client := newTestTokenClient(t, "http://127.0.0.1:0", "tok", nil)

	_, err := client.Request(context.Background(), "PATCH", "v1/x", nil, nil)
	var unsupported *UnsupportedMethodError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Request(PATCH) error = %v, want UnsupportedMethodError", err)
	}
}
