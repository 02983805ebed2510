package openapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestManager(t *testing.T, baseURL string, refresh RefreshConfig) *TokenManager {
	t.Helper()
	client := newTestTokenClient(t, baseURL, "initial", nil)
	return NewTokenManager(client, refresh)
}

func TestShouldRefreshWithoutURL(t *testing.T) {
	m := newTestManager(t, "http://127.0.0.1:0", RefreshConfig{})
	if m.ShouldRefresh() {
		t.Error("ShouldRefresh() = true without a refresh URL")
	}
}

func TestShouldRefreshFirstCheckIsDue(t *testing.T) {
	m := newTestManager(t, "http://127.0.0.1:0", RefreshConfig{URL: "auth/refresh"})
	if !m.ShouldRefresh() {
		t.Error("ShouldRefresh() = false before any refresh, want true")
	}
}

func TestShouldRefreshInterval(t *testing.T) {
	m := newTestManager(t, "http://127.0.0.1:0", RefreshConfig{URL: "auth/refresh", IntervalSeconds: 60})

	base := time.Unix(1700000000, 0)
	m.now = func() time.Time { return base }
	m.mu.Lock()
	m.lastRefresh = base.Unix()
	m.mu.Unlock()

	if m.ShouldRefresh() {
		t.Error("ShouldRefresh() = true immediately after refresh")
	}

	m.now = func() time.Time { return base.Add(60 * time.Second) }
	if m.ShouldRefresh() {
		t.Error("ShouldRefresh() = true at exactly the interval, want false")
	}

	m.now = func() time.Time { return base.Add(61 * time.Second) }
	if !m.ShouldRefresh() {
		t.Error("ShouldRefresh() = false past the interval, want true")
	}
}

func TestRefreshReplacesToken(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/refresh" {
			http.NotFound(w, r)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"renewed"}`))
	}))
	defer server.Close()

	m := newTestManager(t, server.URL, RefreshConfig{URL: "auth/refresh"})

	if !m.Refresh(context.Background()) {
		t.Fatal("Refresh() = false, want true")
	}
	if gotBody["token"] != "initial" {
		t.Errorf("refresh request token = %q, want initial", gotBody["token"])
	}
	if m.Client().Token() != "renewed" {
		t.Errorf("Token() = %q after refresh, want renewed", m.Client().Token())
	}
	if m.ShouldRefresh() {
		t.Error("ShouldRefresh() = true right after a successful refresh")
	}
}

func TestRefreshFailureKeepsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	m := newTestManager(t, server.URL, RefreshConfig{URL: "auth/refresh"})

	if m.Refresh(context.Background()) {
		t.Fatal("Refresh() = true on server error, want false")
	}
	if m.Client().Token() != "initial" {
		t.Errorf("Token() = %q after failed refresh, want initial", m.Client().Token())
	}
	if !m.ShouldRefresh() {
		t.Error("ShouldRefresh() = false after failed refresh, want still due")
	}
}

func TestRefreshMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not an object", `"oops"`},
		{"missing field", `{"token_type":"bearer"}`},
		{"wrong type", `{"access_token":42}`},
		{"empty token", `{"access_token":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			m := newTestManager(t, server.URL, RefreshConfig{URL: "auth/refresh"})
			if m.Refresh(context.Background()) {
				t.Error("Refresh() = true on malformed response, want false")
			}
			if m.Client().Token() != "initial" {
				t.Errorf("Token() = %q, want initial", m.Client().Token())
			}
		})
	}
}

func TestManagerGetAutoRefresh(t *testing.T) {
	var refreshes atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshes.Add(1)
			_, _ = w.Write([]byte(`{"access_token":"renewed"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	m := newTestManager(t, server.URL, RefreshConfig{URL: "auth/refresh", IntervalSeconds: 3600})
	ctx := context.Background()

	if _, err := m.Get(ctx, "v1/status", nil, false); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if refreshes.Load() != 0 {
		t.Errorf("refreshes = %d without autoRefresh, want 0", refreshes.Load())
	}

	if _, err := m.Get(ctx, "v1/status", nil, true); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if refreshes.Load() != 1 {
		t.Errorf("refreshes = %d after first auto-refresh, want 1", refreshes.Load())
	}

	// Within the interval the second call must not refresh again.
	if _, err := m.Get(ctx, "v1/status", nil, true); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if refreshes.Load() != 1 {
		t.Errorf("refreshes = %d within interval, want still 1", refreshes.Load())
	}

	if m.Client().Token() != "renewed" {
		t.Errorf("Token() = %q, want renewed", m.Client().Token())
	}
}
