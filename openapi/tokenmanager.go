package openapi

import (
	"context"
	"sync"
	"time"

	"github.com/skillsenselab/openapi-client/logger"
	"github.com/skillsenselab/openapi-client/signing"
)

// accessTokenField is the response field carrying the renewed token.
const accessTokenField = "access_token"

// TokenManager wraps a TokenClient with time-gated token renewal. A token
// is considered stale once its age exceeds the configured interval; the
// first check after construction is always due. Refresh failures are
// reported, logged, and otherwise swallowed: the current token keeps
// being used.
//
// Safe for concurrent use.
type TokenManager struct {
	client          *TokenClient
	refreshURL      string
	intervalSeconds int64
	log             *logger.Logger

	// now is injectable for tests.
	now signing.Clock

	mu sync.Mutex
	// lastRefresh is a Unix timestamp; zero means never refreshed.
	lastRefresh int64
}

// NewTokenManager creates a TokenManager around an existing client.
func NewTokenManager(client *TokenClient, cfg RefreshConfig, opts ...Option) *TokenManager {
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = defaultRefreshInterval
	}
	o := applyOptions(opts)
	return &TokenManager{
		client:          client,
		refreshURL:      cfg.URL,
		intervalSeconds: cfg.IntervalSeconds,
		log:             o.log.WithComponent("openapi.refresh"),
		now:             time.Now,
	}
}

// Client returns the managed TokenClient.
func (m *TokenManager) Client() *TokenClient {
	return m.client
}

// ShouldRefresh reports whether the token is due for renewal. Always false
// when no refresh URL is configured.
func (m *TokenManager) ShouldRefresh() bool {
	if m.refreshURL == "" {
		return false
	}
	m.mu.Lock()
	last := m.lastRefresh
	m.mu.Unlock()
	if last == 0 {
		return true
	}
	return m.now().Unix()-last > m.intervalSeconds
}

// Refresh posts the current token to the refresh endpoint and installs the
// returned access token. Returns true on success; every failure mode is
// logged and reported as false without disturbing the current token.
func (m *TokenManager) Refresh(ctx context.Context) bool {
	if m.refreshURL == "" {
		return false
	}

	result, err := m.client.Post(ctx, m.refreshURL, map[string]string{
		"token": m.client.Token(),
	})
	if err != nil {
		m.log.Warn("token refresh request failed", logger.Fields(logger.FieldError, err.Error()))
		return false
	}

	payload, ok := result.(map[string]any)
	if !ok {
		m.log.Warn("token refresh response is not an object", nil)
		return false
	}
	token, ok := payload[accessTokenField].(string)
	if !ok || token == "" {
		m.log.Warn("token refresh response carries no access token", nil)
		return false
	}

	m.client.RefreshToken(token)
	m.mu.Lock()
	m.lastRefresh = m.now().Unix()
	m.mu.Unlock()

	m.log.Debug("token refreshed", nil)
	return true
}

// Get issues a GET through the managed client, refreshing first when
// autoRefresh is set and the token is due.
func (m *TokenManager) Get(ctx context.Context, path string, params map[string]string, autoRefresh bool) (any, error) {
	if autoRefresh && m.ShouldRefresh() {
		m.Refresh(ctx)
	}
	return m.client.Get(ctx, path, params)
}

// Post issues a POST through the managed client, refreshing first when
// autoRefresh is set and the token is due.
func (m *TokenManager) Post(ctx context.Context, path string, body any, autoRefresh bool) (any, error) {
	if autoRefresh && m.ShouldRefresh() {
		m.Refresh(ctx)
	}
	return m.client.Post(ctx, path, body)
}

// Close closes the managed client.
func (m *TokenManager) Close() {
	m.client.Close()
}
