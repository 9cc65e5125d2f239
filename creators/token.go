package creators

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/affiliatekit/amazonapi/amazon"
)

const (
	tokenScope = "creatorsapi/default"

	// expirySafetyMargin is subtracted from the server-reported lifetime
	// so a token is never used in its final seconds.
	expirySafetyMargin = 30 * time.Second

	// defaultExpiresIn applies when the token response omits expires_in.
	defaultExpiresIn = 3600
)

// tokenRegions maps API versions to the Cognito region hosting their
// token endpoint. Closed mapping; unknown versions need an explicit
// endpoint override.
var tokenRegions = map[string]string{
	"2.1": "us-east-1",
	"2.2": "eu-south-2",
	"2.3": "us-west-2",
}

// TokenManager provides a valid bearer token on demand, refreshing at
// most once across concurrent callers.
type TokenManager struct {
	credentialID     string
	credentialSecret string
	endpoint         string
	client           *http.Client
	logger           zerolog.Logger
	now              func() time.Time

	group singleflight.Group

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenManager creates a manager for the given credentials. The token
// endpoint is derived from the API version unless endpointOverride is
// non-empty; an unknown version with no override is a construction error.
func NewTokenManager(credentialID, credentialSecret, version, endpointOverride string, logger zerolog.Logger) (*TokenManager, error) {
	endpoint := endpointOverride
	if endpoint == "" {
		region, ok := tokenRegions[version]
		if !ok {
			return nil, fmt.Errorf("%w: no token endpoint known for API version %q", amazon.ErrInvalidArgument, version)
		}
		endpoint = fmt.Sprintf("https://creatorsapi.auth.%s.amazoncognito.com/oauth2/token", region)
	}

	client := cleanhttp.DefaultClient()
	client.Timeout = amazon.DefaultTimeout

	return &TokenManager{
		credentialID:     credentialID,
		credentialSecret: credentialSecret,
		endpoint:         endpoint,
		client:           client,
		logger:           logger,
		now:              time.Now,
	}, nil
}

// Token returns the cached token if still valid, otherwise refreshes.
// Concurrent callers share a single refresh; callers arriving after the
// refresh completed observe the refreshed value without a second call.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if token, ok := m.cached(); ok {
		return token, nil
	}

	v, err, _ := m.group.Do("refresh", func() (any, error) {
		// Revalidate: a waiter queued behind a completed refresh must
		// see the fresh token rather than refresh again.
		if token, ok := m.cached(); ok {
			return token, nil
		}
		return m.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Clear drops the cached token, forcing the next Token call to refresh.
func (m *TokenManager) Clear() {
	m.mu.Lock()
	m.token = ""
	m.expiry = time.Time{}
	m.mu.Unlock()
}

func (m *TokenManager) cached() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token != "" && m.now().Before(m.expiry) {
		return m.token, true
	}
	return "", false
}

// refresh exchanges the client credentials for a fresh access token. Any
// failure clears the cache so the next call starts from a clean slate.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {m.credentialID},
		"client_secret": {m.credentialSecret},
		"scope":         {tokenScope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		m.Clear()
		return "", fmt.Errorf("%w: %v", amazon.ErrAuthentication, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		m.Clear()
		return "", fmt.Errorf("%w: token request failed: %v", amazon.ErrAuthentication, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		m.Clear()
		return "", fmt.Errorf("%w: reading token response: %v", amazon.ErrAuthentication, err)
	}
	if resp.StatusCode != http.StatusOK {
		m.Clear()
		return "", fmt.Errorf("%w: token endpoint returned status %d: %s", amazon.ErrAuthentication, resp.StatusCode, body)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		m.Clear()
		return "", fmt.Errorf("%w: decoding token response: %v", amazon.ErrAuthentication, err)
	}
	if payload.AccessToken == "" {
		m.Clear()
		return "", fmt.Errorf("%w: token response has no access_token", amazon.ErrAuthentication)
	}
	if payload.ExpiresIn == 0 {
		payload.ExpiresIn = defaultExpiresIn
	}

	expiry := m.now().Add(time.Duration(payload.ExpiresIn)*time.Second - expirySafetyMargin)
	m.mu.Lock()
	m.token = payload.AccessToken
	m.expiry = expiry
	m.mu.Unlock()

	m.logger.Debug().
		Time("expiry", expiry).
		Msg("Refreshed access token")
	return payload.AccessToken, nil
}
