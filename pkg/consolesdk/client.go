package consolesdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BootstrapTokenHeader carries the pre-shared setup token.
const BootstrapTokenHeader = "X-Bootstrap-Token"

// SDKClient talks to the console's public endpoints and creates Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login signs in with a username or email and returns an authenticated
// Session.
func (c *SDKClient) Login(ctx context.Context, login, password string) (*Session, error) {
	var out SessionResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/session", LoginRequest{Login: login, Password: password},
		nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return newSession(c, &out), nil
}

// NewSessionFromToken wraps a bearer token obtained earlier.
func (c *SDKClient) NewSessionFromToken(token string, expiresAt time.Time) *Session {
	return &Session{client: c, token: token, expiresAt: expiresAt}
}

// ============================================================================
// Platform Setup
// ============================================================================

// BootstrapStatus reports whether the manager account exists yet.
func (c *SDKClient) BootstrapStatus(ctx context.Context) (*BootstrapStatusResponse, error) {
	var out BootstrapStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/bootstrap", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bootstrap creates the manager account. It only succeeds once.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*AccountResponse, error) {
	headers := map[string]string{BootstrapTokenHeader: token}

	var out AccountResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/bootstrap", req, headers, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportSnapshot restores a snapshot into a console that has not been set up.
func (c *SDKClient) ImportSnapshot(ctx context.Context, token string, snap Snapshot) error {
	headers := map[string]string{BootstrapTokenHeader: token}

	resp, err := c.doBody(ctx, http.MethodPost, "/v1/snapshot", snap, headers)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Invites
// ============================================================================

// ResolveInvite looks up a pending invite. Used, expired and unknown tokens
// all come back as a 404 APIError.
func (c *SDKClient) ResolveInvite(ctx context.Context, token string) (*InviteResponse, error) {
	var out InviteResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/invites/"+url.PathEscape(token), nil, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RedeemInvite registers an account against an invite and consumes it.
func (c *SDKClient) RedeemInvite(ctx context.Context, token string, req RegistrationRequest) (*AccountResponse, error) {
	var out AccountResponse
	path := "/v1/invites/" + url.PathEscape(token) + "/redeem"
	if err := c.doJSON(ctx, http.MethodPost, path, req, nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Health
// ============================================================================

func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
