package consolesdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// ErrSessionExpired is returned before sending a request with a token that
// has already expired. Sign in again to continue.
var ErrSessionExpired = errors.New("session expired")

// Session is a signed-in account. Sessions are not refreshed; once the token
// expires every call fails with ErrSessionExpired.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	account   AccountResponse
}

func newSession(c *SDKClient, resp *SessionResponse) *Session {
	return &Session{
		client:    c,
		token:     resp.Token,
		expiresAt: resp.ExpiresAt,
		account:   resp.Account,
	}
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Account is the account returned at sign-in. Empty for sessions built
// from a token.
func (s *Session) Account() AccountResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Logout forgets the token locally. Session tokens are stateless, so the
// server has nothing to revoke.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
	s.account = AccountResponse{}
}

func (s *Session) bearer() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrSessionExpired
	}
	if !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

// doAuthJSON sends an authenticated JSON request and decodes the response.
// A nil target expects 204 No Content.
func (s *Session) doAuthJSON(
	ctx context.Context,
	method, path string,
	payload any,
	target any,
	expectedStatus int,
) error {
	token, err := s.bearer()
	if err != nil {
		return err
	}

	headers := map[string]string{"Authorization": "Bearer " + token}
	resp, err := s.client.doBody(ctx, method, path, payload, headers)
	if err != nil {
		return err
	}

	if target == nil {
		return checkStatusNoContent(resp)
	}
	return decodeJSON(resp, target, expectedStatus)
}

// ============================================================================
// Account
// ============================================================================

func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Invites & Roster (manager)
// ============================================================================

func (s *Session) ListInvites(ctx context.Context) ([]InviteResponse, error) {
	var out []InviteResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/invites", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// InviteClient creates a pending client and returns the invite link for it.
func (s *Session) InviteClient(ctx context.Context, req ClientRequest) (*ClientInvitationResponse, error) {
	var out ClientInvitationResponse
	if err := s.doAuthJSON(ctx, http.MethodPost, "/v1/clients", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListClients(ctx context.Context) ([]ClientResponse, error) {
	var out []ClientResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/clients", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetClient(ctx context.Context, id string) (*ClientResponse, error) {
	var out ClientResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateClientRates(ctx context.Context, id string, req RatesRequest) (*ClientResponse, error) {
	var out ClientResponse
	path := "/v1/clients/" + url.PathEscape(id) + "/rates"
	if err := s.doAuthJSON(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// InviteTranslator creates a pending translator and returns the invite link.
func (s *Session) InviteTranslator(ctx context.Context, req TranslatorRequest) (*TranslatorInvitationResponse, error) {
	var out TranslatorInvitationResponse
	if err := s.doAuthJSON(ctx, http.MethodPost, "/v1/translators", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListTranslators(ctx context.Context) ([]TranslatorResponse, error) {
	var out []TranslatorResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/translators", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetTranslator(ctx context.Context, id string) (*TranslatorResponse, error) {
	var out TranslatorResponse
	path := "/v1/translators/" + url.PathEscape(id)
	if err := s.doAuthJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateTranslatorRates(ctx context.Context, id string, req RatesRequest) (*TranslatorResponse, error) {
	var out TranslatorResponse
	path := "/v1/translators/" + url.PathEscape(id) + "/rates"
	if err := s.doAuthJSON(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Projects
// ============================================================================

func (s *Session) CreateProject(ctx context.Context, req ProjectRequest) (*ProjectResponse, error) {
	var out ProjectResponse
	if err := s.doAuthJSON(ctx, http.MethodPost, "/v1/projects", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProjects returns the projects visible to the signed-in account.
func (s *Session) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	var out []ProjectResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/projects", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetProject(ctx context.Context, id string) (*ProjectResponse, error) {
	var out ProjectResponse
	path := "/v1/projects/" + url.PathEscape(id)
	if err := s.doAuthJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*ProjectResponse, error) {
	var out ProjectResponse
	path := "/v1/projects/" + url.PathEscape(id)
	if err := s.doAuthJSON(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) AssignTranslators(ctx context.Context, id string, translatorIDs []string) (*ProjectResponse, error) {
	var out ProjectResponse
	path := "/v1/projects/" + url.PathEscape(id) + "/translators"
	req := AssignTranslatorsRequest{TranslatorIDs: translatorIDs}
	if err := s.doAuthJSON(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) SetStatus(ctx context.Context, id, status string) (*ProjectResponse, error) {
	var out ProjectResponse
	path := "/v1/projects/" + url.PathEscape(id) + "/status"
	if err := s.doAuthJSON(ctx, http.MethodPut, path, StatusRequest{Status: status}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Finalize(ctx context.Context, id string) (*ProjectResponse, error) {
	var out ProjectResponse
	path := "/v1/projects/" + url.PathEscape(id) + "/finalize"
	if err := s.doAuthJSON(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) WorkflowSteps(ctx context.Context) ([]string, error) {
	var out WorkflowStepsResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/workflow/steps", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Steps, nil
}

func (s *Session) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/dashboard", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Translation Assist
// ============================================================================

func (s *Session) Draft(ctx context.Context, req DraftRequest) (string, error) {
	var out AssistResponse
	if err := s.doAuthJSON(ctx, http.MethodPost, "/v1/assist/draft", req, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (s *Session) Review(ctx context.Context, req ReviewRequest) (string, error) {
	var out AssistResponse
	if err := s.doAuthJSON(ctx, http.MethodPost, "/v1/assist/review", req, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Text, nil
}

// ============================================================================
// Snapshot
// ============================================================================

func (s *Session) ExportSnapshot(ctx context.Context) (*Snapshot, error) {
	var out Snapshot
	if err := s.doAuthJSON(ctx, http.MethodGet, "/v1/snapshot", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
