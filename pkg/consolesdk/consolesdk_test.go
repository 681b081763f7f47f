package consolesdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		code    string
		desc    string
		details map[string]string
	}{
		{
			name:   "error body",
			status: http.StatusNotFound,
			body:   `{"error":"not_found","error_description":"invite not found or expired"}`,
			code:   ErrorCodeNotFound,
			desc:   "invite not found or expired",
		},
		{
			name:    "validation body",
			status:  http.StatusBadRequest,
			body:    `{"code":"validation_error","message":"validation failed","details":{"email":"must be a valid email address"}}`,
			code:    ErrorCodeValidation,
			desc:    "validation failed",
			details: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:   "plain text",
			status: http.StatusBadGateway,
			body:   "upstream down",
			code:   ErrorCodeServerError,
			desc:   "HTTP 502: Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErrorResponse(&http.Response{StatusCode: tt.status}, []byte(tt.body))
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.code, apiErr.Code)
			require.Equal(t, tt.desc, apiErr.Description)
			require.Equal(t, tt.details, apiErr.Details)
		})
	}

	require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusOK}, nil))
}

func TestWriteErrorRoundTrip(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewValidationError("validation failed", map[string]string{"name": "is required"}).WriteError(rec)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, ErrorCodeValidation, body.Code)
	require.Equal(t, "is required", body.Details["name"])

	rec = httptest.NewRecorder()
	ErrInvalidCredentials.WriteError(rec)
	err := parseErrorResponse(&http.Response{StatusCode: rec.Code}, rec.Body.Bytes())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Invalid credentials. Please try again.", apiErr.Description)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestLoginAndAuthenticatedCall(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/session", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ErrInvalidRequest.WriteError(w)
			return
		}
		if req.Password != "right" {
			ErrInvalidCredentials.WriteError(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SessionResponse{
			Token:     "tok",
			TokenType: "Bearer",
			ExpiresAt: time.Now().Add(time.Hour),
			Account:   AccountResponse{ID: "a1", Username: req.Login, Role: "CLIENT"},
		})
	})
	mux.HandleFunc("GET /v1/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.PathValue("id") != "p1" {
			ErrNotFound.WriteError(w)
			return
		}
		_ = json.NewEncoder(w).Encode(ProjectResponse{ID: "p1", Status: "NEW"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL + "/")
	ctx := context.Background()

	_, err := client.Login(ctx, "acme", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeInvalidCredentials, apiErr.Code)

	session, err := client.Login(ctx, "acme", "right")
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())
	require.Equal(t, "a1", session.Account().ID)

	p, err := session.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "NEW", p.Status)

	_, err = session.GetProject(ctx, "p2")
	require.True(t, IsNotFound(err))

	session.Logout()
	_, err = session.GetProject(ctx, "p1")
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestExpiredSessionDoesNotCallServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	t.Cleanup(srv.Close)

	session := NewSDKClient(srv.URL).NewSessionFromToken("tok", time.Now().Add(-time.Minute))
	_, err := session.ListProjects(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)
}
