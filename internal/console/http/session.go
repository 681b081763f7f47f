package http

import (
	"net/http"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
)

type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleLogin handles POST /v1/session.
//
//	@Summary		Sign In
//	@Description	Exchanges a username or email and password for a session token
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body	consolesdk.LoginRequest	true	"Credentials"
//	@Success		200	{object}	consolesdk.SessionResponse	"token, token_type, expires_at, account"
//	@Failure		400	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/session [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	sess, err := h.SessionService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, consolesdk.SessionResponse{
		Token:     sess.Token,
		TokenType: "Bearer",
		ExpiresAt: sess.ExpiresAt,
		Account:   toAccount(sess.Account),
	})
}

// HandleMe handles GET /v1/me.
//
//	@Summary		Current Account
//	@Description	Describes the caller of the session token
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	consolesdk.MeResponse	"account_id, role, username"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/me [get].
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, service.ErrForbidden)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, consolesdk.MeResponse{
		AccountID: claims.Subject,
		Role:      claims.Role,
		RecordID:  claims.RecordID,
		Username:  claims.Username,
		Name:      claims.Name,
	})
}

// actor is the authenticated caller. Only valid behind AuthnMiddleware.
func actor(r *http.Request) domain.Actor {
	claims, _ := httpx.ClaimsFrom(r.Context())
	return service.ActorFromClaims(claims)
}
