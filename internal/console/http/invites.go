package http

import (
	"net/http"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
)

type InviteHandler struct {
	InviteService *service.InviteService
}

// HandleList handles GET /v1/invites.
//
//	@Summary		List Invitations
//	@Description	Lists outstanding invitations
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	consolesdk.InviteResponse	"outstanding invitations"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/invites [get].
func (h *InviteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invites, err := h.InviteService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]consolesdk.InviteResponse, len(invites))
	for i, inv := range invites {
		out[i] = toInvite(inv)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleResolve handles GET /v1/invites/{token}.
//
//	@Summary		Resolve Invitation
//	@Description	Looks up the invitation behind a token
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path	string	true	"Invitation token"
//	@Success		200	{object}	consolesdk.InviteResponse	"email, role, target_id"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/invites/{token} [get].
func (h *InviteHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InviteService.Resolve(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvite(inv))
}

// HandleRedeem handles POST /v1/invites/{token}/redeem.
//
//	@Summary		Redeem Invitation
//	@Description	Consumes an invitation token and registers the invited client or translator
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			token	path	string	true	"Invitation token"
//	@Param			request	body	consolesdk.RegistrationRequest	true	"Registration form"
//	@Success		201	{object}	consolesdk.AccountResponse	"the new account"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/invites/{token}/redeem [post].
func (h *InviteHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.RegistrationRequest
	if !decode(w, r, &req) {
		return
	}

	acc, err := h.InviteService.Redeem(r.Context(), r.PathValue("token"), domain.Registration{
		Name:          req.Name,
		Username:      req.Username,
		Phone:         req.Phone,
		Password:      req.Password,
		AcceptedTerms: req.AcceptedTerms,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAccount(acc))
}
