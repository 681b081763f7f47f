package http

import (
	"net/http"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
	"github.com/cirrustranslate/console/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// HandleStatus handles GET /v1/bootstrap. The front end shows the setup form
// until this reports true.
//
//	@Summary		Setup Status
//	@Description	Reports whether the manager account exists
//	@Tags			Setup
//	@Produce		json
//	@Success		200	{object}	consolesdk.BootstrapStatusResponse	"bootstrapped"
//	@Failure		500	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/bootstrap [get].
func (h *BootstrapHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	done, err := h.BootstrapService.IsBootstrapped(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, consolesdk.BootstrapStatusResponse{Bootstrapped: done})
}

// HandleBootstrap handles POST /v1/bootstrap and creates the manager account.
//
//	@Summary		Create Manager
//	@Description	Creates the single manager account on a fresh console
//	@Tags			Setup
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header	string	false	"Setup token, when one is configured"
//	@Param			request	body	consolesdk.BootstrapRequest	true	"Manager details"
//	@Success		201	{object}	consolesdk.AccountResponse	"the manager account"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) HandleBootstrap(w http.ResponseWriter, r *http.Request) {
	slogx.FromContext(r.Context()).Info("starting platform setup")

	var req consolesdk.BootstrapRequest
	if !decode(w, r, &req) {
		return
	}

	admin, err := h.BootstrapService.Bootstrap(
		r.Context(),
		r.Header.Get(consolesdk.BootstrapTokenHeader),
		domain.AdminSetup{
			Name:     req.Name,
			Email:    req.Email,
			Username: req.Username,
			Password: req.Password,
		},
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAccount(admin))
}
