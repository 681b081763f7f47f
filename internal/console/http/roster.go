package http

import (
	"net/http"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
)

type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleInvite handles POST /v1/clients.
//
//	@Summary		Invite Client
//	@Description	Creates a pending client and an invitation for them
//	@Tags			Roster
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	consolesdk.ClientRequest	true	"Client details"
//	@Success		201	{object}	consolesdk.ClientInvitationResponse	"client, invite, invite_url"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.ClientRequest
	if !decode(w, r, &req) {
		return
	}

	inv, err := h.ClientService.Invite(r.Context(), domain.ClientDraft{
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		RatePerMinute: req.RatePerMinute,
		RatePerWord:   req.RatePerWord,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClientInvitation(inv))
}

// HandleList handles GET /v1/clients.
//
//	@Summary		List Clients
//	@Description	Lists every client
//	@Tags			Roster
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	consolesdk.ClientResponse	"clients"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]consolesdk.ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClient(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/clients/{id}.
//
//	@Summary		Get Client
//	@Description	Fetches one client
//	@Tags			Roster
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID"
//	@Success		200	{object}	consolesdk.ClientResponse	"client"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.ClientService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClient(c))
}

// HandleUpdateRates handles PUT /v1/clients/{id}/rates.
//
//	@Summary		Update Client Rates
//	@Description	Sets the per-minute and per-word rates of a client
//	@Tags			Roster
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID"
//	@Param			request	body	consolesdk.RatesRequest	true	"New rates"
//	@Success		200	{object}	consolesdk.ClientResponse	"client"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id}/rates [put].
func (h *ClientsHandler) HandleUpdateRates(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.RatesRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.ClientService.UpdateRates(r.Context(), r.PathValue("id"), domain.Rates{
		RatePerMinute: req.RatePerMinute,
		RatePerWord:   req.RatePerWord,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClient(c))
}

type TranslatorsHandler struct {
	TranslatorService *service.TranslatorService
}

// HandleInvite handles POST /v1/translators.
//
//	@Summary		Invite Translator
//	@Description	Creates a pending translator and an invitation for them
//	@Tags			Roster
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	consolesdk.TranslatorRequest	true	"Translator details"
//	@Success		201	{object}	consolesdk.TranslatorInvitationResponse	"translator, invite, invite_url"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/translators [post].
func (h *TranslatorsHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.TranslatorRequest
	if !decode(w, r, &req) {
		return
	}

	inv, err := h.TranslatorService.Invite(r.Context(), domain.TranslatorDraft{
		Name:          req.Name,
		Email:         req.Email,
		IsDeaf:        req.IsDeaf,
		RatePerWord:   req.RatePerWord,
		RatePerMinute: req.RatePerMinute,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTranslatorInvitation(inv))
}

// HandleList handles GET /v1/translators.
//
//	@Summary		List Translators
//	@Description	Lists every translator
//	@Tags			Roster
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	consolesdk.TranslatorResponse	"translators"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/translators [get].
func (h *TranslatorsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	translators, err := h.TranslatorService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]consolesdk.TranslatorResponse, len(translators))
	for i, t := range translators {
		out[i] = toTranslator(t)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/translators/{id}.
//
//	@Summary		Get Translator
//	@Description	Fetches one translator
//	@Tags			Roster
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Translator ID"
//	@Success		200	{object}	consolesdk.TranslatorResponse	"translator"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/translators/{id} [get].
func (h *TranslatorsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	t, err := h.TranslatorService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTranslator(t))
}

// HandleUpdateRates handles PUT /v1/translators/{id}/rates.
//
//	@Summary		Update Translator Rates
//	@Description	Sets the per-minute and per-word rates of a translator
//	@Tags			Roster
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Translator ID"
//	@Param			request	body	consolesdk.RatesRequest	true	"New rates"
//	@Success		200	{object}	consolesdk.TranslatorResponse	"translator"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/translators/{id}/rates [put].
func (h *TranslatorsHandler) HandleUpdateRates(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.RatesRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.TranslatorService.UpdateRates(r.Context(), r.PathValue("id"), domain.Rates{
		RatePerMinute: req.RatePerMinute,
		RatePerWord:   req.RatePerWord,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTranslator(t))
}
