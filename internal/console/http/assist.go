package http

import (
	"net/http"

	"github.com/cirrustranslate/console/internal/console/assist"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
)

// AssistHandler always answers 200: provider failures come back as a
// readable message in the text field.
type AssistHandler struct {
	AssistService *assist.Service
}

// HandleDraft handles POST /v1/assist/draft.
//
//	@Summary		Draft Translation
//	@Description	Asks the language model for a draft translation
//	@Tags			Assist
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	consolesdk.DraftRequest	true	"Source text and languages"
//	@Success		200	{object}	consolesdk.AssistResponse	"text"
//	@Failure		400	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		429	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/assist/draft [post].
func (h *AssistHandler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.DraftRequest
	if !decode(w, r, &req) {
		return
	}

	text := h.AssistService.Draft(r.Context(), req.Text, req.SourceLang, req.TargetLang)
	httpx.WriteJSON(w, http.StatusOK, consolesdk.AssistResponse{Text: text})
}

// HandleReview handles POST /v1/assist/review.
//
//	@Summary		Review Translation
//	@Description	Asks the language model to review a translation
//	@Tags			Assist
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	consolesdk.ReviewRequest	true	"Source, target and languages"
//	@Success		200	{object}	consolesdk.AssistResponse	"text"
//	@Failure		400	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		429	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/assist/review [post].
func (h *AssistHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.ReviewRequest
	if !decode(w, r, &req) {
		return
	}

	text := h.AssistService.Review(r.Context(), req.Source, req.Target, req.SourceLang, req.TargetLang)
	httpx.WriteJSON(w, http.StatusOK, consolesdk.AssistResponse{Text: text})
}
