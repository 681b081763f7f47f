package http

import (
	"net/http"

	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
	"github.com/cirrustranslate/console/pkg/slogx"
)

type SnapshotHandler struct {
	SnapshotService  *service.SnapshotService
	BootstrapService *service.BootstrapService
}

// HandleExport handles GET /v1/snapshot.
//
//	@Summary		Export Snapshot
//	@Description	Exports the whole console state
//	@Tags			Snapshot
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	consolesdk.Snapshot	"admin, clients, translators, projects, accounts, invites"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/snapshot [get].
func (h *SnapshotHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	snap, err := h.SnapshotService.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("snapshot exported")
	httpx.WriteJSON(w, http.StatusOK, toSnapshot(snap))
}

// HandleImport handles POST /v1/snapshot. It needs the setup token, when
// one is configured, and an empty console.
//
//	@Summary		Import Snapshot
//	@Description	Restores a snapshot into an empty console
//	@Tags			Snapshot
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header	string	false	"Setup token, when one is configured"
//	@Param			request	body	consolesdk.Snapshot	true	"Snapshot"
//	@Success		204	"No Content"
//	@Failure		400	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/snapshot [post].
func (h *SnapshotHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if err := h.BootstrapService.CheckToken(r.Header.Get(consolesdk.BootstrapTokenHeader)); err != nil {
		writeError(w, r, err)
		return
	}

	var req consolesdk.Snapshot
	if !decode(w, r, &req) {
		return
	}

	if err := h.SnapshotService.Import(r.Context(), fromSnapshot(req)); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
