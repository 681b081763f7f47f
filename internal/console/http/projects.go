package http

import (
	"net/http"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
)

// ProjectsHandler serves project CRUD, the workflow tracker and the
// dashboard.
type ProjectsHandler struct {
	ProjectService   *service.ProjectService
	WorkflowService  *service.WorkflowService
	DashboardService *service.DashboardService
}

// HandleCreate handles POST /v1/projects.
//
//	@Summary		Create Project
//	@Description	Creates a project and freezes its client quote
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	consolesdk.ProjectRequest	true	"Project details"
//	@Success		201	{object}	consolesdk.ProjectResponse	"project"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.ProjectRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.ProjectService.Create(r.Context(), projectDraft(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProject(p))
}

// HandleList handles GET /v1/projects. The result depends on who is asking.
//
//	@Summary		List Projects
//	@Description	Lists the projects visible to the caller
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	consolesdk.ProjectResponse	"projects"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.List(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjects(projects))
}

// HandleGet handles GET /v1/projects/{id}.
//
//	@Summary		Get Project
//	@Description	Fetches one project visible to the caller
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Success		200	{object}	consolesdk.ProjectResponse	"project"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProjectService.Get(r.Context(), actor(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p))
}

// HandleUpdate handles PUT /v1/projects/{id}.
//
//	@Summary		Update Project
//	@Description	Edits a project that is not finalized
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Param			request	body	consolesdk.ProjectRequest	true	"Project details"
//	@Success		200	{object}	consolesdk.ProjectResponse	"project"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id} [put].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.ProjectRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.ProjectService.Update(r.Context(), r.PathValue("id"), projectDraft(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p))
}

// HandleAssign handles PUT /v1/projects/{id}/translators.
//
//	@Summary		Assign Translators
//	@Description	Replaces the translators assigned to a project
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Param			request	body	consolesdk.AssignTranslatorsRequest	true	"Translator IDs"
//	@Success		200	{object}	consolesdk.ProjectResponse	"project"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/translators [put].
func (h *ProjectsHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.AssignTranslatorsRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.ProjectService.AssignTranslators(r.Context(), r.PathValue("id"), req.TranslatorIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p))
}

// HandleSetStatus handles PUT /v1/projects/{id}/status.
//
//	@Summary		Set Project Status
//	@Description	Moves a project to another workflow step
//	@Tags			Workflow
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Param			request	body	consolesdk.StatusRequest	true	"Target status"
//	@Success		200	{object}	consolesdk.ProjectResponse	"project"
//	@Failure		400	{object}	consolesdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/status [put].
func (h *ProjectsHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req consolesdk.StatusRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.WorkflowService.SetStatus(r.Context(), actor(r), r.PathValue("id"), domain.JobStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p))
}

// HandleFinalize handles POST /v1/projects/{id}/finalize.
//
//	@Summary		Finalize Project
//	@Description	Marks an uploaded project as finalized
//	@Tags			Workflow
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Success		200	{object}	consolesdk.ProjectResponse	"project"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/finalize [post].
func (h *ProjectsHandler) HandleFinalize(w http.ResponseWriter, r *http.Request) {
	p, err := h.WorkflowService.Finalize(r.Context(), actor(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p))
}

// HandleSteps handles GET /v1/workflow/steps.
//
//	@Summary		Workflow Steps
//	@Description	Lists the workflow steps in order
//	@Tags			Workflow
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	consolesdk.WorkflowStepsResponse	"steps"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/workflow/steps [get].
func (h *ProjectsHandler) HandleSteps(w http.ResponseWriter, r *http.Request) {
	steps := h.WorkflowService.Steps()
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = string(s)
	}
	httpx.WriteJSON(w, http.StatusOK, consolesdk.WorkflowStepsResponse{Steps: out})
}

// HandleDashboard handles GET /v1/dashboard.
//
//	@Summary		Dashboard Totals
//	@Description	Sums revenue and payouts over finalized projects and counts active ones
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	consolesdk.DashboardResponse	"revenue, payouts, active"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/dashboard [get].
func (h *ProjectsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	t, err := h.DashboardService.Totals(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, consolesdk.DashboardResponse{
		Revenue: t.Revenue,
		Payouts: t.Payouts,
		Active:  t.Active,
	})
}
