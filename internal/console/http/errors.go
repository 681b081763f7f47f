package http

import (
	"errors"
	"net/http"

	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
	"github.com/cirrustranslate/console/pkg/httpx"
	"github.com/cirrustranslate/console/pkg/slogx"
	"github.com/cirrustranslate/console/pkg/validx"
)

// writeError maps a service error onto its API error response. Unknown
// errors are logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
	}
	apiErr.WriteError(w)
}

func apiError(err error) *consolesdk.APIError {
	var verr *validx.Error
	if errors.As(err, &verr) {
		return consolesdk.NewValidationError("validation failed for some fields", verr.Details)
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return consolesdk.ErrInvalidCredentials

	case errors.Is(err, service.ErrBootstrapUnauthorized):
		return consolesdk.NewAPIError(http.StatusUnauthorized, "unauthorized", "Invalid bootstrap token")

	case errors.Is(err, service.ErrForbidden):
		return consolesdk.ErrForbidden

	case errors.Is(err, service.ErrInviteNotFound),
		errors.Is(err, service.ErrInviteTargetNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrTranslatorNotFound):
		return consolesdk.NewAPIError(http.StatusNotFound, consolesdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrBootstrapAlready),
		errors.Is(err, service.ErrSnapshotTargetNotEmpty),
		errors.Is(err, service.ErrProjectNotUploaded):
		return consolesdk.NewAPIError(http.StatusConflict, consolesdk.ErrorCodeConflict, err.Error())

	case errors.Is(err, service.ErrTermsNotAccepted),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidInviteRole),
		errors.Is(err, service.ErrSnapshotInvalid):
		return consolesdk.NewAPIError(http.StatusBadRequest, consolesdk.ErrorCodeInvalidRequest, err.Error())
	}

	return consolesdk.ErrServerError
}

// decode reads the JSON body into dst, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		consolesdk.NewAPIError(http.StatusBadRequest, consolesdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
		return false
	}
	return true
}
