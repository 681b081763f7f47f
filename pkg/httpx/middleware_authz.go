package httpx

import (
	"net/http"
	"slices"
)

// RequireRole lets the request through only when the session role is one of
// roles. It must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, roleFromCtx(r.Context())) {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "forbidden",
					"error_description": "role not permitted for this operation",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
