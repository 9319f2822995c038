package middleware

import (
	"net/http"

	"clinicdesk/internal/domain/entity"
	"clinicdesk/pkg/response"
)

// RequireRole allows only the listed role IDs through. Must run after
// Authenticate.
func RequireRole(roleIDs ...int) func(http.Handler) http.Handler {
	allowed := make(map[int]bool, len(roleIDs))
	for _, id := range roleIDs {
		allowed[id] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing authentication")
				return
			}
			if !allowed[roleID] {
				response.Forbidden(w, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin restricts a route to admin staff
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}
