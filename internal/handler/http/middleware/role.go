package middleware

import (
	"net/http"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
)

// RequireManager restricts a route to managers.
func RequireManager(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleManager)
}

// RequireSupervisor restricts a route to supervisors and managers.
func RequireSupervisor(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleManager, user.RoleSupervisor)
}

func requireRoles(next http.Handler, allowed ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := UserRole(r.Context())
		if !ok {
			response.Forbidden(w, "Insufficient permissions")
			return
		}
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.Forbidden(w, "Insufficient permissions")
	})
}
