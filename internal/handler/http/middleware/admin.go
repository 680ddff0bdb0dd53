package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rh-war/hr-console-backend-go/internal/domain/auth"
	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
	"github.com/rh-war/hr-console-backend-go/internal/handler/http/response"
)

// AdminOnly guards user management routes: only Administrator accounts may
// manage console access.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleAdministrator {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
