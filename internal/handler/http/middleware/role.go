package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/user"
	"github.com/planillapa/planilla-backend-go/internal/handler/http/response"
)

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		if role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAccountant requires accountant or admin role. Viewers are read-only.
func RequireAccountant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrRoleNotAllowed)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrRoleNotAllowed)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleAccountant && role != user.RoleAdmin {
			response.HandleError(w, user.ErrRoleNotAllowed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
