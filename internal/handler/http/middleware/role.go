package middleware

import (
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromRequest(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.ParseRole(roleStr)
}

// RequireGlobalManager restricts a route to the global manager role.
func RequireGlobalManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || role != user.RoleGlobalManager {
			response.HandleError(w, user.ErrGlobalManagerOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireReviewer restricts a route to department heads and global managers.
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok {
			response.HandleError(w, user.ErrDepartmentHeadOrManager)
			return
		}
		switch role {
		case user.RoleDepartmentHead, user.RoleGlobalManager:
			next.ServeHTTP(w, r)
		case user.RoleEmployee:
			response.HandleError(w, user.ErrDepartmentHeadOrManager)
		default:
			response.HandleError(w, user.ErrDepartmentHeadOrManager)
		}
	})
}
