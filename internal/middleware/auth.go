package middleware

import (
	"net/http"

	"newel/internal/entity"
	"newel/internal/session"
)

// RequireAuth short-circuits anonymous requests with a redirect to the
// login page. The protected handler never runs on failure.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions.Current(r) == nil {
				sessions.Flash(w, r, "error", "Please log in to access this page.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole short-circuits sessions of the wrong role with a redirect to
// the landing page. Compose inside RequireAuth so the authentication check
// always runs first.
func RequireRole(sessions *session.Manager, role entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := sessions.Current(r)
			if identity == nil || identity.Role != role {
				sessions.Flash(w, r, "error", accessDeniedMessage(role))
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func accessDeniedMessage(role entity.Role) string {
	switch role {
	case entity.RoleTeacher:
		return "Access denied. Teacher authorization required."
	case entity.RoleStudent:
		return "Access denied. Student authorization required."
	}
	return "Access denied."
}
