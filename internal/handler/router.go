package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"newel/internal/entity"
	"newel/internal/middleware"
	"newel/internal/repository"
	"newel/internal/session"
)

// Router wires every route, with the dashboard handlers composed behind
// the authentication guard first and the role guard second.
func Router(sessions *session.Manager, users *repository.UserRepository) http.Handler {
	index := NewIndexHandler(sessions)
	registration := NewRegistrationHandler(users, sessions)
	login := NewLoginHandler(users, sessions)
	dashboards := NewDashboardHandler(sessions)

	requireAuth := middleware.RequireAuth(sessions)
	teacherOnly := middleware.RequireRole(sessions, entity.RoleTeacher)
	studentOnly := middleware.RequireRole(sessions, entity.RoleStudent)

	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", index.Landing)
	router.HandlerFunc(http.MethodGet, "/healthz", Healthz)
	router.HandlerFunc(http.MethodGet, "/register", registration.Register)
	router.HandlerFunc(http.MethodPost, "/register", registration.Register)
	router.HandlerFunc(http.MethodGet, "/login", login.Login)
	router.HandlerFunc(http.MethodPost, "/login", login.Login)
	router.HandlerFunc(http.MethodGet, "/logout", login.Logout)

	router.Handler(http.MethodGet, "/teacher-dashboard",
		requireAuth(teacherOnly(http.HandlerFunc(dashboards.Teacher))))
	router.Handler(http.MethodGet, "/student-dashboard",
		requireAuth(studentOnly(http.HandlerFunc(dashboards.Student))))

	return middleware.RequestLog(router)
}
