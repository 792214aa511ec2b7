package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"newel/internal/auth"
	"newel/internal/entity"
	"newel/internal/logutil"
	"newel/internal/repository"
	"newel/internal/session"
	"newel/internal/templates"
)

type LoginHandler struct {
	users    *repository.UserRepository
	sessions *session.Manager
	tmpl     *template.Template
}

func NewLoginHandler(users *repository.UserRepository, sessions *session.Manager) *LoginHandler {
	return &LoginHandler{
		users:    users,
		sessions: sessions,
		tmpl:     templates.Parse("login.html"),
	}
}

// Login serves the form on GET and authenticates on POST. An already
// authenticated session is bounced straight to its dashboard.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if identity := h.sessions.Current(r); identity != nil {
		http.Redirect(w, r, dashboardPath(identity.Role), http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		h.renderForm(w, r, "", map[string]string{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	form := map[string]string{"username": username}

	if username == "" || password == "" {
		h.renderForm(w, r, "Please enter both username and password.", form)
		return
	}

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("user lookup failed")
		h.renderForm(w, r, "An error occurred during login.", form)
		return
	}
	// Unknown username and wrong password produce the same message, so
	// the login form cannot be used to probe for accounts.
	if err != nil || auth.CheckPassword(password, user.PasswordHash) != nil {
		h.renderForm(w, r, "Invalid username or password.", form)
		return
	}

	h.sessions.Flash(w, r, "success", "Login successful!")
	if err := h.sessions.Establish(w, r, user); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("session save failed")
		h.renderForm(w, r, "An error occurred during login.", form)
		return
	}

	http.Redirect(w, r, dashboardPath(user.Role), http.StatusSeeOther)
}

// Logout clears the session and returns to the landing page. Logging out
// without a session is not an error.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	h.sessions.Flash(w, r, "success", "You have been logged out successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func dashboardPath(role entity.Role) string {
	if role == entity.RoleTeacher {
		return "/teacher-dashboard"
	}
	return "/student-dashboard"
}

func (h *LoginHandler) renderForm(w http.ResponseWriter, r *http.Request, errMsg string, form map[string]string) {
	render(w, r, h.tmpl, &page{
		Title:   "Log in",
		Error:   errMsg,
		Form:    form,
		Notices: h.sessions.PopFlashes(w, r),
	})
}
