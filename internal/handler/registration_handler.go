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

type RegistrationHandler struct {
	users    *repository.UserRepository
	sessions *session.Manager
	tmpl     *template.Template
}

func NewRegistrationHandler(users *repository.UserRepository, sessions *session.Manager) *RegistrationHandler {
	return &RegistrationHandler{
		users:    users,
		sessions: sessions,
		tmpl:     templates.Parse("register.html"),
	}
}

// Register serves the form on GET and processes it on POST. Validation
// failures re-render the form with a message and HTTP 200; success
// redirects to the login page without establishing a session.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderForm(w, r, "", map[string]string{
			"role": r.URL.Query().Get("role"),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	fullName := strings.TrimSpace(r.FormValue("full_name"))
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirm_password")
	roleValue := r.FormValue("role")
	className := strings.TrimSpace(r.FormValue("class_name"))

	form := map[string]string{
		"full_name":  fullName,
		"username":   username,
		"role":       roleValue,
		"class_name": className,
	}

	if fullName == "" || username == "" || password == "" || confirmPassword == "" || roleValue == "" {
		h.renderForm(w, r, "All fields are required.", form)
		return
	}
	if password != confirmPassword {
		h.renderForm(w, r, "Passwords do not match.", form)
		return
	}
	role, ok := entity.ParseRole(roleValue)
	if !ok {
		h.renderForm(w, r, "Select a valid role.", form)
		return
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("password hashing failed")
		h.renderForm(w, r, "An error occurred during registration.", form)
		return
	}

	user := &entity.User{
		FullName:     fullName,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if role == entity.RoleStudent && className != "" {
		user.ClassName = &className
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			h.renderForm(w, r, "Username already exists.", form)
			return
		}
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("user insert failed")
		h.renderForm(w, r, "An error occurred during registration.", form)
		return
	}

	h.sessions.Flash(w, r, "success", "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *RegistrationHandler) renderForm(w http.ResponseWriter, r *http.Request, errMsg string, form map[string]string) {
	render(w, r, h.tmpl, &page{
		Title:    "Register",
		Error:    errMsg,
		Form:     form,
		Notices:  h.sessions.PopFlashes(w, r),
		Identity: h.sessions.Current(r),
	})
}
