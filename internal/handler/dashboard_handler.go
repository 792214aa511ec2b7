package handler

import (
	"html/template"
	"net/http"

	"newel/internal/session"
	"newel/internal/templates"
)

// DashboardHandler renders the role-gated landing pages. The guards in
// front of these routes guarantee an identity of the right role.
type DashboardHandler struct {
	sessions    *session.Manager
	teacherTmpl *template.Template
	studentTmpl *template.Template
}

func NewDashboardHandler(sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{
		sessions:    sessions,
		teacherTmpl: templates.Parse("teacher_dashboard.html"),
		studentTmpl: templates.Parse("student_dashboard.html"),
	}
}

func (h *DashboardHandler) Teacher(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.teacherTmpl, &page{
		Title:    "Teacher dashboard",
		Notices:  h.sessions.PopFlashes(w, r),
		Identity: h.sessions.Current(r),
	})
}

func (h *DashboardHandler) Student(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.studentTmpl, &page{
		Title:    "Student dashboard",
		Notices:  h.sessions.PopFlashes(w, r),
		Identity: h.sessions.Current(r),
	})
}
