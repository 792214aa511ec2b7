package handler

import (
	"html/template"
	"net/http"

	"newel/internal/session"
	"newel/internal/templates"
)

type IndexHandler struct {
	sessions *session.Manager
	tmpl     *template.Template
}

func NewIndexHandler(sessions *session.Manager) *IndexHandler {
	return &IndexHandler{
		sessions: sessions,
		tmpl:     templates.Parse("index.html"),
	}
}

// Landing renders the anonymous home page with a random science fact.
func (h *IndexHandler) Landing(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.tmpl, &page{
		Title:    "Welcome",
		Fact:     randomFact(),
		Notices:  h.sessions.PopFlashes(w, r),
		Identity: h.sessions.Current(r),
	})
}
