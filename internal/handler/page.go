package handler

import (
	"html/template"
	"net/http"

	"newel/internal/logutil"
	"newel/internal/session"
)

// page is the data every template receives through the shared layout.
type page struct {
	Title    string
	Error    string
	Fact     string
	Form     map[string]string
	Notices  []session.Notice
	Identity *session.Identity
}

func render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("template rendering failed")
	}
}
