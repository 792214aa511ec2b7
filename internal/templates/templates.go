// Package templates embeds the HTML pages so the binary serves them from
// any working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse combines the shared layout with one page template.
func Parse(page string) *template.Template {
	return template.Must(template.ParseFS(files, "layout.html", page))
}
