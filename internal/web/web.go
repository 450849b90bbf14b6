// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mergestat/timediff"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Templates parses the embedded page templates with the helper funcs
// the pages use.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"comma":   humanize.Comma,
		"timeago": func(t time.Time) string { return timediff.TimeDiff(t) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the embedded static assets rooted at static/.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
