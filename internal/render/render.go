// Package render hands page context data to HTML templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Context is the data mapping a handler passes to a template.
type Context map[string]any

// Renderer renders a named page with the given context.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data Context) error
}

// TemplateRenderer is the html/template implementation of Renderer.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

var _ Renderer = (*TemplateRenderer)(nil)

// Render executes the named template into a buffer first so a template
// error never produces a half-written response body.
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, name string, data Context) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
