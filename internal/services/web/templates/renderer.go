package templates

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/a-h/templ"
)

// ErrTemplateNotFound reports a page template that was never parsed.
var ErrTemplateNotFound = errors.New("template not found")

//go:embed pages/*.html pages/cards/*.html
var pagesFS embed.FS

// Renderer renders named page templates. Templates are parsed once; executing
// them concurrently is safe.
type Renderer struct {
	pages *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	return NewRendererFromFS(pagesFS, "pages/*.html", "pages/cards/*.html")
}

// NewRendererFromFS parses every template matching the patterns.
func NewRendererFromFS(fsys fs.FS, patterns ...string) (*Renderer, error) {
	pages, err := template.New("pages").ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{pages: pages}, nil
}

// Has reports whether a template with the name exists.
func (r *Renderer) Has(name string) bool {
	return r.pages.Lookup(name) != nil
}

// Page returns a component rendering the named template with data.
func (r *Renderer) Page(name string, data map[string]any) (templ.Component, error) {
	t := r.pages.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return templ.FromGoHTML(t, data), nil
}
