// Package views resolves view names returned by controllers to templates.
package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"time"
)

//go:embed templates
var embedded embed.FS

var ErrUnknownView = errors.New("unknown view")

// Model carries the attributes a controller exposes to a view.
// A fresh Model is created for every request.
type Model map[string]any

// viewFiles lists the templates parsed for each view name, layout first.
var viewFiles = map[string][]string{
	"blog/index": {"layout.html", "blog/index.html"},
	"blog/show":  {"layout.html", "blog/show.html"},
}

var funcs = template.FuncMap{
	"safe": func(s string) template.HTML {
		return template.HTML(s)
	},
	"date": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}

// Renderer holds parsed templates keyed by view name.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the templates under dir, or the built-in templates
// when dir is empty.
func NewRenderer(dir string) (*Renderer, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		return NewRendererFS(sub)
	}
	return NewRendererFS(os.DirFS(dir))
}

// NewRendererFS parses the view templates from fsys.
func NewRendererFS(fsys fs.FS) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(viewFiles))
	for name, files := range viewFiles {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the view's layout with model and writes the result to w.
// Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, view string, model Model) error {
	tmpl, ok := r.templates[view]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownView, view)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", model); err != nil {
		return fmt.Errorf("render view %s: %w", view, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
