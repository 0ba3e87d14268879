// Package markdown turns post bodies into HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// MoreMarker separates a post's summary from the rest of its body.
const MoreMarker = "<!--more-->"

// Renderer renders markdown with GitHub flavoured extensions.
type Renderer struct {
	engine goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithRendererOptions(
				htmlrenderer.WithUnsafe(),
			),
		),
	}
}

// Render converts raw markdown into HTML.
func (r *Renderer) Render(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Summary renders the part of raw before MoreMarker. Without a marker the
// first paragraph is used.
func (r *Renderer) Summary(raw string) (string, error) {
	return r.Render(summarySource(raw))
}

func summarySource(raw string) string {
	if i := strings.Index(raw, MoreMarker); i >= 0 {
		return raw[:i]
	}

	text := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if i := strings.Index(text, "\n\n"); i >= 0 {
		return text[:i]
	}
	return text
}
