package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	t.Run("empty input", func(t *testing.T) {
		html, err := r.Render("   \n")
		require.NoError(t, err)
		assert.Empty(t, html)
	})

	t.Run("heading and emphasis", func(t *testing.T) {
		html, err := r.Render("# Title\n\nSome *emphasis* here.")
		require.NoError(t, err)
		assert.Contains(t, html, "<h1>Title</h1>")
		assert.Contains(t, html, "<em>emphasis</em>")
	})

	t.Run("gfm table", func(t *testing.T) {
		html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, html, "<table>")
	})

	t.Run("fenced code keeps language class", func(t *testing.T) {
		html, err := r.Render("```java\nclass A {}\n```")
		require.NoError(t, err)
		assert.Contains(t, html, `class="language-java"`)
	})

	t.Run("raw html from authors is kept", func(t *testing.T) {
		html, err := r.Render("<div class=\"embed\">video</div>\n\nText")
		require.NoError(t, err)
		assert.Contains(t, html, `<div class="embed">video</div>`)
		assert.NotContains(t, html, "raw HTML omitted")
	})
}

func TestSummary(t *testing.T) {
	r := NewRenderer()

	t.Run("more marker", func(t *testing.T) {
		html, err := r.Summary("Intro text.\n\nStill intro.\n<!--more-->\n\nBody that is hidden.")
		require.NoError(t, err)
		assert.Contains(t, html, "Intro text.")
		assert.Contains(t, html, "Still intro.")
		assert.NotContains(t, html, "hidden")
	})

	t.Run("first paragraph", func(t *testing.T) {
		html, err := r.Summary("First paragraph.\r\n\r\nSecond paragraph.")
		require.NoError(t, err)
		assert.Contains(t, html, "First paragraph.")
		assert.NotContains(t, html, "Second")
	})

	t.Run("single paragraph", func(t *testing.T) {
		html, err := r.Summary("Only one.")
		require.NoError(t, err)
		assert.Equal(t, "<p>Only one.</p>\n", html)
	})
}
