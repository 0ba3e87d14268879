package routes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"blogsite/app/markdown"
	"blogsite/app/models"
	"blogsite/app/repositories"
	"blogsite/app/services"
	"blogsite/app/views"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestTemplates writes a minimal template set and returns its directory
func setupTestTemplates(t *testing.T) string {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "blog"), 0755))

	templates := map[string]string{
		"layout.html":     `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		"blog/index.html": `{{define "content"}}<div class="posts">{{range .posts}}<h2>{{.Title}}</h2>{{end}}</div>{{with .paginationInfo}}<p class="page">{{.CurrentPage}}/{{.TotalPages}}</p>{{end}}{{end}}`,
		"blog/show.html":  `{{define "content"}}<h1>{{.post.Title}}</h1>{{safe .post.RenderedContent}}{{end}}`,
	}
	for name, content := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644))
	}
	return tmpDir
}

func setupTestDB(t *testing.T) *badger.DB {
	db, err := repositories.Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestData stores a regular post, a broadcast post and a draft
func setupTestData(t *testing.T, db *badger.DB) (regular, broadcast *models.Post) {
	service := services.NewBlogService(repositories.NewBadgerPostRepository(db), markdown.NewRenderer())
	published := time.Now().Add(-time.Hour)

	regular = &models.Post{
		Title:      "Test Post",
		Author:     "Test Author",
		Category:   models.CategoryEngineering,
		RawContent: "This is a **test** post",
		PublishAt:  published,
	}
	broadcast = &models.Post{
		Title:      "Release Notes",
		Author:     "Test Author",
		Category:   models.CategoryReleases,
		Broadcast:  true,
		RawContent: "Version 2 is out",
		PublishAt:  published.Add(time.Minute),
	}
	draft := &models.Post{
		Title:      "Unfinished Draft",
		Author:     "Test Author",
		Category:   models.CategoryNewsAndEvents,
		Draft:      true,
		RawContent: "Not yet",
		PublishAt:  published,
	}
	for _, post := range []*models.Post{regular, broadcast, draft} {
		require.NoError(t, service.CreatePost(post))
	}
	return regular, broadcast
}

func setupTestRouter(t *testing.T, db *badger.DB) *mux.Router {
	renderer, err := views.NewRenderer(setupTestTemplates(t))
	require.NoError(t, err)
	return SetupRoutes(db, renderer, zap.NewNop())
}
