package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"blogsite/app/controllers"
	"blogsite/app/markdown"
	"blogsite/app/middleware"
	"blogsite/app/repositories"
	"blogsite/app/services"
	"blogsite/app/views"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SetupRoutes wires the blog on top of db and returns the router
func SetupRoutes(db *badger.DB, renderer *views.Renderer, log *zap.Logger) *mux.Router {
	service := services.NewBlogService(repositories.NewBadgerPostRepository(db), markdown.NewRenderer())
	return NewRouter(controllers.NewWebController(controllers.NewBlogController(service), renderer, log), log)
}

// NewRouter registers the web and API routes served by wc
func NewRouter(wc *controllers.WebController, log *zap.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))

	router.NotFoundHandler = http.HandlerFunc(notFound)

	router.Handle("/", http.RedirectHandler("/blog", http.StatusFound)).Methods("GET")

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.ContentTypeJSON)
	registerBlog(apiRouter, wc)

	registerBlog(router, wc)

	return router
}

func registerBlog(r *mux.Router, wc *controllers.WebController) {
	blog := r.PathPrefix("/blog").Subrouter()
	blog.HandleFunc("", wc.Index).Methods("GET")
	blog.HandleFunc("/broadcasts", wc.Broadcasts).Methods("GET")
	blog.HandleFunc("/{id:[0-9]+}{slug:[^/]*}", wc.Show).Methods("GET")
}

func notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
		return
	}
	http.NotFound(w, r)
}
