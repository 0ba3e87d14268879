package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"blogsite/app/models"
	"blogsite/app/repositories"
	"blogsite/app/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var errBadRequest = errors.New("bad request")

// WebController adapts BlogController to HTTP: it reads request
// parameters, renders the returned view and maps errors to statuses.
type WebController struct {
	blog     *BlogController
	renderer *views.Renderer
	log      *zap.Logger
}

// NewWebController creates a new WebController
func NewWebController(blog *BlogController, renderer *views.Renderer, log *zap.Logger) *WebController {
	return &WebController{
		blog:     blog,
		renderer: renderer,
		log:      log,
	}
}

// Index handles the list of recent posts
func (wc *WebController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		wc.sendError(w, r, err)
		return
	}

	model := views.Model{}
	view, err := wc.blog.ListPosts(model, page)
	wc.respond(w, r, view, model, err)
}

// Broadcasts handles the list of recent broadcast posts
func (wc *WebController) Broadcasts(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		wc.sendError(w, r, err)
		return
	}

	model := views.Model{}
	view, err := wc.blog.ListBroadcasts(model, page)
	wc.respond(w, r, view, model, err)
}

// Show handles a single post page
func (wc *WebController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		wc.sendError(w, r, fmt.Errorf("%w: invalid post id", errBadRequest))
		return
	}

	model := views.Model{}
	view, err := wc.blog.ShowPost(id, vars["slug"], model)
	wc.respond(w, r, view, model, err)
}

func (wc *WebController) respond(w http.ResponseWriter, r *http.Request, view string, model views.Model, err error) {
	if err != nil {
		wc.sendError(w, r, err)
		return
	}

	if isAPIRequest(r) {
		wc.sendJSON(w, http.StatusOK, model)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := wc.renderer.Render(w, view, model); err != nil {
		wc.sendError(w, r, err)
	}
}

// pageParam reads the 1-indexed page query parameter, defaulting to 1
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page > math.MaxInt32 || page < -math.MaxInt32 {
		return 0, fmt.Errorf("%w: invalid page %q", errBadRequest, raw)
	}
	return page, nil
}

func isAPIRequest(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api/")
}

// statusFor maps domain errors to HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, models.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Helper methods for consistent response handling

func (wc *WebController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		wc.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (wc *WebController) sendError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		wc.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}

	if isAPIRequest(r) {
		wc.sendJSON(w, status, map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}
