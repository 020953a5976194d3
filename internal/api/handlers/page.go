package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nitish0shr/stock-researcher/internal/api/middleware"
	"github.com/nitish0shr/stock-researcher/internal/api/response"
	"github.com/nitish0shr/stock-researcher/internal/web/page"
)

const apiPrefix = "/api/"

const errorDocument = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Error – Stock Researcher</title></head>
<body><h2>Something went wrong</h2></body>
</html>
`

// PageHandler renders HTML pages for the request path
type PageHandler struct {
	renderer *page.Renderer
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(renderer *page.Renderer) *PageHandler {
	return &PageHandler{
		renderer: renderer,
	}
}

// ServeHTTP renders the page for r.URL.Path.
// The path is passed through unchanged so navigation state matches it exactly.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.renderer.Render(r.Context(), r.URL.Path)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Str("path", r.URL.Path).
			Msg("Failed to render page")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(errorDocument))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(res.Status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(res.HTML); err != nil {
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("Failed to write page")
	}
}

// NotFound answers unmatched routes: JSON under /api, the not-found page elsewhere
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, apiPrefix) {
		response.NotFound(w, r, "Route not found")
		return
	}
	h.ServeHTTP(w, r)
}

// MethodNotAllowed answers a known path requested with an unsupported method.
// Pages only accept GET and HEAD, so a POSTed login form lands here.
func (h *PageHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, apiPrefix) {
		response.MethodNotAllowed(w, r)
		return
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
