package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nitish0shr/stock-researcher/internal/api/handlers"
	"github.com/nitish0shr/stock-researcher/internal/web/page"
)

// RegisterPageRoutes registers one GET route per page of the renderer
func RegisterPageRoutes(router *mux.Router, renderer *page.Renderer) *handlers.PageHandler {
	pageHandler := handlers.NewPageHandler(renderer)

	// GET / , /login , /stocks
	for _, path := range renderer.Paths() {
		router.Handle(path, pageHandler).Methods(http.MethodGet, http.MethodHead)
	}

	router.NotFoundHandler = http.HandlerFunc(pageHandler.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(pageHandler.MethodNotAllowed)

	return pageHandler
}
