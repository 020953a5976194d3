package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nitish0shr/stock-researcher/internal/api/handlers"
	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
)

// RegisterHealthRoutes registers the liveness and readiness checks
func RegisterHealthRoutes(router *mux.Router, provider stock.Provider, version string) {
	healthHandler := handlers.NewHealthHandler(provider, version)

	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods(http.MethodGet)
}
