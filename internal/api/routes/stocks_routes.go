package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nitish0shr/stock-researcher/internal/api/handlers"
	"github.com/nitish0shr/stock-researcher/internal/api/middleware"
	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
)

// RegisterStocksRoutes registers all stocks-related JSON routes.
// Routes sit on the root router so a method mismatch reaches its MethodNotAllowedHandler.
func RegisterStocksRoutes(router *mux.Router, provider stock.Provider, cors middleware.CORSConfig) {
	stocksHandler := handlers.NewStockHandler(provider)
	withCORS := middleware.CORS(cors)
	methods := []string{http.MethodGet, http.MethodHead, http.MethodOptions}

	// GET /api/v1/stocks - List stocks
	router.Handle("/api/v1/stocks", withCORS(http.HandlerFunc(stocksHandler.List))).Methods(methods...)

	// GET /api/v1/stocks/{symbol} - Get one stock
	router.Handle("/api/v1/stocks/{symbol}", withCORS(http.HandlerFunc(stocksHandler.GetBySymbol))).Methods(methods...)
}
