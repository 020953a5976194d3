package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/nitish0shr/stock-researcher/internal/api/middleware"
	"github.com/nitish0shr/stock-researcher/internal/api/routes"
	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
	"github.com/nitish0shr/stock-researcher/internal/web/page"
)

// Config holds the dependencies of the HTTP router
type Config struct {
	Version      string
	Site         page.SiteConfig
	Provider     stock.Provider
	CORSOrigins  []string
	AccessLogger *zerolog.Logger
}

// NewRouter creates the HTTP handler serving pages, health checks and the JSON API
func NewRouter(cfg Config) http.Handler {
	router := mux.NewRouter()

	renderer := page.NewRenderer(cfg.Site, cfg.Provider)

	routes.RegisterHealthRoutes(router, cfg.Provider, cfg.Version)
	routes.RegisterStocksRoutes(router, cfg.Provider, middleware.DefaultCORSConfig(cfg.CORSOrigins))
	routes.RegisterPageRoutes(router, renderer)

	// Wrapped outside the router so unmatched routes are logged too.
	var handler http.Handler = middleware.Recovery(router)
	handler = middleware.Logging(middleware.LoggingConfig{
		AccessLogger: cfg.AccessLogger,
		SkipPaths:    []string{"/health", "/health/ready"},
	})(handler)
	handler = middleware.RequestID(handler)

	return handler
}
