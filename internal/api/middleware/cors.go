package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSConfig returns the CORS configuration for the JSON API.
// Only read-only methods are exposed.
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Accept", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        300,
	}
}

// CORS builds a gorilla/handlers CORS middleware from config
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	opts := []handlers.CORSOption{
		handlers.AllowedOrigins(config.AllowOrigins),
		handlers.AllowedMethods(config.AllowMethods),
		handlers.AllowedHeaders(config.AllowHeaders),
		handlers.ExposedHeaders(config.ExposeHeaders),
	}
	if config.AllowCredentials {
		opts = append(opts, handlers.AllowCredentials())
	}
	if config.MaxAge > 0 {
		opts = append(opts, handlers.MaxAge(config.MaxAge))
	}
	return handlers.CORS(opts...)
}
