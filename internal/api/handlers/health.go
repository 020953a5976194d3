package handlers

import (
	"net/http"
	"time"

	"github.com/nitish0shr/stock-researcher/internal/api/response"
	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	provider  stock.Provider
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider stock.Provider, version string) *HealthHandler {
	return &HealthHandler{
		provider:  provider,
		startTime: time.Now(),
		version:   version,
	}
}

// SimpleHealthResponse represents a simple health check response
type SimpleHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse represents a readiness check response
type ReadyResponse struct {
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Timestamp     time.Time         `json:"timestamp"`
	Checks        map[string]string `json:"checks"`
	Message       string            `json:"message,omitempty"`
}

// Health returns simple liveness check
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, SimpleHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// Ready returns readiness check with dependency checks
// GET /health/ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := "ready"
	statusCode := http.StatusOK
	message := ""

	if _, err := h.provider.List(r.Context()); err != nil {
		checks["stock_provider"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
		message = "Stock provider unavailable"
	} else {
		checks["stock_provider"] = "ok"
	}

	response.JSON(w, statusCode, ReadyResponse{
		Status:        status,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Timestamp:     time.Now(),
		Checks:        checks,
		Message:       message,
	})
}
