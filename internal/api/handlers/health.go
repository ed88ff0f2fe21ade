package handlers

import (
	"net/http"
	"time"

	"github.com/wonny/pairlens/backend/internal/contracts"
)

// HealthResponse is the /health payload
type HealthResponse struct {
	Status    string               `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
	Version   string               `json:"version"`
	Cache     contracts.CacheStats `json:"cache"`
}

// HealthHandler reports liveness and cache occupancy
type HealthHandler struct {
	version string
	stats   func() contracts.CacheStats
	now     func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, stats func() contracts.CacheStats) *HealthHandler {
	return &HealthHandler{
		version: version,
		stats:   stats,
		now:     time.Now,
	}
}

// Get returns health status
// GET /health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Version:   h.version,
		Cache:     h.stats(),
	})
}
