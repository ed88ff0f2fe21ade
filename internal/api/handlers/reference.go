package handlers

import (
	"net/http"

	"github.com/wonny/pairlens/backend/internal/contracts"
)

// SectorLister lists the supported sector names
type SectorLister interface {
	Sectors() []string
}

// ReferenceHandler serves sector and ticker reference data
type ReferenceHandler struct {
	sectors   SectorLister
	validator contracts.TickerValidator
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(sectors SectorLister, validator contracts.TickerValidator) *ReferenceHandler {
	return &ReferenceHandler{
		sectors:   sectors,
		validator: validator,
	}
}

// GetSectors returns the supported sectors
// GET /api/sectors
func (h *ReferenceHandler) GetSectors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, s-maxage=86400, stale-while-revalidate=604800")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"sectors": h.sectors.Sectors(),
	})
}

// Validate checks a ticker against membership and the index allow-list
// GET /api/validate?ticker=AAPL
func (h *ReferenceHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		respondJSON(w, http.StatusBadRequest, contracts.TickerValidation{
			Error: "Ticker parameter is required",
		})
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=86400")
	respondJSON(w, http.StatusOK, h.validator.ValidateTicker(ticker))
}
