package handlers

import (
	"net/http"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// PairsHandler handles pair screening
// ⭐ SSOT: 스크리닝 API 핸들러는 이 구조체에서만
type PairsHandler struct {
	screener contracts.PairScreener
	logger   *logger.Logger
}

// NewPairsHandler creates a new pairs handler
func NewPairsHandler(screener contracts.PairScreener, log *logger.Logger) *PairsHandler {
	return &PairsHandler{
		screener: screener,
		logger:   log,
	}
}

// Screen returns the ranked intra-sector pairs
// GET /api/pairs?lookbackWindow=60&zScoreWindow=20&timePeriod=252&sector=Technology
func (h *PairsHandler) Screen(w http.ResponseWriter, r *http.Request) {
	var req contracts.ScreenRequest
	for name, dest := range map[string]*int{
		"lookbackWindow": &req.LookbackWindow,
		"zScoreWindow":   &req.ZScoreWindow,
		"timePeriod":     &req.TimePeriod,
	} {
		v, ok := queryInt(r, name)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid "+name+": must be an integer")
			return
		}
		*dest = v
	}
	req.Sector = r.URL.Query().Get("sector")

	resp, err := h.screener.Screen(r.Context(), req)
	if err != nil {
		respondFailure(w, h.logger, err)
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
	respondJSON(w, http.StatusOK, resp)
}
