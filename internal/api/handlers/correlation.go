package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/internal/reference"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// CorrelationHandler handles single-pair analysis
type CorrelationHandler struct {
	correlator contracts.PairCorrelator
	logger     *logger.Logger
}

// NewCorrelationHandler creates a new correlation handler
func NewCorrelationHandler(correlator contracts.PairCorrelator, log *logger.Logger) *CorrelationHandler {
	return &CorrelationHandler{
		correlator: correlator,
		logger:     log,
	}
}

// Post analyzes the pair given in the JSON body
// POST /api/correlation {"tickerA":"KO","tickerB":"PEP","lookbackWindow":60,"timePeriod":252}
func (h *CorrelationHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req contracts.CorrelationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.TickerA) == "" || strings.TrimSpace(req.TickerB) == "" {
		respondError(w, http.StatusBadRequest, "Both tickerA and tickerB are required")
		return
	}
	for _, t := range []string{req.TickerA, req.TickerB} {
		if !reference.ValidFormat(t) {
			respondError(w, http.StatusBadRequest, "Invalid ticker format: "+t)
			return
		}
	}

	h.correlate(w, r, req)
}

// Get analyzes the pair given as query parameters
// GET /api/correlation?tickerA=KO&tickerB=PEP&lookbackWindow=60&timePeriod=252
func (h *CorrelationHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := contracts.CorrelationRequest{
		TickerA: q.Get("tickerA"),
		TickerB: q.Get("tickerB"),
	}
	if req.TickerA == "" || req.TickerB == "" {
		respondError(w, http.StatusBadRequest, "Both tickerA and tickerB query parameters are required")
		return
	}

	var ok bool
	if req.LookbackWindow, ok = queryInt(r, "lookbackWindow"); !ok {
		respondError(w, http.StatusBadRequest, "Invalid lookbackWindow: must be an integer")
		return
	}
	if req.TimePeriod, ok = queryInt(r, "timePeriod"); !ok {
		respondError(w, http.StatusBadRequest, "Invalid timePeriod: must be an integer")
		return
	}

	h.correlate(w, r, req)
}

func (h *CorrelationHandler) correlate(w http.ResponseWriter, r *http.Request, req contracts.CorrelationRequest) {
	report, err := h.correlator.Correlate(r.Context(), req)
	if err != nil {
		respondFailure(w, h.logger, err)
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=120")
	respondJSON(w, http.StatusOK, contracts.CorrelationResponse{
		Success: true,
		Data:    report,
	})
}
