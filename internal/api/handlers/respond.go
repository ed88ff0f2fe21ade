package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// Helper functions

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{
		Success: false,
		Error:   message,
	})
}

// respondFailure 검증/데이터 오류는 400, 그 외는 500 (내부 정보 비노출)
func respondFailure(w http.ResponseWriter, log *logger.Logger, err error) {
	if contracts.IsValidationError(err) || contracts.IsDataError(err) {
		respondError(w, http.StatusBadRequest, contracts.PublicMessage(err))
		return
	}
	log.WithError(err).Error("Request failed")
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// queryInt 쿼리 파라미터 정수 파싱 (없으면 0 → 기본값 적용)
func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
