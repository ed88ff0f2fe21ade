package contracts

import (
	"strings"

	"github.com/wonny/pairlens/backend/internal/stats"
)

// CorrelationRequest 단일 페어 분석 요청
type CorrelationRequest struct {
	TickerA        string `json:"tickerA" validate:"required"`
	TickerB        string `json:"tickerB" validate:"required"`
	LookbackWindow int    `json:"lookbackWindow,omitempty" validate:"gte=10,lte=252"`
	TimePeriod     int    `json:"timePeriod,omitempty" validate:"gte=30,lte=2520"`
}

// Normalize 대문자/공백 제거 + 기본값 적용
func (r CorrelationRequest) Normalize() CorrelationRequest {
	r.TickerA = strings.ToUpper(strings.TrimSpace(r.TickerA))
	r.TickerB = strings.ToUpper(strings.TrimSpace(r.TickerB))
	if r.LookbackWindow == 0 {
		r.LookbackWindow = DefaultLookbackWindow
	}
	if r.TimePeriod == 0 {
		r.TimePeriod = DefaultTimePeriod
	}
	return r
}

// Validate 필수값/범위 검증
func (r CorrelationRequest) Validate() error {
	return validateStruct(r, map[string]string{
		"TickerA":        "Both tickerA and tickerB are required",
		"TickerB":        "Both tickerA and tickerB are required",
		"LookbackWindow": "Lookback window must be between 10 and 252 days",
		"TimePeriod":     "Time period must be between 30 and 2520 days",
	})
}

// ZScoreRange 롤링 z-score 최소/최대
type ZScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SpreadSummary 스프레드 요약
type SpreadSummary struct {
	Current float64 `json:"current"`
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
}

// CorrelationReport 단일 페어 분석 결과
type CorrelationReport struct {
	TickerA           string                  `json:"tickerA"`
	TickerB           string                  `json:"tickerB"`
	Correlation       float64                 `json:"correlation"`
	RSquared          float64                 `json:"rSquared"`
	CurrentZScore     float64                 `json:"currentZScore"`
	ZScoreRange       ZScoreRange             `json:"zScoreRange"`
	Assessment        stats.Assessment        `json:"assessment"`
	AssessmentDetails stats.AssessmentDetails `json:"assessmentDetails"`
	Spread            SpreadSummary           `json:"spread"`
	ConsistencyScore  float64                 `json:"consistencyScore"`
	Confidence        stats.Confidence        `json:"confidence"`
	DataPoints        int                     `json:"dataPoints"`
}

// CorrelationResponse caller-facing envelope
type CorrelationResponse struct {
	Success bool               `json:"success"`
	Data    *CorrelationReport `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
}
