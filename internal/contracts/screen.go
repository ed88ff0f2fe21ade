package contracts

import "time"

// Screening defaults
const (
	DefaultLookbackWindow = 60
	DefaultZScoreWindow   = 20
	DefaultTimePeriod     = 252
)

// ScreenRequest 스크리닝 파라미터 (0 → 기본값)
type ScreenRequest struct {
	LookbackWindow int    `json:"lookbackWindow" validate:"gte=10,lte=252"`
	ZScoreWindow   int    `json:"zScoreWindow" validate:"gte=5,ltefield=LookbackWindow"`
	TimePeriod     int    `json:"timePeriod" validate:"gte=30,lte=2520"`
	Sector         string `json:"sector,omitempty"`
}

// WithDefaults fills zero values with screening defaults
func (r ScreenRequest) WithDefaults() ScreenRequest {
	if r.LookbackWindow == 0 {
		r.LookbackWindow = DefaultLookbackWindow
	}
	if r.ZScoreWindow == 0 {
		r.ZScoreWindow = DefaultZScoreWindow
	}
	if r.TimePeriod == 0 {
		r.TimePeriod = DefaultTimePeriod
	}
	return r
}

// Validate 범위 검증 (fetch 전에 수행)
func (r ScreenRequest) Validate() error {
	return validateStruct(r, map[string]string{
		"LookbackWindow": "Lookback window must be between 10 and 252 days",
		"ZScoreWindow":   "Z-score window must be between 5 days and the lookback window",
		"TimePeriod":     "Time period must be between 30 and 2520 days",
	})
}

// ScreenMetadata 스크리닝 실행 메타데이터
type ScreenMetadata struct {
	TotalPairsAnalyzed int       `json:"totalPairsAnalyzed"`
	ValidPairs         int       `json:"validPairs"`
	Timestamp          time.Time `json:"timestamp"`
	DataRange          DataRange `json:"dataRange"`
}

// DataRange timePeriod 에 해당하는 달력 기간 (YYYY-MM-DD)
type DataRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewDataRange now 기준 periodDays 전 ~ now
func NewDataRange(now time.Time, periodDays int) DataRange {
	const layout = "2006-01-02"
	now = now.UTC()
	return DataRange{
		Start: now.AddDate(0, 0, -periodDays).Format(layout),
		End:   now.Format(layout),
	}
}

// ScreenResponse 스크리닝 결과
// ⭐ SSOT: 캐시에 저장되는 단위 (성공 응답만 저장)
type ScreenResponse struct {
	Success  bool           `json:"success"`
	Pairs    []RankedPair   `json:"pairs"`
	Params   ScreenRequest  `json:"params"`
	Metadata ScreenMetadata `json:"metadata"`
	Error    string         `json:"error,omitempty"`
}
