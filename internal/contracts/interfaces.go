package contracts

import "context"

// PriceSource fetches closing-price history (most-recent-last)
// ⭐ SSOT: 가격 조회 인터페이스. 실패는 "없음"(false)으로 반환, 에러로 전파하지 않음
type PriceSource interface {
	Fetch(ctx context.Context, ticker string, periodDays int) ([]float64, bool)
	FetchMany(ctx context.Context, tickers []string, periodDays int) map[string][]float64
}

// TickerValidator validates tickers against reference data
// ⭐ SSOT: 티커/섹터 참조 데이터 조회 인터페이스
type TickerValidator interface {
	ValidateTicker(raw string) TickerValidation
	SectorOf(ticker string) (string, bool)
}

// PairScreener ranks intra-sector pairs
// ⭐ SSOT: 스크리닝 인터페이스
type PairScreener interface {
	Screen(ctx context.Context, req ScreenRequest) (*ScreenResponse, error)
}

// PairCorrelator reports on a single requested pair
// ⭐ SSOT: 단일 페어 분석 인터페이스
type PairCorrelator interface {
	Correlate(ctx context.Context, req CorrelationRequest) (*CorrelationReport, error)
}
