package contracts

// TickerValidation 티커 검증 결과
type TickerValidation struct {
	Valid   bool   `json:"valid"`
	Ticker  string `json:"ticker"`
	IsIndex bool   `json:"isIndex"`
	Sector  string `json:"sector,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CacheStats 캐시 상태 (조회 전용)
type CacheStats struct {
	PriceEntries       int `json:"priceEntries"`
	PairsEntries       int `json:"pairsEntries"`
	CorrelationEntries int `json:"correlationEntries"`
}

// Total returns the number of entries across all caches
func (s CacheStats) Total() int {
	return s.PriceEntries + s.PairsEntries + s.CorrelationEntries
}
