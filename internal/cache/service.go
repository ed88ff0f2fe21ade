package cache

import (
	"fmt"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/pkg/config"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// Cache names
const (
	PriceCacheName       = "price"
	PairsCacheName       = "pairs"
	CorrelationCacheName = "correlation"
)

// AllSectors is the sector sentinel used when no sector filter is given
const AllSectors = "all"

// Service bundles the price, screening and single-pair caches
// ⭐ SSOT: 프로세스 시작 시 한 번 생성, 소비자에게 주입 (전역 싱글톤 없음)
type Service struct {
	Prices       *TTLCache[[]float64]
	Pairs        *TTLCache[*contracts.ScreenResponse]
	Correlations *TTLCache[*contracts.CorrelationReport]
}

// NewService creates caches with TTL/capacity from config
func NewService(cfg config.CacheConfig, log *logger.Logger, opts ...Option) *Service {
	opts = append([]Option{WithLogger(log.Module("cache"))}, opts...)

	return &Service{
		Prices:       NewTTLCache[[]float64](PriceCacheName, cfg.PriceTTL, cfg.PriceMaxEntries, opts...),
		Pairs:        NewTTLCache[*contracts.ScreenResponse](PairsCacheName, cfg.PairsTTL, cfg.PairsMaxEntries, opts...),
		Correlations: NewTTLCache[*contracts.CorrelationReport](CorrelationCacheName, cfg.CorrelationTTL, cfg.CorrelationMax, opts...),
	}
}

// Stats returns entry counts per cache
func (s *Service) Stats() contracts.CacheStats {
	return contracts.CacheStats{
		PriceEntries:       s.Prices.Len(),
		PairsEntries:       s.Pairs.Len(),
		CorrelationEntries: s.Correlations.Len(),
	}
}

// Clear empties every cache
func (s *Service) Clear() {
	s.Prices.Clear()
	s.Pairs.Clear()
	s.Correlations.Clear()
}

// PriceKey price:{ticker}:{periodDays}
func PriceKey(ticker string, periodDays int) string {
	return fmt.Sprintf("price:%s:%d", ticker, periodDays)
}

// PairsKey pairs:{lookback}:{zScoreWindow}:{period}:{sector|all}
func PairsKey(lookbackWindow, zScoreWindow, timePeriod int, sector string) string {
	if sector == "" {
		sector = AllSectors
	}
	return fmt.Sprintf("pairs:%d:%d:%d:%s", lookbackWindow, zScoreWindow, timePeriod, sector)
}

// CorrelationKey is order-independent: tickers are sorted lexically
func CorrelationKey(tickerA, tickerB string, lookbackWindow, timePeriod int) string {
	if tickerB < tickerA {
		tickerA, tickerB = tickerB, tickerA
	}
	return fmt.Sprintf("corr:%s:%s:%d:%d", tickerA, tickerB, lookbackWindow, timePeriod)
}
