// Package screening enumerates intra-sector pairs, analyzes them concurrently and ranks them.
package screening

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/pairlens/backend/internal/cache"
	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/internal/metrics"
	"github.com/wonny/pairlens/backend/internal/pairs"
	"github.com/wonny/pairlens/backend/internal/reference"
	"github.com/wonny/pairlens/backend/internal/strategyconfig"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// Engine 페어 스크리닝 엔진
// ⭐ SSOT: 후보 생성 → 분석 → 필터 → 랭킹 → 캐시
type Engine struct {
	universe *reference.Universe
	prices   contracts.PriceSource
	analyzer *pairs.Analyzer
	cache    *cache.TTLCache[*contracts.ScreenResponse]
	topN     int
	workers  int
	now      func() time.Time
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithClock injects the clock used for metadata
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithMetrics attaches metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithWorkers bounds concurrent pair analyses
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEngine creates a screening engine
func NewEngine(
	universe *reference.Universe,
	prices contracts.PriceSource,
	analyzer *pairs.Analyzer,
	pairsCache *cache.TTLCache[*contracts.ScreenResponse],
	strategy *strategyconfig.Config,
	log *logger.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		universe: universe,
		prices:   prices,
		analyzer: analyzer,
		cache:    pairsCache,
		topN:     strategy.Screening.TopPairsCount,
		workers:  runtime.GOMAXPROCS(0),
		now:      time.Now,
		logger:   log.Module("screening"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Screen validates parameters, serves the cache, or runs a full screening pass.
// Validation happens before any cache lookup or fetch.
func (e *Engine) Screen(ctx context.Context, req contracts.ScreenRequest) (resp *contracts.ScreenResponse, err error) {
	req = req.WithDefaults()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Sector != "" && !e.universe.IsSector(req.Sector) {
		return nil, contracts.NewValidationError("sector", "Invalid sector. Valid sectors are: %s", strings.Join(e.universe.Sectors(), ", "))
	}

	key := cache.PairsKey(req.LookbackWindow, req.ZScoreWindow, req.TimePeriod, req.Sector)
	if cached, ok := e.cache.Get(key); ok {
		return cached, nil
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(map[string]interface{}{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("Screening panicked")
			resp, err = nil, contracts.ErrInternal
		}
	}()

	start := e.now()

	// 호출자 취소와 무관하게 끝까지 수행 (조회별 타임아웃으로 제한)
	work := context.WithoutCancel(ctx)

	tickers := e.universe.RepresentativeTickers(req.Sector)
	priceMap := e.prices.FetchMany(work, tickers, req.TimePeriod)

	// 조회 성공 티커만, 표본 순서 유지
	fetched := make([]string, 0, len(priceMap))
	for _, t := range tickers {
		if _, ok := priceMap[t]; ok {
			fetched = append(fetched, t)
		}
	}

	candidates := GenerateCandidates(fetched, e.universe.SectorOf, req.Sector)
	analyses := e.analyzeAll(work, candidates, priceMap, pairs.Params{
		LookbackWindow: req.LookbackWindow,
		ZScoreWindow:   req.ZScoreWindow,
	})

	tradable := make([]contracts.PairAnalysis, 0, len(analyses))
	for _, a := range analyses {
		if e.analyzer.Passes(a.Correlation, a.RSquared) {
			tradable = append(tradable, a)
		}
	}

	now := e.now()
	resp = &contracts.ScreenResponse{
		Success: true,
		Pairs:   pairs.Rank(tradable, e.topN),
		Params:  req,
		Metadata: contracts.ScreenMetadata{
			TotalPairsAnalyzed: len(candidates),
			ValidPairs:         len(analyses),
			Timestamp:          now.UTC(),
			DataRange:          contracts.NewDataRange(now, req.TimePeriod),
		},
	}

	// 가격을 하나도 못 받은 결과는 업스트림 장애로 보고 캐시하지 않음
	if len(fetched) > 0 {
		e.cache.Set(key, resp)
	} else {
		e.logger.WithField("sector", sectorLabel(req.Sector)).Warn("No price data fetched; screening result not cached")
	}

	e.metrics.ObservePairs(len(candidates), len(analyses))
	e.metrics.ObserveScreen(now.Sub(start))

	e.logger.WithFields(map[string]interface{}{
		"sector":     sectorLabel(req.Sector),
		"tickers":    len(fetched),
		"candidates": len(candidates),
		"valid":      len(analyses),
		"ranked":     len(resp.Pairs),
		"duration":   now.Sub(start).String(),
	}).Info("Screening completed")

	return resp, nil
}

// analyzeAll fans out one analysis per candidate and collects in submission order
func (e *Engine) analyzeAll(ctx context.Context, candidates []contracts.PairCandidate, priceMap map[string][]float64, p pairs.Params) []contracts.PairAnalysis {
	results := make([]*contracts.PairAnalysis, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, c := range candidates {
		g.Go(func() error {
			results[i] = e.analyzer.Analyze(c.TickerA, c.TickerB, c.Sector, priceMap, p)
			return nil
		})
	}
	_ = g.Wait()

	analyses := make([]contracts.PairAnalysis, 0, len(results))
	for _, r := range results {
		if r != nil {
			analyses = append(analyses, *r)
		}
	}
	return analyses
}

func sectorLabel(sector string) string {
	if sector == "" {
		return cache.AllSectors
	}
	return sector
}
