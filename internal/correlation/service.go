// Package correlation reports full statistics and a qualitative assessment for one requested pair.
package correlation

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/pairlens/backend/internal/cache"
	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/internal/pairs"
	"github.com/wonny/pairlens/backend/internal/stats"
	"github.com/wonny/pairlens/backend/internal/strategyconfig"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// Service 단일 페어 상관 분석
// ⭐ SSOT: 검증 → 캐시 → 조회 → 지표 → 평가
type Service struct {
	validator  contracts.TickerValidator
	prices     contracts.PriceSource
	cache      *cache.TTLCache[*contracts.CorrelationReport]
	tiers      stats.ConfidenceTiers
	thresholds stats.AssessmentThresholds
	logger     *logger.Logger
}

// NewService creates a correlation service
func NewService(
	validator contracts.TickerValidator,
	prices contracts.PriceSource,
	corrCache *cache.TTLCache[*contracts.CorrelationReport],
	strategy *strategyconfig.Config,
	log *logger.Logger,
) *Service {
	return &Service{
		validator:  validator,
		prices:     prices,
		cache:      corrCache,
		tiers:      strategy.Confidence,
		thresholds: strategy.Assessment,
		logger:     log.Module("correlation"),
	}
}

// Correlate validates the request, serves the cache, or fetches both series and computes the report.
// The cache key is order-independent: (A,B) and (B,A) share one entry.
func (s *Service) Correlate(ctx context.Context, req contracts.CorrelationRequest) (report *contracts.CorrelationReport, err error) {
	req = req.Normalize()

	if err := s.validate(req); err != nil {
		return nil, err
	}

	key := cache.CorrelationKey(req.TickerA, req.TickerB, req.LookbackWindow, req.TimePeriod)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.WithFields(map[string]interface{}{
				"pair":  req.TickerA + "/" + req.TickerB,
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("Correlation panicked")
			report, err = nil, contracts.ErrInternal
		}
	}()

	pricesA, pricesB, err := s.fetchPair(ctx, req)
	if err != nil {
		return nil, err
	}

	lookA, lookB, aligned, ok := pairs.Lookback(pricesA, pricesB, req.LookbackWindow)
	if !ok {
		return nil, &contracts.DataError{
			Reason: fmt.Sprintf("Insufficient data: only %d data points available, need at least %d",
				aligned, pairs.MinDataPoints(req.LookbackWindow)),
		}
	}

	corr := stats.CorrelationMetricsFor(lookA, lookB)
	m, err := pairs.CompleteMetrics(lookA, lookB, corr, req.LookbackWindow, pairs.CorrelationZScoreWindow(req.LookbackWindow), s.tiers)
	if err != nil {
		s.logger.WithError(err).WithField("pair", req.TickerA+"/"+req.TickerB).Error("Metric computation failed")
		return nil, contracts.ErrInternal
	}

	assessment := s.thresholds.Assess(corr.Correlation, corr.RSquared)

	report = &contracts.CorrelationReport{
		TickerA:       req.TickerA,
		TickerB:       req.TickerB,
		Correlation:   corr.Correlation,
		RSquared:      corr.RSquared,
		CurrentZScore: m.ZScore.Current,
		ZScoreRange: contracts.ZScoreRange{
			Min: m.ZScore.Min,
			Max: m.ZScore.Max,
		},
		Assessment:        assessment,
		AssessmentDetails: assessment.Details(),
		Spread: contracts.SpreadSummary{
			Current: m.Spread.Current,
			Mean:    m.Spread.Mean,
			Std:     m.Spread.Std,
		},
		ConsistencyScore: m.Stability.ConsistencyScore,
		Confidence:       m.Stability.Confidence,
		DataPoints:       m.DataPoints,
	}

	s.cache.Set(key, report)

	s.logger.WithFields(map[string]interface{}{
		"pair":        req.TickerA + "/" + req.TickerB,
		"correlation": corr.Correlation,
		"assessment":  string(assessment),
	}).Info("Correlation computed")

	return report, nil
}

// validate 입력/참조 데이터 검증 (조회 전)
func (s *Service) validate(req contracts.CorrelationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, ticker := range []string{req.TickerA, req.TickerB} {
		if v := s.validator.ValidateTicker(ticker); !v.Valid {
			return contracts.NewValidationError("ticker", "%s", v.Error)
		}
	}

	if req.TickerA == req.TickerB {
		return contracts.NewValidationError("tickerB", "Please enter two different tickers")
	}
	return nil
}

// fetchPair 두 티커 병렬 조회
func (s *Service) fetchPair(ctx context.Context, req contracts.CorrelationRequest) ([]float64, []float64, error) {
	var (
		pricesA, pricesB []float64
		okA, okB         bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pricesA, okA = s.prices.Fetch(gctx, req.TickerA, req.TimePeriod)
		return nil
	})
	g.Go(func() error {
		pricesB, okB = s.prices.Fetch(gctx, req.TickerB, req.TimePeriod)
		return nil
	})
	_ = g.Wait()

	if !okA {
		return nil, nil, unavailable(req.TickerA)
	}
	if !okB {
		return nil, nil, unavailable(req.TickerB)
	}
	return pricesA, pricesB, nil
}

func unavailable(ticker string) error {
	return &contracts.DataError{
		Ticker: ticker,
		Reason: fmt.Sprintf("Unable to fetch price data for %s", ticker),
	}
}
