// Package prices provides cached, throttled, fault-isolated closing-price history.
package prices

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/wonny/pairlens/backend/internal/cache"
	"github.com/wonny/pairlens/backend/internal/external/yahoo"
	"github.com/wonny/pairlens/backend/internal/metrics"
	"github.com/wonny/pairlens/backend/internal/stats"
	"github.com/wonny/pairlens/backend/pkg/config"
	"github.com/wonny/pairlens/backend/pkg/httputil"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// calendarFactor 주말/휴일 흡수용 달력일 배수
const calendarFactor = 1.5

// ChartClient fetches raw daily closes
type ChartClient interface {
	FetchCloses(ctx context.Context, ticker string, from, to time.Time) ([]yahoo.Bar, error)
}

// Source fetches closing-price series through the price cache
// ⭐ SSOT: 가격 시계열은 이 소스를 통해서만 조회 (캐시 → 업스트림)
type Source struct {
	client     ChartClient
	cache      *cache.TTLCache[[]float64]
	breaker    *gobreaker.CircuitBreaker
	inflight   singleflight.Group
	batchSize  int
	batchPause time.Duration
	now        func() time.Time
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// Option configures a Source
type Option func(*Source)

// WithClock injects the clock used for the calendar window
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// WithMetrics attaches metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Source) { s.metrics = m }
}

// NewSource creates a price source
func NewSource(client ChartClient, priceCache *cache.TTLCache[[]float64], cfg config.UpstreamConfig, log *logger.Logger, opts ...Option) *Source {
	s := &Source{
		client:     client,
		cache:      priceCache,
		batchSize:  cfg.BatchSize,
		batchPause: cfg.BatchPause,
		now:        time.Now,
		logger:     log.Module("prices"),
	}
	if s.batchSize < 1 {
		s.batchSize = 1
	}
	for _, opt := range opts {
		opt(s)
	}

	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "upstream",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// 티커 단위 "데이터 없음"과 호출자 취소는 업스트림 장애가 아님
		IsSuccessful: func(err error) bool {
			return err == nil || isTickerLevel(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.WithFields(map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return s
}

// Fetch returns the trailing periodDays closes for ticker.
// Any failure is soft: logged and reported as absent (false).
func (s *Source) Fetch(ctx context.Context, ticker string, periodDays int) ([]float64, bool) {
	key := cache.PriceKey(ticker, periodDays)
	if prices, ok := s.cache.Get(key); ok {
		return prices, true
	}

	v, err, _ := s.inflight.Do(key, func() (interface{}, error) {
		// 대기 중 다른 요청이 채웠을 수 있음
		if prices, ok := s.cache.Get(key); ok {
			return prices, nil
		}
		// 공유 조회는 선두 호출자의 취소에 묶이지 않음
		return s.fetchUpstream(context.WithoutCancel(ctx), ticker, periodDays, key)
	})
	if err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Warn("Failed to fetch price data")
		return nil, false
	}

	prices := v.([]float64)
	return prices, len(prices) > 0
}

func (s *Source) fetchUpstream(ctx context.Context, ticker string, periodDays int, key string) ([]float64, error) {
	to := s.now()
	from := to.AddDate(0, 0, -CalendarDays(periodDays))

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.FetchCloses(ctx, ticker, from, to)
	})
	if err != nil {
		outcome := metrics.OutcomeFailure
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.OutcomeCircuitOpen
		}
		s.metrics.UpstreamFetch(outcome)
		return nil, err
	}

	closes := stats.Tail(yahoo.Closes(result.([]yahoo.Bar)), periodDays)
	if len(closes) == 0 {
		s.metrics.UpstreamFetch(metrics.OutcomeFailure)
		return nil, fmt.Errorf("no closes for %s", ticker)
	}

	s.metrics.UpstreamFetch(metrics.OutcomeSuccess)
	s.cache.Set(key, closes)
	return closes, nil
}

// FetchMany fetches tickers in fixed-size batches.
// Each batch runs concurrently and is awaited as a whole, then a short pause.
// Only non-empty series are returned.
func (s *Source) FetchMany(ctx context.Context, tickers []string, periodDays int) map[string][]float64 {
	results := make(map[string][]float64, len(tickers))
	var mu sync.Mutex

	for start := 0; start < len(tickers); start += s.batchSize {
		end := start + s.batchSize
		if end > len(tickers) {
			end = len(tickers)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, ticker := range tickers[start:end] {
			g.Go(func() error {
				prices, ok := s.Fetch(gctx, ticker, periodDays)
				if ok {
					mu.Lock()
					results[ticker] = prices
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()

		if end < len(tickers) && s.batchPause > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(s.batchPause):
			}
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"requested": len(tickers),
		"fetched":   len(results),
	}).Debug("Batch fetch completed")

	return results
}

// CalendarDays ceil(periodDays * 1.5)
func CalendarDays(periodDays int) int {
	return int(math.Ceil(float64(periodDays) * calendarFactor))
}

func isTickerLevel(err error) bool {
	if errors.Is(err, yahoo.ErrNoData) || errors.Is(err, yahoo.ErrNoPrices) {
		return true
	}
	var se *httputil.StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
