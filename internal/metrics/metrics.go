// Package metrics exposes Prometheus counters for caches, upstream fetches and screening.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes
const (
	OutcomeSuccess     = "success"
	OutcomeFailure     = "failure"
	OutcomeCircuitOpen = "circuit_open"
)

// Metrics holds all Prometheus metrics on a private registry
type Metrics struct {
	registry *prometheus.Registry

	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
	CacheEvictions *prometheus.CounterVec

	UpstreamFetches *prometheus.CounterVec

	PairsAnalyzed  prometheus.Counter
	PairsSurviving prometheus.Counter
	ScreenDuration prometheus.Histogram
}

// New creates and registers all metrics
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairlens_cache_hits_total",
				Help: "Total number of cache hits by cache",
			},
			[]string{"cache"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairlens_cache_misses_total",
				Help: "Total number of cache misses by cache",
			},
			[]string{"cache"},
		),
		CacheEvictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairlens_cache_evictions_total",
				Help: "Total number of cache evictions by cache and reason",
			},
			[]string{"cache", "reason"},
		),
		UpstreamFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairlens_upstream_fetches_total",
				Help: "Price history fetches by outcome (after retries)",
			},
			[]string{"outcome"},
		),
		PairsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pairlens_pairs_analyzed_total",
			Help: "Candidate pairs run through the analyzer",
		}),
		PairsSurviving: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pairlens_pairs_surviving_total",
			Help: "Candidate pairs passing correlation and R-squared thresholds",
		}),
		ScreenDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pairlens_screen_duration_seconds",
			Help:    "Duration of uncached screening runs",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}),
	}

	m.registry.MustRegister(
		m.CacheHits,
		m.CacheMisses,
		m.CacheEvictions,
		m.UpstreamFetches,
		m.PairsAnalyzed,
		m.PairsSurviving,
		m.ScreenDuration,
	)

	return m
}

// Handler serves the private registry
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// CacheHit implements cache.Observer
func (m *Metrics) CacheHit(cache string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(cache).Inc()
}

// CacheMiss implements cache.Observer
func (m *Metrics) CacheMiss(cache string) {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(cache).Inc()
}

// CacheEviction implements cache.Observer
func (m *Metrics) CacheEviction(cache, reason string) {
	if m == nil {
		return
	}
	m.CacheEvictions.WithLabelValues(cache, reason).Inc()
}

// UpstreamFetch records one logical fetch outcome
func (m *Metrics) UpstreamFetch(outcome string) {
	if m == nil {
		return
	}
	m.UpstreamFetches.WithLabelValues(outcome).Inc()
}

// ObservePairs records analyzed / surviving pair counts
func (m *Metrics) ObservePairs(analyzed, surviving int) {
	if m == nil {
		return
	}
	m.PairsAnalyzed.Add(float64(analyzed))
	m.PairsSurviving.Add(float64(surviving))
}

// ObserveScreen records an uncached screening duration
func (m *Metrics) ObserveScreen(d time.Duration) {
	if m == nil {
		return
	}
	m.ScreenDuration.Observe(d.Seconds())
}
