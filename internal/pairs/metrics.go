package pairs

import (
	"github.com/wonny/pairlens/backend/internal/stats"
)

// Metrics is the full metric stack for one aligned lookback slice
type Metrics struct {
	Correlation stats.CorrelationMetrics
	Spread      stats.SpreadMetrics
	ZScore      stats.ZScoreMetrics
	Stability   stats.StabilityMetrics
	DataPoints  int
}

// Lookback aligns both series and slices the trailing lookback window.
// ok is false when aligned history is shorter than MinDataPoints.
func Lookback(pricesA, pricesB []float64, lookbackWindow int) (a, b []float64, aligned int, ok bool) {
	alignedA, alignedB := stats.Align(pricesA, pricesB)
	if len(alignedA) < MinDataPoints(lookbackWindow) {
		return nil, nil, len(alignedA), false
	}
	return stats.Tail(alignedA, lookbackWindow), stats.Tail(alignedB, lookbackWindow), len(alignedA), true
}

// CompleteMetrics computes spread, z-score and stability for an already
// correlated lookback slice.
func CompleteMetrics(a, b []float64, corr stats.CorrelationMetrics, lookbackWindow, zScoreWindow int, tiers stats.ConfidenceTiers) (*Metrics, error) {
	spread, err := stats.SpreadMetricsFor(a, b, stats.SpreadLog)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		Correlation: corr,
		Spread:      spread,
		ZScore:      stats.ZScoreMetricsFor(spread.Spread, lookbackWindow, zScoreWindow),
		Stability:   stats.StabilityMetricsFor(a, b, StabilityWindow(lookbackWindow), tiers),
		DataPoints:  len(a),
	}, nil
}
