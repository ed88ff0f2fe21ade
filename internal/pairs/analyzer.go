// Package pairs analyzes one candidate pair against screening thresholds.
package pairs

import (
	"fmt"
	"math"
	"runtime/debug"
	"sort"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/internal/stats"
	"github.com/wonny/pairlens/backend/internal/strategyconfig"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// Params 분석 윈도우
type Params struct {
	LookbackWindow int
	ZScoreWindow   int
}

// Analyzer 단일 후보 페어 분석기 (순수 계산 + 로깅)
// ⭐ SSOT: 스크리닝 후보 필터링 정책은 여기서만
type Analyzer struct {
	minCorrelation float64
	minRSquared    float64
	tiers          stats.ConfidenceTiers
	logger         *logger.Logger
}

// NewAnalyzer creates an analyzer from strategy thresholds
func NewAnalyzer(cfg *strategyconfig.Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		minCorrelation: cfg.Screening.MinCorrelation,
		minRSquared:    cfg.Screening.MinRSquared,
		tiers:          cfg.Confidence,
		logger:         log.Module("pairs"),
	}
}

// Passes reports whether correlation and R² meet the screening minimums
func (a *Analyzer) Passes(correlation, rSquared float64) bool {
	return correlation >= a.minCorrelation && rSquared >= a.minRSquared
}

// Analyze returns the pair analysis, or nil when the pair is filtered out.
// A panic inside the computation is logged and treated as filtered.
func (a *Analyzer) Analyze(tickerA, tickerB, sector string, priceMap map[string][]float64, p Params) (result *contracts.PairAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.WithFields(map[string]interface{}{
				"pair":  tickerA + "/" + tickerB,
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("Pair analysis panicked")
			result = nil
		}
	}()

	pricesA, okA := priceMap[tickerA]
	pricesB, okB := priceMap[tickerB]
	if !okA || !okB {
		return nil
	}

	lookA, lookB, _, ok := Lookback(pricesA, pricesB, p.LookbackWindow)
	if !ok {
		return nil
	}

	// 상관/R² 먼저 계산 후 조기 필터링
	corr := stats.CorrelationMetricsFor(lookA, lookB)
	if corr.Correlation < a.minCorrelation || corr.RSquared < a.minRSquared {
		return nil
	}

	m, err := CompleteMetrics(lookA, lookB, corr, p.LookbackWindow, EffectiveZScoreWindow(p.ZScoreWindow, p.LookbackWindow), a.tiers)
	if err != nil {
		a.logger.WithError(err).WithField("pair", tickerA+"/"+tickerB).Warn("Pair analysis failed")
		return nil
	}

	return &contracts.PairAnalysis{
		TickerA:          tickerA,
		TickerB:          tickerB,
		Sector:           sector,
		Correlation:      corr.Correlation,
		RSquared:         corr.RSquared,
		ZScore:           m.ZScore.Current,
		Direction:        stats.Direction(tickerA, tickerB, m.ZScore.Current),
		Confidence:       m.Stability.Confidence,
		ConsistencyScore: m.Stability.ConsistencyScore,
		SpreadMean:       m.Spread.Mean,
		SpreadStd:        m.Spread.Std,
	}
}

// Rank sorts descending by |z|, truncates to topN and assigns dense 1-based ranks
func Rank(analyses []contracts.PairAnalysis, topN int) []contracts.RankedPair {
	ranked := make([]contracts.RankedPair, 0, len(analyses))
	for _, pa := range analyses {
		ranked = append(ranked, contracts.RankedPair{
			PairAnalysis: pa,
			AbsZScore:    math.Abs(pa.ZScore),
		})
	}

	// 내림차순, 동률은 입력 순서 유지
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AbsZScore > ranked[j].AbsZScore
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
