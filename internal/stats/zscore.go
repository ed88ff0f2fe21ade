package stats

// ZScore (value - mean) / std, std == 0 → 0
func ZScore(value, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (value - mean) / std
}

// RollingZScores 각 i ≥ window-1 에 대해 직전 window 구간 기준 z-score
// len(spread) < window 이면 전체 구간 기준으로 원소별 z-score
func RollingZScores(spread []float64, window int) []float64 {
	if len(spread) < window || window < 1 {
		allMean := Mean(spread)
		allStd := SampleStdDev(spread)

		zScores := make([]float64, len(spread))
		for i, s := range spread {
			zScores[i] = ZScore(s, allMean, allStd)
		}
		return zScores
	}

	zScores := make([]float64, 0, len(spread)-window+1)
	for i := window - 1; i < len(spread); i++ {
		w := spread[i-window+1 : i+1]
		zScores = append(zScores, ZScore(spread[i], Mean(w), SampleStdDev(w)))
	}
	return zScores
}

// ZScoreMetrics 현재 z-score와 롤링 이력
type ZScoreMetrics struct {
	Current float64   `json:"currentZScore"`
	History []float64 `json:"zScoreHistory"`
	Min     float64   `json:"zScoreMin"`
	Max     float64   `json:"zScoreMax"`
}

// ZScoreMetricsFor 최근 lookback 구간 평균/표준편차로 현재 z-score 계산,
// 이력은 zScoreWindow 롤링. 이력이 비면 Min/Max = 0
func ZScoreMetricsFor(spread []float64, lookbackWindow, zScoreWindow int) ZScoreMetrics {
	lookback := Tail(spread, lookbackWindow)
	current := ZScore(last(spread), Mean(lookback), SampleStdDev(lookback))

	history := RollingZScores(spread, zScoreWindow)
	minZ, maxZ := minMax(history)

	return ZScoreMetrics{
		Current: current,
		History: history,
		Min:     minZ,
		Max:     maxZ,
	}
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
