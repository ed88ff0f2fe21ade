package stats

import "math"

// SpreadType 스프레드 계산 방식
type SpreadType string

const (
	SpreadLog   SpreadType = "log"
	SpreadRatio SpreadType = "ratio"
)

// SpreadMetrics 스프레드 시계열과 요약값
type SpreadMetrics struct {
	Spread  []float64  `json:"-"`
	Current float64    `json:"current"`
	Mean    float64    `json:"mean"`
	Std     float64    `json:"std"`
	Type    SpreadType `json:"type"`
}

// LogSpread log(pA) - log(pB)
// 두 가격이 모두 양수인 지점만 포함 (0으로 채우지 않음)
func LogSpread(pricesA, pricesB []float64) ([]float64, error) {
	if len(pricesA) != len(pricesB) {
		return nil, ErrLengthMismatch
	}

	spread := make([]float64, 0, len(pricesA))
	for i := range pricesA {
		if pricesA[i] > 0 && pricesB[i] > 0 {
			spread = append(spread, math.Log(pricesA[i])-math.Log(pricesB[i]))
		}
	}
	return spread, nil
}

// RatioSpread pA / pB
// pB == 0 지점은 제외
func RatioSpread(pricesA, pricesB []float64) ([]float64, error) {
	if len(pricesA) != len(pricesB) {
		return nil, ErrLengthMismatch
	}

	spread := make([]float64, 0, len(pricesA))
	for i := range pricesA {
		if pricesB[i] != 0 {
			spread = append(spread, pricesA[i]/pricesB[i])
		}
	}
	return spread, nil
}

// SpreadMetricsFor 스프레드 계산 + 평균/표본표준편차/현재값
func SpreadMetricsFor(pricesA, pricesB []float64, spreadType SpreadType) (SpreadMetrics, error) {
	var (
		spread []float64
		err    error
	)
	switch spreadType {
	case SpreadRatio:
		spread, err = RatioSpread(pricesA, pricesB)
	default:
		spreadType = SpreadLog
		spread, err = LogSpread(pricesA, pricesB)
	}
	if err != nil {
		return SpreadMetrics{}, err
	}

	return SpreadMetrics{
		Spread:  spread,
		Current: last(spread),
		Mean:    Mean(spread),
		Std:     SampleStdDev(spread),
		Type:    spreadType,
	}, nil
}

func last(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}
