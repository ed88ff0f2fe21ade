// Package stats 페어 분석용 순수 통계 함수
// ⭐ SSOT: I/O 없음, 결정적 계산만 수행. 퇴화 입력은 에러 대신 중립값(0) 반환
package stats

import (
	"errors"
	"math"
)

// ErrLengthMismatch is returned when two series that must be index-aligned are not
var ErrLengthMismatch = errors.New("price arrays must have same length")

// =============================================================================
// Descriptive statistics
// =============================================================================

// Mean 산술 평균 (빈 입력 → 0)
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev 표본 표준편차 (Bessel 보정, n-1)
// n < 2 → 0
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return math.Sqrt(sumSquaredDiffs(values) / float64(len(values)-1))
}

// PopulationStdDev 모표준편차 (n)
func PopulationStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return math.Sqrt(sumSquaredDiffs(values) / float64(len(values)))
}

func sumSquaredDiffs(values []float64) float64 {
	avg := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - avg
		sum += d * d
	}
	return sum
}

// =============================================================================
// Correlation
// =============================================================================

// PearsonCorrelation 피어슨 상관계수
// 길이 불일치, n < 2, 분산 0 → 0
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var numerator, sumSqX, sumSqY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		sumSqX += dx * dx
		sumSqY += dy * dy
	}

	denominator := math.Sqrt(sumSqX * sumSqY)
	if denominator == 0 {
		return 0
	}

	r := numerator / denominator
	// 부동소수 오차로 [-1,1]을 살짝 벗어나는 경우 보정
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}

// RSquared 결정계수 (= corr²)
func RSquared(correlation float64) float64 {
	return correlation * correlation
}

// CorrelationMetrics 수익률 기준 상관 지표
type CorrelationMetrics struct {
	Correlation float64 `json:"correlation"`
	RSquared    float64 `json:"rSquared"`
}

// CorrelationMetricsFor 가격 시계열의 수익률 상관 계산
func CorrelationMetricsFor(pricesA, pricesB []float64) CorrelationMetrics {
	corr := PearsonCorrelation(Returns(pricesA), Returns(pricesB))
	return CorrelationMetrics{
		Correlation: corr,
		RSquared:    RSquared(corr),
	}
}

// =============================================================================
// Series helpers
// =============================================================================

// Returns 단순 수익률, 길이 = len(prices)-1
// 직전 가격이 0이면 해당 수익률은 0
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (prices[i]-prev)/prev)
	}
	return returns
}

// Align 두 시계열을 공통 길이로 자름 (최근 관측치 유지)
func Align(a, b []float64) ([]float64, []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return a[len(a)-n:], b[len(b)-n:]
}

// Tail 마지막 n개 (n ≥ len이면 전체)
func Tail(values []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n >= len(values) {
		return values
	}
	return values[len(values)-n:]
}
