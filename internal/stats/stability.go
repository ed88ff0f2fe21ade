package stats

import "fmt"

// DefaultConsistencyThreshold 롤링 상관이 "유지"로 간주되는 최소값
const DefaultConsistencyThreshold = 0.5

// Confidence 관계 안정성 등급
type Confidence string

const (
	ConfidenceStable Confidence = "Stable"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceWeak   Confidence = "Weak"
)

// ConfidenceTiers consistency score → 등급 경계값
type ConfidenceTiers struct {
	StableMin float64 `yaml:"stable_min"`
	MediumMin float64 `yaml:"medium_min"`
}

// DefaultConfidenceTiers 기본 등급 경계
func DefaultConfidenceTiers() ConfidenceTiers {
	return ConfidenceTiers{StableMin: 0.80, MediumMin: 0.50}
}

// Validate 경계값 범위/순서 검증
func (t ConfidenceTiers) Validate() error {
	if t.MediumMin < 0 || t.StableMin > 1 {
		return fmt.Errorf("confidence tiers must be within [0,1]")
	}
	if t.MediumMin > t.StableMin {
		return fmt.Errorf("medium_min (%.2f) must not exceed stable_min (%.2f)", t.MediumMin, t.StableMin)
	}
	return nil
}

// Label 높은 등급부터 확인
func (t ConfidenceTiers) Label(score float64) Confidence {
	if score >= t.StableMin {
		return ConfidenceStable
	}
	if score >= t.MediumMin {
		return ConfidenceMedium
	}
	return ConfidenceWeak
}

// RollingCorrelations 길이 window 의 각 후행 구간에서 수익률 상관 계산
// 길이 불일치 또는 len < window → 빈 결과
func RollingCorrelations(pricesA, pricesB []float64, window int) []float64 {
	if len(pricesA) != len(pricesB) || window < 1 || len(pricesA) < window {
		return []float64{}
	}

	correlations := make([]float64, 0, len(pricesA)-window+1)
	for i := window - 1; i < len(pricesA); i++ {
		wa := pricesA[i-window+1 : i+1]
		wb := pricesB[i-window+1 : i+1]
		correlations = append(correlations, PearsonCorrelation(Returns(wa), Returns(wb)))
	}
	return correlations
}

// ConsistencyScore threshold 이상 비율 (빈 입력 → 0)
func ConsistencyScore(correlations []float64, threshold float64) float64 {
	if len(correlations) == 0 {
		return 0
	}
	above := 0
	for _, c := range correlations {
		if c >= threshold {
			above++
		}
	}
	return float64(above) / float64(len(correlations))
}

// StabilityMetrics 롤링 상관 기반 관계 안정성
type StabilityMetrics struct {
	RollingCorrelations []float64  `json:"rollingCorrelations"`
	ConsistencyScore    float64    `json:"consistencyScore"`
	Confidence          Confidence `json:"confidence"`
}

// StabilityMetricsFor 롤링 상관 → consistency → 등급
func StabilityMetricsFor(pricesA, pricesB []float64, window int, tiers ConfidenceTiers) StabilityMetrics {
	rolling := RollingCorrelations(pricesA, pricesB, window)
	score := ConsistencyScore(rolling, DefaultConsistencyThreshold)

	return StabilityMetrics{
		RollingCorrelations: rolling,
		ConsistencyScore:    score,
		Confidence:          tiers.Label(score),
	}
}

// Direction 현재 z-score 부호로 고평가/저평가 표기 (양수 → A rich)
func Direction(tickerA, tickerB string, currentZScore float64) string {
	if currentZScore > 0 {
		return fmt.Sprintf("%s rich / %s cheap", tickerA, tickerB)
	}
	return fmt.Sprintf("%s rich / %s cheap", tickerB, tickerA)
}
