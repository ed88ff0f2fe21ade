package stats

import "fmt"

// Assessment 단일 페어 종합 판정
type Assessment string

const (
	AssessmentTradable Assessment = "statistically-tradable"
	AssessmentUnstable Assessment = "high-correlation-unstable"
	AssessmentLow      Assessment = "low-correlation"
)

// AssessmentDetails 판정별 고정 라벨/설명
type AssessmentDetails struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var assessmentDetails = map[Assessment]AssessmentDetails{
	AssessmentTradable: {
		Label:       "Statistically Tradable",
		Description: "This pair exhibits strong correlation stability and may be suitable for statistical arbitrage analysis.",
	},
	AssessmentUnstable: {
		Label:       "High Correlation, Unstable",
		Description: "While correlation appears high, the relationship shows instability. Exercise caution and consider shorter lookback periods.",
	},
	AssessmentLow: {
		Label:       "Low Correlation – Avoid",
		Description: "Insufficient correlation for pairs trading. The statistical relationship is too weak to support mean-reversion assumptions.",
	},
}

// Details 판정 라벨/설명 조회
func (a Assessment) Details() AssessmentDetails {
	if d, ok := assessmentDetails[a]; ok {
		return d
	}
	return assessmentDetails[AssessmentLow]
}

// AssessmentThresholds 판정 임계값 테이블
// ⭐ SSOT: 스크리닝/단일 페어 모두 이 테이블 하나만 사용
type AssessmentThresholds struct {
	TradableMinCorrelation float64 `yaml:"tradable_min_correlation"`
	TradableMinRSquared    float64 `yaml:"tradable_min_r_squared"`
	UnstableMinCorrelation float64 `yaml:"unstable_min_correlation"`
	UnstableMaxRSquared    float64 `yaml:"unstable_max_r_squared"`
}

// DefaultAssessmentThresholds 기본 판정 임계값
func DefaultAssessmentThresholds() AssessmentThresholds {
	return AssessmentThresholds{
		TradableMinCorrelation: 0.90,
		TradableMinRSquared:    0.80,
		UnstableMinCorrelation: 0.80,
		UnstableMaxRSquared:    0.70,
	}
}

// Validate 임계값 범위 검증
func (t AssessmentThresholds) Validate() error {
	for name, v := range map[string]float64{
		"tradable_min_correlation": t.TradableMinCorrelation,
		"tradable_min_r_squared":   t.TradableMinRSquared,
		"unstable_min_correlation": t.UnstableMinCorrelation,
		"unstable_max_r_squared":   t.UnstableMaxRSquared,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %.2f", name, v)
		}
	}
	return nil
}

// Assess tradable → unstable → low 순서로 판정
func (t AssessmentThresholds) Assess(correlation, rSquared float64) Assessment {
	if correlation >= t.TradableMinCorrelation && rSquared >= t.TradableMinRSquared {
		return AssessmentTradable
	}
	if correlation >= t.UnstableMinCorrelation && rSquared < t.UnstableMaxRSquared {
		return AssessmentUnstable
	}
	return AssessmentLow
}
