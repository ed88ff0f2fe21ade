package strategyconfig

import "fmt"

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
// 실패 시 error 반환 (프로그램 중단)
func Validate(cfg *Config) error {
	// === Meta ===
	if cfg.Meta.StrategyID == "" {
		return ValidationError{"meta.strategy_id", "required"}
	}

	// === Screening ===
	if cfg.Screening.MinCorrelation < -1 || cfg.Screening.MinCorrelation > 1 {
		return ValidationError{"screening.min_correlation", "must be in [-1, 1]"}
	}
	if cfg.Screening.MinRSquared < 0 || cfg.Screening.MinRSquared > 1 {
		return ValidationError{"screening.min_r_squared", "must be in [0, 1]"}
	}
	if cfg.Screening.TopPairsCount < 1 {
		return ValidationError{"screening.top_pairs_count", "must be >= 1"}
	}

	// === Confidence ===
	if err := cfg.Confidence.Validate(); err != nil {
		return ValidationError{"confidence", err.Error()}
	}

	// === Assessment ===
	if err := cfg.Assessment.Validate(); err != nil {
		return ValidationError{"assessment", err.Error()}
	}
	if cfg.Assessment.UnstableMinCorrelation > cfg.Assessment.TradableMinCorrelation {
		return ValidationError{"assessment.unstable_min_correlation", "must not exceed tradable_min_correlation"}
	}

	return nil
}
