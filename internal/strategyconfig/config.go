package strategyconfig

import (
	"time"

	"github.com/wonny/pairlens/backend/internal/stats"
)

// Config는 페어 스크리닝 임계값 전체 설정
type Config struct {
	Meta       Meta                       `yaml:"meta" json:"meta"`
	Screening  Screening                  `yaml:"screening" json:"screening"`
	Confidence stats.ConfidenceTiers      `yaml:"confidence" json:"confidence"`
	Assessment stats.AssessmentThresholds `yaml:"assessment" json:"assessment"`
}

// Meta 메타 정보
type Meta struct {
	StrategyID string `yaml:"strategy_id" json:"strategy_id"`
	Version    string `yaml:"version" json:"version"`
}

// Screening 후보 필터/랭킹
type Screening struct {
	MinCorrelation float64 `yaml:"min_correlation" json:"min_correlation"`
	MinRSquared    float64 `yaml:"min_r_squared" json:"min_r_squared"`
	TopPairsCount  int     `yaml:"top_pairs_count" json:"top_pairs_count"`
}

// Default 내장 기본 설정
func Default() *Config {
	return &Config{
		Meta: Meta{
			StrategyID: "pairlens_default",
			Version:    "1",
		},
		Screening: Screening{
			MinCorrelation: 0.70,
			MinRSquared:    0.50,
			TopPairsCount:  20,
		},
		Confidence: stats.DefaultConfidenceTiers(),
		Assessment: stats.DefaultAssessmentThresholds(),
	}
}

// Snapshot 적용된 설정 기록 (로그/헬스 응답용)
type Snapshot struct {
	StrategyID string    `json:"strategy_id"`
	ConfigHash string    `json:"config_hash"`
	Source     string    `json:"source"` // builtin | 파일 경로
	LoadedAt   time.Time `json:"loaded_at"`
}
