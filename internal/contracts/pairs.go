package contracts

import "github.com/wonny/pairlens/backend/internal/stats"

// PairCandidate 같은 섹터 내 분석 후보 페어 (A/B 순서 고정)
type PairCandidate struct {
	TickerA string `json:"tickerA"`
	TickerB string `json:"tickerB"`
	Sector  string `json:"sector"`
}

// PairAnalysis 단일 후보 분석 결과 (임계값 통과 시에만 존재)
// ⭐ SSOT: Pair Analyzer → Screening Engine 전달 단위
type PairAnalysis struct {
	TickerA          string           `json:"tickerA"`
	TickerB          string           `json:"tickerB"`
	Sector           string           `json:"sector"`
	Correlation      float64          `json:"correlation"`
	RSquared         float64          `json:"rSquared"`
	ZScore           float64          `json:"zScore"`
	Direction        string           `json:"direction"`
	Confidence       stats.Confidence `json:"confidence"`
	ConsistencyScore float64          `json:"consistencyScore"`
	SpreadMean       float64          `json:"spreadMean"`
	SpreadStd        float64          `json:"spreadStd"`
}

// RankedPair PairAnalysis + 순위
type RankedPair struct {
	PairAnalysis
	Rank      int     `json:"rank"`      // 1-based
	AbsZScore float64 `json:"absZScore"` // 정렬 키
}
