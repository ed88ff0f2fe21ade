package strategyconfig

import (
	"errors"
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// 테스트용 YAML 경로
	path := "../../config/strategy/pairlens.yaml"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("config file not found")
	}

	cfg, yamlData, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Meta.StrategyID != "pairlens_default" {
		t.Errorf("expected strategy_id=pairlens_default, got %s", cfg.Meta.StrategyID)
	}

	// 해시 생성
	hash, err := Hash(cfg)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if len(hash) != 64 {
		t.Errorf("expected 64 char hash, got %d", len(hash))
	}

	// 파일 = 기본값 → 동일 해시
	defaultHash, _ := Hash(Default())
	if hash != defaultHash {
		t.Error("shipped YAML should match built-in defaults")
	}

	t.Logf("yaml size: %d bytes", len(yamlData))
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
screening:
  top_pairs_count: 5
assessment:
  tradable_min_correlation: 0.95
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Screening.TopPairsCount != 5 {
		t.Errorf("expected top_pairs_count=5, got %d", cfg.Screening.TopPairsCount)
	}
	if cfg.Assessment.TradableMinCorrelation != 0.95 {
		t.Errorf("expected tradable_min_correlation=0.95, got %v", cfg.Assessment.TradableMinCorrelation)
	}
	// 나머지는 기본값 유지
	if cfg.Screening.MinCorrelation != 0.70 || cfg.Confidence.StableMin != 0.80 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte(`
screening:
  min_corelation: 0.8
`))
	if err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing id", func(c *Config) { c.Meta.StrategyID = "" }, "meta.strategy_id"},
		{"bad r2", func(c *Config) { c.Screening.MinRSquared = 1.5 }, "screening.min_r_squared"},
		{"zero top n", func(c *Config) { c.Screening.TopPairsCount = 0 }, "screening.top_pairs_count"},
		{"tiers inverted", func(c *Config) { c.Confidence.MediumMin = 0.9 }, "confidence"},
		{"unstable above tradable", func(c *Config) { c.Assessment.UnstableMinCorrelation = 0.95 }, "assessment.unstable_min_correlation"},
	}

	if err := Validate(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %s, want %s", ve.Field, tt.field)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, snap, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if snap.Source != "builtin" || cfg.Screening.TopPairsCount != 20 {
		t.Errorf("unexpected default snapshot: %+v", snap)
	}

	if _, _, err := LoadOrDefault("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
