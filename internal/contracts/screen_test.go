package contracts

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestScreenRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ScreenRequest
		wantErr string
	}{
		{
			name: "defaults",
			req:  ScreenRequest{}.WithDefaults(),
		},
		{
			name:    "lookback too short",
			req:     ScreenRequest{LookbackWindow: 9, ZScoreWindow: 5, TimePeriod: 252},
			wantErr: "Lookback window must be between 10 and 252 days",
		},
		{
			name:    "lookback too long",
			req:     ScreenRequest{LookbackWindow: 253, ZScoreWindow: 20, TimePeriod: 252},
			wantErr: "Lookback window must be between 10 and 252 days",
		},
		{
			name:    "z-score window exceeds lookback",
			req:     ScreenRequest{LookbackWindow: 15, ZScoreWindow: 30, TimePeriod: 252},
			wantErr: "Z-score window must be between 5 days and the lookback window",
		},
		{
			name:    "z-score window too short",
			req:     ScreenRequest{LookbackWindow: 60, ZScoreWindow: 4, TimePeriod: 252},
			wantErr: "Z-score window must be between 5 days and the lookback window",
		},
		{
			name: "z-score window equal to lookback",
			req:  ScreenRequest{LookbackWindow: 10, ZScoreWindow: 10, TimePeriod: 252},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() expected error %q", tt.wantErr)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Reason != tt.wantErr {
				t.Errorf("Reason = %q, want %q", ve.Reason, tt.wantErr)
			}
		})
	}
}

func TestScreenRequest_WithDefaults(t *testing.T) {
	req := ScreenRequest{Sector: "Energy"}.WithDefaults()

	if req.LookbackWindow != DefaultLookbackWindow || req.ZScoreWindow != DefaultZScoreWindow || req.TimePeriod != DefaultTimePeriod {
		t.Errorf("WithDefaults() = %+v", req)
	}
	if req.Sector != "Energy" {
		t.Errorf("Sector = %q, want Energy", req.Sector)
	}
}

func TestNewDataRange(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	dr := NewDataRange(now, 10)

	if dr.Start != "2025-02-28" || dr.End != "2025-03-10" {
		t.Errorf("NewDataRange() = %+v", dr)
	}
}

func TestRankedPair_JSON(t *testing.T) {
	pair := RankedPair{
		PairAnalysis: PairAnalysis{TickerA: "KO", TickerB: "PEP", Sector: "Consumer Staples", ZScore: -2.1},
		Rank:         1,
		AbsZScore:    2.1,
	}

	data, err := json.Marshal(pair)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// 임베디드 필드는 평탄화되어야 함
	if decoded["tickerA"] != "KO" || decoded["rank"] != float64(1) {
		t.Errorf("unexpected JSON: %s", data)
	}
}
