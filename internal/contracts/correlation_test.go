package contracts

import "testing"

func TestCorrelationRequest_Normalize(t *testing.T) {
	req := CorrelationRequest{TickerA: " aapl ", TickerB: "msft"}.Normalize()

	if req.TickerA != "AAPL" || req.TickerB != "MSFT" {
		t.Errorf("Normalize() tickers = %s/%s", req.TickerA, req.TickerB)
	}
	if req.LookbackWindow != DefaultLookbackWindow || req.TimePeriod != DefaultTimePeriod {
		t.Errorf("Normalize() defaults = %+v", req)
	}
}

func TestCorrelationRequest_Validate(t *testing.T) {
	missing := CorrelationRequest{TickerA: "AAPL"}.Normalize()
	err := missing.Validate()
	if err == nil || err.Error() != "Both tickerA and tickerB are required" {
		t.Errorf("Validate() = %v", err)
	}

	ok := CorrelationRequest{TickerA: "AAPL", TickerB: "MSFT"}.Normalize()
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	badLookback := CorrelationRequest{TickerA: "AAPL", TickerB: "MSFT", LookbackWindow: 500}.Normalize()
	if !IsValidationError(badLookback.Validate()) {
		t.Error("lookback 500 must be rejected")
	}
}
