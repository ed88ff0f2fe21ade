package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/pairlens/backend/internal/api/handlers"
	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/internal/metrics"
	"github.com/wonny/pairlens/backend/internal/reference"
	"github.com/wonny/pairlens/backend/internal/stats"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

type stubScreener struct {
	got  contracts.ScreenRequest
	resp *contracts.ScreenResponse
	err  error
}

func (s *stubScreener) Screen(_ context.Context, req contracts.ScreenRequest) (*contracts.ScreenResponse, error) {
	s.got = req
	return s.resp, s.err
}

type stubCorrelator struct {
	got    contracts.CorrelationRequest
	calls  int
	report *contracts.CorrelationReport
	err    error
	panics bool
}

func (s *stubCorrelator) Correlate(_ context.Context, req contracts.CorrelationRequest) (*contracts.CorrelationReport, error) {
	if s.panics {
		panic("boom")
	}
	s.calls++
	s.got = req
	return s.report, s.err
}

func newTestRouter(screener *stubScreener, correlator *stubCorrelator) http.Handler {
	log := logger.Nop()
	universe := reference.Builtin()

	return NewRouter(Handlers{
		Pairs:       handlers.NewPairsHandler(screener, log),
		Correlation: handlers.NewCorrelationHandler(correlator, log),
		Reference:   handlers.NewReferenceHandler(universe, universe),
		Health: handlers.NewHealthHandler("1.0.0", func() contracts.CacheStats {
			return contracts.CacheStats{PriceEntries: 3, PairsEntries: 1}
		}),
		Metrics:     metrics.New().Handler(),
		MetricsPath: "/metrics",
	}, log)
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	rec := serve(t, newTestRouter(&stubScreener{}, &stubCorrelator{}), "GET", "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	cache := body["cache"].(map[string]interface{})
	assert.Equal(t, 3.0, cache["priceEntries"])
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	newTestRouter(&stubScreener{}, &stubCorrelator{}).ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestPairs(t *testing.T) {
	t.Run("passes query parameters", func(t *testing.T) {
		screener := &stubScreener{resp: &contracts.ScreenResponse{Success: true, Pairs: []contracts.RankedPair{}}}
		rec := serve(t, newTestRouter(screener, &stubCorrelator{}), "GET", "/api/pairs?lookbackWindow=90&zScoreWindow=15&timePeriod=500&sector=Energy", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, contracts.ScreenRequest{LookbackWindow: 90, ZScoreWindow: 15, TimePeriod: 500, Sector: "Energy"}, screener.got)
		assert.Equal(t, true, decode(t, rec)["success"])
	})

	t.Run("validation error is 400", func(t *testing.T) {
		screener := &stubScreener{err: contracts.NewValidationError("sector", "Invalid sector. Valid sectors are: Technology")}
		rec := serve(t, newTestRouter(screener, &stubCorrelator{}), "GET", "/api/pairs?sector=Crypto", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid sector. Valid sectors are: Technology", body["error"])
	})

	t.Run("non integer parameter", func(t *testing.T) {
		rec := serve(t, newTestRouter(&stubScreener{}, &stubCorrelator{}), "GET", "/api/pairs?lookbackWindow=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		screener := &stubScreener{err: errors.New("pq: connection refused")}
		rec := serve(t, newTestRouter(screener, &stubCorrelator{}), "GET", "/api/pairs", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decode(t, rec)["error"])
	})
}

func TestCorrelation(t *testing.T) {
	report := &contracts.CorrelationReport{TickerA: "KO", TickerB: "PEP", Assessment: stats.AssessmentTradable}

	t.Run("post", func(t *testing.T) {
		correlator := &stubCorrelator{report: report}
		rec := serve(t, newTestRouter(&stubScreener{}, correlator), "POST", "/api/correlation", `{"tickerA":"ko","tickerB":"PEP","lookbackWindow":30}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ko", correlator.got.TickerA)
		assert.Equal(t, 30, correlator.got.LookbackWindow)

		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "statistically-tradable", data["assessment"])
	})

	t.Run("post rejects bad format before analysis", func(t *testing.T) {
		correlator := &stubCorrelator{report: report}
		rec := serve(t, newTestRouter(&stubScreener{}, correlator), "POST", "/api/correlation", `{"tickerA":"BRK.B","tickerB":"PEP"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ticker format: BRK.B", decode(t, rec)["error"])
		assert.Zero(t, correlator.calls)
	})

	t.Run("post requires both tickers", func(t *testing.T) {
		rec := serve(t, newTestRouter(&stubScreener{}, &stubCorrelator{}), "POST", "/api/correlation", `{"tickerA":"KO"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Both tickerA and tickerB are required", decode(t, rec)["error"])
	})

	t.Run("get", func(t *testing.T) {
		correlator := &stubCorrelator{report: report}
		rec := serve(t, newTestRouter(&stubScreener{}, correlator), "GET", "/api/correlation?tickerA=KO&tickerB=PEP&timePeriod=500", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 500, correlator.got.TimePeriod)
		assert.Zero(t, correlator.got.LookbackWindow)
	})

	t.Run("get requires both tickers", func(t *testing.T) {
		rec := serve(t, newTestRouter(&stubScreener{}, &stubCorrelator{}), "GET", "/api/correlation?tickerA=KO", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data error is 400", func(t *testing.T) {
		correlator := &stubCorrelator{err: &contracts.DataError{Ticker: "PEP", Reason: "Unable to fetch price data for PEP"}}
		rec := serve(t, newTestRouter(&stubScreener{}, correlator), "GET", "/api/correlation?tickerA=KO&tickerB=PEP", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Unable to fetch price data for PEP", decode(t, rec)["error"])
	})

	t.Run("panic is 500", func(t *testing.T) {
		rec := serve(t, newTestRouter(&stubScreener{}, &stubCorrelator{panics: true}), "GET", "/api/correlation?tickerA=KO&tickerB=PEP", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decode(t, rec)["error"])
	})
}

func TestReference(t *testing.T) {
	router := newTestRouter(&stubScreener{}, &stubCorrelator{})

	rec := serve(t, router, "GET", "/api/sectors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["sectors"], 11)

	rec = serve(t, router, "GET", "/api/validate?ticker=msft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "MSFT", body["ticker"])
	assert.Equal(t, "Technology", body["sector"])

	rec = serve(t, router, "GET", "/api/validate", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ticker parameter is required", decode(t, rec)["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(t, newTestRouter(&stubScreener{}, &stubCorrelator{}), "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
