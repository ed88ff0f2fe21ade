package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/pairlens/backend/pkg/config"
	"github.com/wonny/pairlens/backend/pkg/httputil"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

const chartWithAdjClose = `{
  "chart": {
    "result": [{
      "meta": {"symbol": "AAPL", "currency": "USD"},
      "timestamp": [1704205800, 1704292200, 1704378600, 1704465000],
      "indicators": {
        "quote": [{"close": [185.64, 184.25, null, 181.18]}],
        "adjclose": [{"adjclose": [184.9, 183.5, null, 180.4]}]
      }
    }],
    "error": null
  }
}`

const chartCloseOnly = `{
  "chart": {
    "result": [{
      "timestamp": [1704205800, 1704292200],
      "indicators": {"quote": [{"close": [10.5, 11.0]}]}
    }],
    "error": null
  }
}`

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			UserAgent:         "test-agent",
			RequestsPerSecond: 1000,
			MaxRetries:        3,
			RetryDelay:        time.Millisecond,
			RequestTimeout:    2 * time.Second,
		},
	}
	return NewClient(httputil.New(cfg, logger.Nop()), baseURL, logger.Nop())
}

func TestExtractBars(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []float64
		wantErr error
	}{
		{
			name: "prefers adjusted close and drops nulls",
			body: chartWithAdjClose,
			want: []float64{184.9, 183.5, 180.4},
		},
		{
			name: "falls back to close",
			body: chartCloseOnly,
			want: []float64{10.5, 11.0},
		},
		{
			name:    "empty result",
			body:    `{"chart":{"result":[],"error":null}}`,
			wantErr: ErrNoData,
		},
		{
			name:    "upstream error",
			body:    `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`,
			wantErr: ErrNoData,
		},
		{
			name:    "only nulls",
			body:    `{"chart":{"result":[{"timestamp":[1],"indicators":{"quote":[{"close":[null]}]}}],"error":null}}`,
			wantErr: ErrNoPrices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp chartResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))

			bars, err := extractBars(&resp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, Closes(bars))
		})
	}
}

func TestExtractBarsDates(t *testing.T) {
	var resp chartResponse
	require.NoError(t, json.Unmarshal([]byte(chartWithAdjClose), &resp))

	bars, err := extractBars(&resp)
	require.NoError(t, err)

	// null 인덱스(2)를 건너뛰어도 날짜는 원래 인덱스의 타임스탬프
	assert.Equal(t, time.Unix(1704465000, 0).UTC(), bars[2].Date)
}

func TestFetchCloses(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/AAPL"))
		q := r.URL.Query()
		assert.Equal(t, "1704067200", q.Get("period1"))
		assert.Equal(t, "1704844800", q.Get("period2"))
		assert.Equal(t, "1d", q.Get("interval"))
		assert.Equal(t, "false", q.Get("includePrePost"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(chartWithAdjClose))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	bars, err := client.FetchCloses(context.Background(), "AAPL", from, to)
	require.NoError(t, err)
	assert.Equal(t, []float64{184.9, 183.5, 180.4}, Closes(bars))
}

func TestFetchClosesRetriesWholeAttempt(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&attempts, 1) {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			// 디코딩 가능하지만 데이터 없음 → 재시도
			w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
		default:
			w.Write([]byte(chartCloseOnly))
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	bars, err := client.FetchCloses(context.Background(), "KO", time.Now().AddDate(0, 0, -5), time.Now())
	require.NoError(t, err)
	assert.Len(t, bars, 2)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestFetchClosesExhausted(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchCloses(context.Background(), "ZZZZ", time.Now().AddDate(0, 0, -5), time.Now())
	require.Error(t, err)

	var se *httputil.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}
