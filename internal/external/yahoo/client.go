package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/wonny/pairlens/backend/pkg/httputil"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

var (
	// ErrNoData is returned when the chart response carries no result
	ErrNoData = errors.New("no data returned from upstream")
	// ErrNoPrices is returned when a result carries no usable closes
	ErrNoPrices = errors.New("no price data available")
)

// Client handles communication with the Yahoo Finance chart API
// ⭐ SSOT: 일봉 종가 조회는 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new chart client
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log.Module("yahoo"),
		baseURL:    baseURL,
	}
}

// FetchCloses fetches daily closes for [from, to].
// One attempt = request + decode + extract; the whole attempt is retried.
func (c *Client) FetchCloses(ctx context.Context, ticker string, from, to time.Time) ([]Bar, error) {
	fullURL := c.chartURL(ticker, from, to)

	var bars []Bar
	err := c.httpClient.Retry(ctx, "chart "+ticker, func(ctx context.Context) error {
		var resp chartResponse
		if err := c.httpClient.GetJSON(ctx, fullURL, &resp); err != nil {
			return err
		}

		extracted, err := extractBars(&resp)
		if err != nil {
			return err
		}
		bars = extracted
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"bars":   len(bars),
	}).Debug("Fetched daily closes")

	return bars, nil
}

func (c *Client) chartURL(ticker string, from, to time.Time) string {
	params := url.Values{}
	params.Set("period1", strconv.FormatInt(from.Unix(), 10))
	params.Set("period2", strconv.FormatInt(to.Unix(), 10))
	params.Set("interval", "1d")
	params.Set("includePrePost", "false")

	return fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(ticker), params.Encode())
}

// extractBars 수정종가 우선, 없으면 종가. null 항목 제거
func extractBars(resp *chartResponse) ([]Bar, error) {
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNoData, resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, ErrNoData
	}

	result := resp.Chart.Result[0]

	var closes []*float64
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) > 0 {
		closes = result.Indicators.AdjClose[0].AdjClose
	} else if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}

	bars := make([]Bar, 0, len(closes))
	for i, v := range closes {
		if v == nil {
			continue
		}
		bar := Bar{Close: *v}
		if i < len(result.Timestamp) && result.Timestamp[i] != 0 {
			bar.Date = time.Unix(result.Timestamp[i], 0).UTC()
		}
		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, ErrNoPrices
	}
	return bars, nil
}
