package yahoo

import "time"

// chartResponse is the top-level v8 chart container
type chartResponse struct {
	Chart chartData `json:"chart"`
}

type chartData struct {
	Result []chartResult `json:"result"`
	Error  *chartError   `json:"error"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Meta       chartMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators indicators `json:"indicators"`
}

type chartMeta struct {
	Symbol   string `json:"symbol"`
	Currency string `json:"currency"`
}

type indicators struct {
	Quote    []quote    `json:"quote"`
	AdjClose []adjClose `json:"adjclose"`
}

// null 항목은 nil 로 디코딩됨
type quote struct {
	Close []*float64 `json:"close"`
}

type adjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

// Bar is one daily close (Date is zero when the upstream has no timestamp at that index)
type Bar struct {
	Date  time.Time
	Close float64
}

// Closes extracts the close values
func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
