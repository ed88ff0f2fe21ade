package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSpread(t *testing.T) {
	spread, err := LogSpread([]float64{10, 0, 20, 5}, []float64{5, 4, -1, 5})
	require.NoError(t, err)

	// 0 / 음수 지점은 제외
	require.Len(t, spread, 2)
	assert.InDelta(t, math.Log(2), spread[0], 1e-12)
	assert.InDelta(t, 0.0, spread[1], 1e-12)
}

func TestRatioSpread(t *testing.T) {
	spread, err := RatioSpread([]float64{10, 3, 9}, []float64{5, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, spread)
}

func TestSpreadLengthMismatch(t *testing.T) {
	_, err := LogSpread([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = RatioSpread([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = SpreadMetricsFor([]float64{1, 2, 3}, []float64{1, 2}, SpreadLog)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSpreadMetricsFor(t *testing.T) {
	a := []float64{10, 12, 14}
	b := []float64{5, 6, 7}

	m, err := SpreadMetricsFor(a, b, SpreadRatio)
	require.NoError(t, err)
	assert.Equal(t, SpreadRatio, m.Type)
	assert.InDelta(t, 2.0, m.Current, 1e-12)
	assert.InDelta(t, 2.0, m.Mean, 1e-12)
	assert.InDelta(t, 0.0, m.Std, 1e-12)

	m, err = SpreadMetricsFor(a, b, "")
	require.NoError(t, err)
	assert.Equal(t, SpreadLog, m.Type)
	assert.InDelta(t, math.Log(2), m.Current, 1e-12)
	assert.LessOrEqual(t, len(m.Spread), len(a))
}
