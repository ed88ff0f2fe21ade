package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wave 변동이 있는 가격 시계열 (수익률 분산 > 0)
func wave(n int, base, amp float64, phase float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = base + amp*math.Sin(float64(i)/3+phase) + float64(i)*0.1
	}
	return prices
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"several", []float64{1, 2, 3, 4}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(tt.values), 1e-12)
		})
	}
}

func TestStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, math.Sqrt(32.0/7.0), SampleStdDev(values), 1e-12)
	assert.InDelta(t, 2.0, PopulationStdDev(values), 1e-12)

	assert.Equal(t, 0.0, SampleStdDev([]float64{3}))
	assert.Equal(t, 0.0, SampleStdDev(nil))
}

func TestConstantSeriesIsNeutral(t *testing.T) {
	flat := []float64{42, 42, 42, 42, 42}

	std := SampleStdDev(flat)
	assert.Equal(t, 0.0, std)
	assert.Equal(t, 0.0, ZScore(42, Mean(flat), std))
	assert.Equal(t, 0.0, ZScore(50, Mean(flat), std))

	for _, z := range RollingZScores(flat, 3) {
		assert.Equal(t, 0.0, z)
	}
}

func TestPearsonCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	t.Run("perfect positive", func(t *testing.T) {
		assert.InDelta(t, 1.0, PearsonCorrelation(x, []float64{2, 4, 6, 8, 10}), 1e-12)
	})

	t.Run("perfect negative", func(t *testing.T) {
		assert.InDelta(t, -1.0, PearsonCorrelation(x, []float64{5, 4, 3, 2, 1}), 1e-12)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Equal(t, 0.0, PearsonCorrelation(x, []float64{1, 2}))
		assert.Equal(t, 0.0, PearsonCorrelation([]float64{1}, []float64{1}))
		assert.Equal(t, 0.0, PearsonCorrelation(x, []float64{3, 3, 3, 3, 3}))
	})

	t.Run("symmetric and bounded", func(t *testing.T) {
		a := wave(80, 100, 5, 0)
		b := wave(80, 50, 3, 1.3)

		ab := PearsonCorrelation(a, b)
		ba := PearsonCorrelation(b, a)
		assert.InDelta(t, ab, ba, 1e-12)
		assert.GreaterOrEqual(t, ab, -1.0)
		assert.LessOrEqual(t, ab, 1.0)
	})
}

func TestRSquared(t *testing.T) {
	for _, c := range []float64{-1, -0.73, 0, 0.42, 1} {
		assert.InDelta(t, RSquared(c), RSquared(-c), 1e-15)
		assert.InDelta(t, c*c, RSquared(c), 1e-15)
	}
}

func TestCorrelationMetricsForSameSeries(t *testing.T) {
	prices := wave(120, 100, 4, 0.5)

	m := CorrelationMetricsFor(prices, prices)
	assert.InDelta(t, 1.0, m.Correlation, 1e-9)
	assert.InDelta(t, 1.0, m.RSquared, 1e-9)
}

func TestReturns(t *testing.T) {
	got := Returns([]float64{100, 110, 99})
	require.Len(t, got, 2)
	assert.InDelta(t, 0.1, got[0], 1e-12)
	assert.InDelta(t, -0.1, got[1], 1e-12)

	// 직전 가격 0 → 0
	got = Returns([]float64{0, 5, 10})
	assert.Equal(t, []float64{0, 1}, got)

	assert.Empty(t, Returns([]float64{1}))
}

func TestAlign(t *testing.T) {
	a := make([]float64, 300)
	b := make([]float64, 250)
	for i := range a {
		a[i] = float64(i)
	}
	for i := range b {
		b[i] = float64(1000 + i)
	}

	alignedA, alignedB := Align(a, b)
	require.Len(t, alignedA, 250)
	require.Len(t, alignedB, 250)

	// 가장 최근 250개 유지
	assert.Equal(t, 50.0, alignedA[0])
	assert.Equal(t, 299.0, alignedA[249])
	assert.Equal(t, 1000.0, alignedB[0])
	assert.Equal(t, 1249.0, alignedB[249])
}

func TestTail(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	assert.Equal(t, []float64{3, 4}, Tail(values, 2))
	assert.Equal(t, values, Tail(values, 10))
	assert.Empty(t, Tail(values, 0))
}
