package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesFrom(baseline float64, increments ...float64) *Series {
	equity := make([]float64, len(increments))
	var cum float64
	for i, inc := range increments {
		cum += inc
		equity[i] = baseline + cum
	}
	return &Series{Increments: increments, Equity: equity, Drawdown: Drawdown(equity)}
}

func TestSummarize_Mixed(t *testing.T) {
	t.Parallel()

	s := seriesFrom(100, 4, -2, 0, 6, -3, -1)
	got := Summarize(s)

	assert.Equal(t, 6, got.TotalTrades)
	assert.Equal(t, 2, got.WinningTrades)
	assert.Equal(t, 3, got.LosingTrades)
	assert.Equal(t, 1, got.BreakEvenTrades)
	assert.InDelta(t, 40.0, got.WinRate, 1e-9)
	assert.InDelta(t, 10.0/6.0, got.ProfitFactor, 1e-9)
	assert.InDelta(t, 5.0, got.AverageWin, 1e-9)
	assert.InDelta(t, 2.0, got.AverageLoss, 1e-9)
	assert.InDelta(t, 0.4*5-0.6*2, got.Expectancy, 1e-9)
	// equity: 104 102 102 108 105 104
	assert.InDelta(t, 4.0, got.MaxDrawdown, 1e-9)
	assert.InDelta(t, 104.0, got.FinalEquity, 1e-9)
	assert.InDelta(t, 108.0, got.PeakEquity, 1e-9)
}

func TestSummarize_NoLosses(t *testing.T) {
	t.Parallel()

	got := Summarize(seriesFrom(0, 1, 2, 3))

	assert.InDelta(t, 100.0, got.WinRate, 1e-9)
	assert.InDelta(t, 6.0, got.ProfitFactor, 1e-9)
	assert.Zero(t, got.AverageLoss)
	assert.Zero(t, got.MaxDrawdown)
}

func TestSummarize_AllFlat(t *testing.T) {
	t.Parallel()

	got := Summarize(seriesFrom(50, 0, 0))

	assert.Equal(t, 2, got.BreakEvenTrades)
	assert.Zero(t, got.WinRate)
	assert.Zero(t, got.Expectancy)
	assert.InDelta(t, 50.0, got.FinalEquity, 1e-9)
}

func TestSummarize_Nil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_GeneratedMatchesSeries(t *testing.T) {
	t.Parallel()

	s, err := Generate(DefaultParams())
	require.NoError(t, err)
	got := Summarize(s)

	assert.Equal(t, DefaultSamples, got.TotalTrades)
	assert.Equal(t, s.Equity[len(s.Equity)-1], got.FinalEquity)
	for _, dd := range s.Drawdown {
		assert.LessOrEqual(t, dd, got.MaxDrawdown)
	}
}
