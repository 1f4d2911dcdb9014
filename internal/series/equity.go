package series

// Simulated equity curve for the sample performance report
// Increments are drawn from a seeded normal distribution, so the same Params
// always give the same curve

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const (
	DefaultSamples  = 100
	DefaultSeed     = 42
	DefaultMean     = 0.5
	DefaultStdDev   = 2.0
	DefaultBaseline = 100.0
)

var ErrInvalidParams = errors.New("invalid series params")

// Params controls the simulated trade sequence.
type Params struct {
	Samples  int     `mapstructure:"samples"`
	Seed     int64   `mapstructure:"seed"`
	Mean     float64 `mapstructure:"mean"`
	StdDev   float64 `mapstructure:"stddev"`
	Baseline float64 `mapstructure:"baseline"`
}

// Series holds one simulated run. All slices have length Samples.
type Series struct {
	Params     Params
	Increments []float64 // per-trade P&L
	Equity     []float64
	Drawdown   []float64
}

func DefaultParams() Params {
	return Params{
		Samples:  DefaultSamples,
		Seed:     DefaultSeed,
		Mean:     DefaultMean,
		StdDev:   DefaultStdDev,
		Baseline: DefaultBaseline,
	}
}

func (p Params) Validate() error {
	if p.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidParams, p.Samples)
	}
	if !isFinite(p.Mean) || !isFinite(p.StdDev) || !isFinite(p.Baseline) {
		return fmt.Errorf("%w: mean, stddev and baseline must be finite", ErrInvalidParams)
	}
	if p.StdDev < 0 {
		return fmt.Errorf("%w: stddev must not be negative, got %g", ErrInvalidParams, p.StdDev)
	}
	return nil
}

// Generate builds the equity curve as a running sum of normal increments
// offset by Baseline, and derives its drawdown.
func Generate(p Params) (*Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.Seed))

	increments := make([]float64, p.Samples)
	equity := make([]float64, p.Samples)

	var cum float64
	for i := range increments {
		increments[i] = p.Mean + p.StdDev*rng.NormFloat64()
		cum += increments[i]
		equity[i] = cum + p.Baseline
		if !isFinite(equity[i]) {
			return nil, fmt.Errorf("%w: equity overflows at trade %d", ErrInvalidParams, i)
		}
	}

	drawdown := Drawdown(equity)
	for i, dd := range drawdown {
		if !isFinite(dd) {
			return nil, fmt.Errorf("%w: drawdown overflows at trade %d", ErrInvalidParams, i)
		}
	}

	return &Series{
		Params:     p,
		Increments: increments,
		Equity:     equity,
		Drawdown:   drawdown,
	}, nil
}

// RunningMax returns the largest value seen up to and including each index.
func RunningMax(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if i == 0 || v > out[i-1] {
			out[i] = v
		} else {
			out[i] = out[i-1]
		}
	}
	return out
}

// Drawdown returns peak-minus-value for every point. The result is zero
// exactly where equity sets or ties its running maximum.
func Drawdown(equity []float64) []float64 {
	peaks := RunningMax(equity)
	out := make([]float64, len(equity))
	for i, v := range equity {
		out[i] = peaks[i] - v
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
