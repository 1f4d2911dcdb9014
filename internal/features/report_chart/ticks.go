package report_chart

import (
	"math"
	"strconv"
)

// axisRange is a linear data interval mapped onto one side of the plot area.
type axisRange struct {
	min, max float64
}

func (r axisRange) span() float64 { return r.max - r.min }

// paddedRange returns [lo, hi] widened by frac of its span on both sides.
// A flat interval is widened around its value so the line stays visible.
func paddedRange(values []float64, frac float64) axisRange {
	if len(values) == 0 {
		return axisRange{min: 0, max: 1}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		d := math.Abs(lo) * frac
		if d == 0 {
			d = 1
		}
		return axisRange{min: lo - d, max: hi + d}
	}
	pad := (hi - lo) * frac
	return axisRange{min: lo - pad, max: hi + pad}
}

// niceNum rounds x to 1, 2, 5 or 10 times a power of ten.
func niceNum(x float64) float64 {
	if x <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)
	var nf float64
	switch {
	case f < 1.5:
		nf = 1
	case f < 3:
		nf = 2
	case f < 7:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}

// maxTickCount bounds niceTicks whatever the range looks like.
const maxTickCount = 64

// niceTicks returns evenly spaced round tick values inside r and the step.
// A non-finite or empty range yields no ticks.
func niceTicks(r axisRange, maxTicks int) ([]float64, float64) {
	if maxTicks < 2 {
		maxTicks = 2
	}
	if !isFinite(r.min) || !isFinite(r.max) || !(r.span() > 0) || !isFinite(r.span()) {
		return nil, 1
	}
	step := niceNum(r.span() / float64(maxTicks-1))
	first := math.Ceil(r.min/step) * step
	if !isFinite(step) || step <= 0 || !isFinite(first) {
		return nil, 1
	}

	var ticks []float64
	for i := 0; i < maxTickCount; i++ {
		v := first + float64(i)*step
		if v > r.max+step*1e-9 {
			break
		}
		v = math.Round(v/step) * step
		if v == 0 {
			v = 0 // drop negative zero
		}
		ticks = append(ticks, v)
	}
	return ticks, step
}

// tickDecimals is the number of decimals needed to print multiples of step.
func tickDecimals(step float64) int {
	for d := 0; d < 6; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			return d
		}
	}
	return 6
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatTick(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
