package indicator

import "math"

// TrueRange returns the true range series: max(high-low, |high-prevClose|,
// |low-prevClose|). The first entry uses high-low since there is no prior
// close.
func TrueRange(highs, lows, closes []float64) []float64 {
	out := make([]float64, len(highs))
	if len(highs) == 0 {
		return out
	}

	out[0] = highs[0] - lows[0]

	for i := 1; i < len(highs); i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])

		out[i] = math.Max(hl, math.Max(hc, lc))
	}

	return out
}

// ATR returns the Average True Range: the Wilder-smoothed true range over
// the given period, aligned with the input.
func ATR(highs, lows, closes []float64, period int) []float64 {
	if period <= 0 {
		return nans(len(highs))
	}

	return WilderSmooth(TrueRange(highs, lows, closes), period)
}
