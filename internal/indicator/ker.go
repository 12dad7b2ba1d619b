package indicator

import "math"

// KER returns the Kaufman Efficiency Ratio over the given period:
// |close[t]-close[t-period]| divided by the sum of absolute bar-to-bar
// changes over the same window. The result lies in [0,1]; 1 is a perfectly
// efficient trend, 0 is pure noise. Zero volatility (a constant window)
// yields 0 rather than an undefined value. The first period entries are
// NaN.
func KER(closes []float64, period int) []float64 {
	out := nans(len(closes))
	if period <= 0 {
		return out
	}

	for i := period; i < len(closes); i++ {
		direction := math.Abs(closes[i] - closes[i-period])

		volatility := 0.0
		for j := i - period + 1; j <= i; j++ {
			volatility += math.Abs(closes[j] - closes[j-1])
		}

		if volatility == 0 {
			out[i] = 0
			continue
		}

		out[i] = direction / volatility
	}

	return out
}
