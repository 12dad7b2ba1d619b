package indicator

import "math"

// StochasticResult holds the aligned stochastic oscillator series.
type StochasticResult struct {
	K []float64
	D []float64
}

// Stochastic returns the stochastic oscillator: %K = 100 * (close - lowest
// low) / (highest high - lowest low) over kPeriod, and %D, the simple
// moving average of %K over dPeriod. A flat window (zero range) yields the
// neutral value 50. Warm-up entries are NaN.
func Stochastic(highs, lows, closes []float64, kPeriod, dPeriod int) StochasticResult {
	n := len(closes)
	result := StochasticResult{
		K: nans(n),
		D: nans(n),
	}

	if kPeriod <= 0 || dPeriod <= 0 {
		return result
	}

	maxHigh := rollingMax(highs, kPeriod)
	minLow := rollingMin(lows, kPeriod)

	for i := kPeriod - 1; i < n; i++ {
		span := maxHigh[i] - minLow[i]
		if span == 0 {
			result.K[i] = 50
			continue
		}

		result.K[i] = 100 * (closes[i] - minLow[i]) / span
	}

	// %D is the SMA of %K, skipping %K's own warm-up.
	for i := kPeriod + dPeriod - 2; i < n; i++ {
		sum := 0.0
		for j := i - dPeriod + 1; j <= i; j++ {
			sum += result.K[j]
		}

		result.D[i] = sum / float64(dPeriod)
	}

	return result
}

// WilliamsR returns Williams %R over the given period: -100 * (highest
// high - close) / (highest high - lowest low), in [-100, 0]. A flat window
// yields -50. Warm-up entries are NaN.
func WilliamsR(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	out := nans(n)

	if period <= 0 {
		return out
	}

	maxHigh := rollingMax(highs, period)
	minLow := rollingMin(lows, period)

	for i := period - 1; i < n; i++ {
		span := maxHigh[i] - minLow[i]
		if span == 0 || math.IsNaN(span) {
			out[i] = -50
			continue
		}

		out[i] = -100 * (maxHigh[i] - closes[i]) / span
	}

	return out
}
