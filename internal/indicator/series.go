// Package indicator implements technical indicators as pure functions over
// price arrays. Every function returns output aligned 1:1 with its input:
// entries that cannot be computed yet (warm-up) are NaN, except for
// oscillators with a natural neutral value (RSI and MFI use 50). Degenerate
// input (flat windows, zero denominators) maps to a deterministic fallback
// rather than an error or NaN so downstream classifiers never have to
// branch on failure.
package indicator

import "math"

// nans returns a slice of n NaN values.
func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}

// Mean returns the arithmetic mean of values, ignoring NaN entries. An
// empty or all-NaN input yields 0.
func Mean(values []float64) float64 {
	sum := 0.0
	count := 0

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}

		sum += v
		count++
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// Std returns the population standard deviation of values, ignoring NaN
// entries. An empty or all-NaN input yields 0.
func Std(values []float64) float64 {
	mean := Mean(values)

	sum := 0.0
	count := 0

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}

		diff := v - mean
		sum += diff * diff
		count++
	}

	if count == 0 {
		return 0
	}

	return math.Sqrt(sum / float64(count))
}

// rollingMax returns the trailing maximum over period entries, NaN during
// warm-up.
func rollingMax(values []float64, period int) []float64 {
	out := nans(len(values))
	if period <= 0 {
		return out
	}

	for i := period - 1; i < len(values); i++ {
		best := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if values[j] > best {
				best = values[j]
			}
		}

		out[i] = best
	}

	return out
}

// rollingMin returns the trailing minimum over period entries, NaN during
// warm-up.
func rollingMin(values []float64, period int) []float64 {
	out := nans(len(values))
	if period <= 0 {
		return out
	}

	for i := period - 1; i < len(values); i++ {
		best := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if values[j] < best {
				best = values[j]
			}
		}

		out[i] = best
	}

	return out
}
