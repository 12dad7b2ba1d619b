package indicator

// AroonResult holds the aligned Aroon output series.
type AroonResult struct {
	Up   []float64
	Down []float64
}

// Aroon returns AroonUp and AroonDown over the given period:
// 100 * (period - bars since the window extreme) / period, computed over a
// trailing window of period+1 bars. Warm-up entries are NaN.
func Aroon(highs, lows []float64, period int) AroonResult {
	n := len(highs)
	result := AroonResult{
		Up:   nans(n),
		Down: nans(n),
	}

	if period <= 0 {
		return result
	}

	for i := period; i < n; i++ {
		highIdx := i - period
		lowIdx := i - period

		for j := i - period + 1; j <= i; j++ {
			if highs[j] >= highs[highIdx] {
				highIdx = j
			}

			if lows[j] <= lows[lowIdx] {
				lowIdx = j
			}
		}

		result.Up[i] = 100 * float64(period-(i-highIdx)) / float64(period)
		result.Down[i] = 100 * float64(period-(i-lowIdx)) / float64(period)
	}

	return result
}
