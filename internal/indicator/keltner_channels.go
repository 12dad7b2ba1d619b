package indicator

// KeltnerResult holds the aligned Keltner channel series.
type KeltnerResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// KeltnerChannels returns the Keltner channels: an EMA middle line of
// closes with upper and lower bands offset by multiplier times the
// ATR(period). Both component recurrences are seeded with the first input
// value, so every index is defined.
func KeltnerChannels(highs, lows, closes []float64, period int, multiplier float64) KeltnerResult {
	n := len(closes)
	result := KeltnerResult{
		Upper:  make([]float64, n),
		Middle: EMA(closes, period),
		Lower:  make([]float64, n),
	}

	atr := ATR(highs, lows, closes, period)

	for i := 0; i < n; i++ {
		result.Upper[i] = result.Middle[i] + multiplier*atr[i]
		result.Lower[i] = result.Middle[i] - multiplier*atr[i]
	}

	return result
}
