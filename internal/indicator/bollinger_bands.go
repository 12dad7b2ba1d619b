package indicator

// BollingerResult holds the aligned Bollinger band series.
type BollingerResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands returns the Bollinger bands of closes over the given
// period: a simple moving average middle band with upper and lower bands
// offset by stdDevs rolling standard deviations. Warm-up entries are NaN;
// a zero-variance window collapses both bands onto the middle band.
func BollingerBands(closes []float64, period int, stdDevs float64) BollingerResult {
	n := len(closes)
	result := BollingerResult{
		Upper:  make([]float64, n),
		Middle: SMA(closes, period),
		Lower:  make([]float64, n),
	}

	std := RollingStd(closes, period)

	for i := 0; i < n; i++ {
		result.Upper[i] = result.Middle[i] + stdDevs*std[i]
		result.Lower[i] = result.Middle[i] - stdDevs*std[i]
	}

	return result
}
