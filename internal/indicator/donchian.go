package indicator

// DonchianResult holds the aligned Donchian channel series.
type DonchianResult struct {
	Upper  []float64
	Lower  []float64
	Middle []float64
}

// Donchian returns the Donchian channel over the given period: the rolling
// maximum of highs, the rolling minimum of lows, and their midpoint.
// Warm-up entries are NaN.
func Donchian(highs, lows []float64, period int) DonchianResult {
	n := len(highs)
	result := DonchianResult{
		Upper:  rollingMax(highs, period),
		Lower:  rollingMin(lows, period),
		Middle: nans(n),
	}

	for i := 0; i < n; i++ {
		result.Middle[i] = (result.Upper[i] + result.Lower[i]) / 2
	}

	return result
}
