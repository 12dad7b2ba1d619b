package indicator

// IchimokuResult holds the aligned Ichimoku component series. SenkouA and
// SenkouB are shifted forward by the displacement (the value at index i was
// computed displacement bars earlier); Chikou is the close shifted backward
// by the displacement. Undefined entries are NaN.
type IchimokuResult struct {
	Tenkan  []float64
	Kijun   []float64
	SenkouA []float64
	SenkouB []float64
	Chikou  []float64
}

// Standard Ichimoku parameters.
const (
	ichimokuTenkanPeriod = 9
	ichimokuKijunPeriod  = 26
	ichimokuSenkouPeriod = 52
	ichimokuDisplacement = 26
)

// Ichimoku computes the five Ichimoku components with the standard
// 9/26/52/26 parameters. Each midline is (rolling max high + rolling min
// low) / 2 over its period.
func Ichimoku(highs, lows, closes []float64) IchimokuResult {
	n := len(closes)
	result := IchimokuResult{
		Tenkan:  midline(highs, lows, ichimokuTenkanPeriod),
		Kijun:   midline(highs, lows, ichimokuKijunPeriod),
		SenkouA: nans(n),
		SenkouB: nans(n),
		Chikou:  nans(n),
	}

	senkouBBase := midline(highs, lows, ichimokuSenkouPeriod)

	for i := ichimokuDisplacement; i < n; i++ {
		src := i - ichimokuDisplacement
		result.SenkouA[i] = (result.Tenkan[src] + result.Kijun[src]) / 2
		result.SenkouB[i] = senkouBBase[src]
	}

	for i := 0; i+ichimokuDisplacement < n; i++ {
		result.Chikou[i] = closes[i+ichimokuDisplacement]
	}

	return result
}

// midline returns (rolling max high + rolling min low) / 2 over period.
func midline(highs, lows []float64, period int) []float64 {
	maxHigh := rollingMax(highs, period)
	minLow := rollingMin(lows, period)

	out := make([]float64, len(highs))
	for i := range out {
		out[i] = (maxHigh[i] + minLow[i]) / 2
	}

	return out
}
