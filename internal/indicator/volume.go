package indicator

// OBV returns On-Balance Volume: a running total that adds volume on up
// closes and subtracts it on down closes, starting from 0.
func OBV(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))

	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			out[i] = out[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}

	return out
}

// CMF returns the Chaikin Money Flow over the given period: the sum of
// money flow volume divided by the sum of volume over a trailing window.
// A bar with zero range contributes zero money flow volume; a window with
// zero total volume yields 0. Warm-up entries are NaN.
func CMF(highs, lows, closes, volumes []float64, period int) []float64 {
	n := len(closes)
	out := nans(n)

	if period <= 0 || n < period {
		return out
	}

	mfv := make([]float64, n)

	for i := 0; i < n; i++ {
		rangeHL := highs[i] - lows[i]
		if rangeHL == 0 {
			continue
		}

		multiplier := ((closes[i] - lows[i]) - (highs[i] - closes[i])) / rangeHL
		mfv[i] = multiplier * volumes[i]
	}

	for i := period - 1; i < n; i++ {
		mfvSum := 0.0
		volSum := 0.0

		for j := i - period + 1; j <= i; j++ {
			mfvSum += mfv[j]
			volSum += volumes[j]
		}

		if volSum == 0 {
			out[i] = 0
			continue
		}

		out[i] = mfvSum / volSum
	}

	return out
}

// MFI returns the Money Flow Index over the given period, a volume-weighted
// RSI built on the typical price (high+low+close)/3. A window with zero
// negative flow saturates at 100; a window with no flow at all (flat
// prices) and the warm-up entries default to the neutral value 50.
func MFI(highs, lows, closes, volumes []float64, period int) []float64 {
	n := len(closes)
	out := make([]float64, n)
	for i := range out {
		out[i] = 50
	}

	if period <= 0 || n < period+1 {
		return out
	}

	typical := make([]float64, n)
	for i := 0; i < n; i++ {
		typical[i] = (highs[i] + lows[i] + closes[i]) / 3
	}

	for i := period; i < n; i++ {
		posFlow := 0.0
		negFlow := 0.0

		for j := i - period + 1; j <= i; j++ {
			rawFlow := typical[j] * volumes[j]

			switch {
			case typical[j] > typical[j-1]:
				posFlow += rawFlow
			case typical[j] < typical[j-1]:
				negFlow += rawFlow
			}
		}

		switch {
		case posFlow == 0 && negFlow == 0:
			out[i] = 50
		case negFlow == 0:
			out[i] = 100
		default:
			ratio := posFlow / negFlow
			out[i] = 100 - 100/(1+ratio)
		}
	}

	return out
}
