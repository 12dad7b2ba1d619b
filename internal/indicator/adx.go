package indicator

import "math"

// ADXResult holds the aligned output series of the directional movement
// system.
type ADXResult struct {
	ADX     []float64
	PlusDI  []float64
	MinusDI []float64
}

// ADX computes the Average Directional Index over the given period.
//
// Directional movement uses a strict tie-break: when +DM <= -DM the +DM
// contribution is zeroed, and symmetrically for -DM. TR and DM streams are
// Wilder-smoothed; DI = 100 * smoothed(DM) / smoothed(TR) with a zero
// smoothed TR yielding DI = 0; DX = 100 * |DI+ - DI-| / (DI+ + DI-) with a
// zero denominator yielding DX = 1; ADX is the Wilder-smoothed DX.
func ADX(highs, lows, closes []float64, period int) ADXResult {
	n := len(highs)
	result := ADXResult{
		ADX:     make([]float64, n),
		PlusDI:  make([]float64, n),
		MinusDI: make([]float64, n),
	}

	if n == 0 || period <= 0 {
		return result
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)

	for i := 1; i < n; i++ {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]

		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}

		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
	}

	smoothedTR := WilderSmooth(TrueRange(highs, lows, closes), period)
	smoothedPlusDM := WilderSmooth(plusDM, period)
	smoothedMinusDM := WilderSmooth(minusDM, period)

	dx := make([]float64, n)

	for i := 0; i < n; i++ {
		var plusDI, minusDI float64
		if smoothedTR[i] > 0 {
			plusDI = 100 * smoothedPlusDM[i] / smoothedTR[i]
			minusDI = 100 * smoothedMinusDM[i] / smoothedTR[i]
		}

		result.PlusDI[i] = plusDI
		result.MinusDI[i] = minusDI

		sum := plusDI + minusDI
		if sum == 0 {
			dx[i] = 1
			continue
		}

		dx[i] = 100 * math.Abs(plusDI-minusDI) / sum
	}

	result.ADX = WilderSmooth(dx, period)

	return result
}
