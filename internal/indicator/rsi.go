package indicator

// RSI returns the Relative Strength Index of closes over the given period,
// aligned with the input. Bar-to-bar changes are decomposed into gain and
// loss streams, each Wilder-smoothed with alpha = 1/period.
//
// Undefined entries (the first bar, or a flat series where both smoothed
// streams are zero) default to the neutral value 50. A zero smoothed loss
// with positive gains means RS is unbounded and RSI saturates at 100.
func RSI(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}

	// No prior bar to diff against.
	out[0] = 50

	if len(closes) == 1 || period <= 0 {
		return out
	}

	gains := make([]float64, len(closes)-1)
	losses := make([]float64, len(closes)-1)

	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i-1] = change
		} else {
			losses[i-1] = -change
		}
	}

	avgGain := WilderSmooth(gains, period)
	avgLoss := WilderSmooth(losses, period)

	for i := 1; i < len(closes); i++ {
		g := avgGain[i-1]
		l := avgLoss[i-1]

		switch {
		case l == 0 && g == 0:
			out[i] = 50
		case l == 0:
			out[i] = 100
		default:
			rs := g / l
			out[i] = 100 - 100/(1+rs)
		}
	}

	return out
}
