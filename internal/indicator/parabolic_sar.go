package indicator

import "math"

// SARState is the per-bar carried state of the Parabolic SAR recurrence:
// the stop value, the trend side, the extreme point of the current trend,
// and the acceleration factor.
type SARState struct {
	SAR          float64
	Uptrend      bool
	ExtremePoint float64
	Acceleration float64
}

// ParabolicSAR computes the Parabolic Stop-and-Reverse series.
//
// Per step the SAR moves toward the extreme point scaled by the
// acceleration factor; the factor increases by step whenever a new extreme
// is set, capped at maxStep. A trend flip occurs when price crosses the
// current SAR, which resets the extreme point and the acceleration factor.
// The first entry is NaN (no prior bar to establish a trend).
func ParabolicSAR(highs, lows []float64, step, maxStep float64) []float64 {
	n := len(highs)
	out := nans(n)

	if n < 2 || step <= 0 || maxStep < step {
		return out
	}

	state := NewSARState(highs[0], lows[0], highs[1], lows[1], step)
	out[1] = state.SAR

	for i := 2; i < n; i++ {
		state = SARStep(state, highs[i], lows[i], highs[i-1], lows[i-1], step, maxStep)
		out[i] = state.SAR
	}

	return out
}

// NewSARState seeds the recurrence from the first two bars. The initial
// trend follows the direction of the midpoint move; the SAR starts at the
// opposite extreme of the first bar.
func NewSARState(high0, low0, high1, low1, step float64) SARState {
	uptrend := (high1+low1)/2 >= (high0+low0)/2

	state := SARState{
		Uptrend:      uptrend,
		Acceleration: step,
	}

	if uptrend {
		state.SAR = low0
		state.ExtremePoint = math.Max(high0, high1)
	} else {
		state.SAR = high0
		state.ExtremePoint = math.Min(low0, low1)
	}

	return state
}

// SARStep advances the recurrence by one bar. prevHigh and prevLow belong
// to the bar before the current one; the candidate SAR is clamped so it
// never enters the prior bar's range.
func SARStep(prev SARState, high, low, prevHigh, prevLow, step, maxStep float64) SARState {
	next := prev
	sar := prev.SAR + prev.Acceleration*(prev.ExtremePoint-prev.SAR)

	if prev.Uptrend {
		// The SAR may not rise above the prior bar's low.
		sar = math.Min(sar, prevLow)

		if low < sar {
			// Price crossed the stop: reverse to a downtrend.
			next.Uptrend = false
			next.SAR = prev.ExtremePoint
			next.ExtremePoint = low
			next.Acceleration = step

			return next
		}

		next.SAR = sar
		if high > prev.ExtremePoint {
			next.ExtremePoint = high
			next.Acceleration = math.Min(prev.Acceleration+step, maxStep)
		}

		return next
	}

	// Downtrend: the SAR may not fall below the prior bar's high.
	sar = math.Max(sar, prevHigh)

	if high > sar {
		next.Uptrend = true
		next.SAR = prev.ExtremePoint
		next.ExtremePoint = high
		next.Acceleration = step

		return next
	}

	next.SAR = sar
	if low < prev.ExtremePoint {
		next.ExtremePoint = low
		next.Acceleration = math.Min(prev.Acceleration+step, maxStep)
	}

	return next
}
