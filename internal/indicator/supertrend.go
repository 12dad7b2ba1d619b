package indicator

// TrendDirection marks which Supertrend band is active.
type TrendDirection int

const (
	// TrendUp means the lower band is active and acts as an adaptive stop
	// below price.
	TrendUp TrendDirection = 1
	// TrendDown means the upper band is active and acts as an adaptive
	// stop above price.
	TrendDown TrendDirection = -1
)

// SupertrendState is the per-bar carried state of the Supertrend
// recurrence. Each step consumes the previous state and one bar, so single
// transitions can be unit-tested in isolation.
type SupertrendState struct {
	FinalUpper float64
	FinalLower float64
	Direction  TrendDirection
	Value      float64
}

// SupertrendResult holds the aligned output series.
type SupertrendResult struct {
	Value      []float64
	Direction  []TrendDirection
	FinalUpper []float64
	FinalLower []float64
}

// Supertrend computes the Supertrend indicator: basic bands at
// (high+low)/2 +/- factor*ATR(period), a final-band recurrence that carries
// the tighter band forward unless price invalidates it, and a trend state
// machine that flips exactly when the close crosses the active band. The
// indicator value is pinned to the active band until the next flip.
func Supertrend(highs, lows, closes []float64, period int, factor float64) SupertrendResult {
	n := len(highs)
	result := SupertrendResult{
		Value:      make([]float64, n),
		Direction:  make([]TrendDirection, n),
		FinalUpper: make([]float64, n),
		FinalLower: make([]float64, n),
	}

	if n == 0 || period <= 0 {
		return result
	}

	atr := ATR(highs, lows, closes, period)

	basicUpper := make([]float64, n)
	basicLower := make([]float64, n)

	for i := 0; i < n; i++ {
		mid := (highs[i] + lows[i]) / 2
		basicUpper[i] = mid + factor*atr[i]
		basicLower[i] = mid - factor*atr[i]
	}

	state := NewSupertrendState(basicUpper[0], basicLower[0], closes[0])
	result.Value[0] = state.Value
	result.Direction[0] = state.Direction
	result.FinalUpper[0] = state.FinalUpper
	result.FinalLower[0] = state.FinalLower

	for i := 1; i < n; i++ {
		state = SupertrendStep(state, basicUpper[i], basicLower[i], closes[i], closes[i-1])

		result.Value[i] = state.Value
		result.Direction[i] = state.Direction
		result.FinalUpper[i] = state.FinalUpper
		result.FinalLower[i] = state.FinalLower
	}

	return result
}

// NewSupertrendState seeds the recurrence from the first bar. The initial
// direction is up when the close sits above the basic upper band, down
// otherwise, and the value is pinned to the corresponding band.
func NewSupertrendState(basicUpper, basicLower, close float64) SupertrendState {
	state := SupertrendState{
		FinalUpper: basicUpper,
		FinalLower: basicLower,
	}

	if close > basicUpper {
		state.Direction = TrendUp
		state.Value = basicLower
	} else {
		state.Direction = TrendDown
		state.Value = basicUpper
	}

	return state
}

// SupertrendStep advances the recurrence by one bar.
//
// Band carry-forward: the new upper band only replaces the previous one
// when it is tighter (lower) or when the previous close already broke above
// it; symmetrically for the lower band. The direction flips exactly when
// the close crosses the currently active band.
func SupertrendStep(prev SupertrendState, basicUpper, basicLower, close, prevClose float64) SupertrendState {
	next := prev

	if basicUpper < prev.FinalUpper || prevClose > prev.FinalUpper {
		next.FinalUpper = basicUpper
	}

	if basicLower > prev.FinalLower || prevClose < prev.FinalLower {
		next.FinalLower = basicLower
	}

	switch prev.Direction {
	case TrendDown:
		// The upper band is active; a close above it flips the trend up.
		if close > next.FinalUpper {
			next.Direction = TrendUp
		}
	case TrendUp:
		// The lower band is active; a close below it flips the trend down.
		if close < next.FinalLower {
			next.Direction = TrendDown
		}
	}

	if next.Direction == TrendUp {
		next.Value = next.FinalLower
	} else {
		next.Value = next.FinalUpper
	}

	return next
}
