package indicator

import "math"

// SMA returns the simple moving average of values over the given period.
// The first period-1 entries are NaN.
func SMA(values []float64, period int) []float64 {
	out := nans(len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}

		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}

	return out
}

// EMA returns the exponential moving average of values with the standard
// smoothing factor alpha = 2/(period+1). The recurrence is seeded with the
// first input value, so the output is defined for every index.
func EMA(values []float64, period int) []float64 {
	return expSmooth(values, 2.0/(float64(period)+1.0))
}

// WilderSmooth returns the Wilder-smoothed series with alpha = 1/period,
// seeded with the first input value. RSI, ADX and ATR are built on this
// recurrence.
func WilderSmooth(values []float64, period int) []float64 {
	return expSmooth(values, 1.0/float64(period))
}

// expSmooth applies y[0]=x[0]; y[t] = alpha*x[t] + (1-alpha)*y[t-1].
func expSmooth(values []float64, alpha float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}

	return out
}

// ROC returns the rate of change over period bars, in percent. The first
// period entries are NaN; a zero base value yields 0.
func ROC(values []float64, period int) []float64 {
	out := nans(len(values))
	if period <= 0 {
		return out
	}

	for i := period; i < len(values); i++ {
		base := values[i-period]
		if base == 0 {
			out[i] = 0
			continue
		}

		out[i] = (values[i] - base) / base * 100
	}

	return out
}

// Slope returns the fractional change of values over a trailing window of
// period bars: (x[t] - x[t-period]) / x[t-period]. The first period entries
// are NaN; a zero or NaN base value yields 0.
func Slope(values []float64, period int) []float64 {
	out := nans(len(values))
	if period <= 0 {
		return out
	}

	for i := period; i < len(values); i++ {
		base := values[i-period]
		if base == 0 || math.IsNaN(base) || math.IsNaN(values[i]) {
			out[i] = 0
			continue
		}

		out[i] = (values[i] - base) / base
	}

	return out
}

// RollingStd returns the population standard deviation of values over a
// trailing window of the given period. Warm-up entries are NaN.
func RollingStd(values []float64, period int) []float64 {
	out := nans(len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]

		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)

		sum := 0.0
		for _, v := range window {
			d := v - mean
			sum += d * d
		}

		out[i] = math.Sqrt(sum / float64(period))
	}

	return out
}
