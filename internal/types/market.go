package types

import (
	"time"

	"github.com/meridian-quant/regimegate/pkg/errors"
)

// Bar represents a single OHLCV price bar.
type Bar struct {
	Time   time.Time `yaml:"time" json:"time" csv:"time"`
	Open   float64   `yaml:"open" json:"open" csv:"open"`
	High   float64   `yaml:"high" json:"high" csv:"high"`
	Low    float64   `yaml:"low" json:"low" csv:"low"`
	Close  float64   `yaml:"close" json:"close" csv:"close"`
	Volume float64   `yaml:"volume" json:"volume" csv:"volume"`
}

// PriceSeries is an ordered, time-indexed sequence of bars.
// The only invariant enforced here is that timestamps are strictly
// increasing; anything else (gaps, zero volume, crossed highs/lows) is the
// caller's responsibility.
type PriceSeries struct {
	Symbol string `yaml:"symbol" json:"symbol"`
	Bars   []Bar  `yaml:"bars" json:"bars"`
}

// NewPriceSeries creates a PriceSeries from a slice of bars.
func NewPriceSeries(symbol string, bars []Bar) PriceSeries {
	return PriceSeries{
		Symbol: symbol,
		Bars:   bars,
	}
}

// Len returns the number of bars in the series.
func (s PriceSeries) Len() int {
	return len(s.Bars)
}

// Validate checks the strictly-increasing timestamp invariant.
func (s PriceSeries) Validate() error {
	for i := 1; i < len(s.Bars); i++ {
		if !s.Bars[i].Time.After(s.Bars[i-1].Time) {
			return errors.Newf(errors.ErrCodeInvalidSeries,
				"timestamps must be strictly increasing: bar %d (%s) is not after bar %d (%s)",
				i, s.Bars[i].Time.Format(time.RFC3339), i-1, s.Bars[i-1].Time.Format(time.RFC3339))
		}
	}

	return nil
}

// TruncateAt returns the prefix of the series containing only bars at or
// before t. The underlying bar slice is shared, not copied; callers must
// treat the result as read-only.
func (s PriceSeries) TruncateAt(t time.Time) PriceSeries {
	// Bars are ordered, so scan back from the end.
	n := len(s.Bars)
	for n > 0 && s.Bars[n-1].Time.After(t) {
		n--
	}

	return PriceSeries{
		Symbol: s.Symbol,
		Bars:   s.Bars[:n],
	}
}

// Opens returns the open prices aligned with the series.
func (s PriceSeries) Opens() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Open
	}

	return out
}

// Highs returns the high prices aligned with the series.
func (s PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}

	return out
}

// Lows returns the low prices aligned with the series.
func (s PriceSeries) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}

	return out
}

// Closes returns the close prices aligned with the series.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}

	return out
}

// Volumes returns the volumes aligned with the series.
func (s PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}

	return out
}
