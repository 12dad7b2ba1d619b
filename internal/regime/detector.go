// Package regime classifies the prevailing market condition from historical
// OHLCV data and gates whether trading is permitted on a given date.
//
// The Detector combines three independent sub-classifiers (trend, momentum,
// volatility) into a consensus label per bar, smooths the sequence with a
// trailing modal filter, and scores its own confidence. It is stateless:
// every call recomputes from the full supplied history, so identical inputs
// always produce identical outputs.
package regime

import (
	"math"

	"github.com/meridian-quant/regimegate/internal/indicator"
	"github.com/meridian-quant/regimegate/internal/types"
)

// Fixed periods for the oscillator bundle, matching the conventional
// defaults for RSI/ADX/ATR.
const (
	rsiPeriod = 14
	adxPeriod = 14
	atrPeriod = 14
)

// ADX below this level means the market is not trending.
const weakTrendADX = 20.0

// Detector classifies a price series into regime labels.
type Detector struct {
	config Config
}

// NewDetector creates a detector with the given configuration.
func NewDetector(config Config) *Detector {
	return &Detector{config: config}
}

// Config returns the detector configuration.
func (d *Detector) Config() Config {
	return d.config
}

// indicatorBundle holds the aligned intermediate series shared by the
// sub-classifiers and the confidence score.
type indicatorBundle struct {
	closes []float64

	smaShort  []float64
	smaMedium []float64
	smaLong   []float64
	emaShort  []float64
	emaMedium []float64
	emaLong   []float64

	rocShort  []float64
	rocMedium []float64
	rsi       []float64
	adx       []float64
	atr       []float64

	longSlope  []float64
	rollingVol []float64

	priceToMedium []float64
	priceToLong   []float64
}

// DetectRegime returns one label per bar, aligned with the input series.
//
// Validation failures (fewer bars than the long MA period, or broken
// timestamp ordering) soft-fail to an all-Unknown sequence; this method
// never returns an error.
func (d *Detector) DetectRegime(series types.PriceSeries) []types.RegimeLabel {
	labels := make([]types.RegimeLabel, series.Len())
	for i := range labels {
		labels[i] = types.RegimeUnknown
	}

	if !d.validate(series) {
		return labels
	}

	bundle := d.computeBundle(series)

	raw := make([]types.RegimeLabel, series.Len())
	for i := range raw {
		votes := [3]types.RegimeLabel{
			d.classifyTrend(bundle, i),
			d.classifyMomentum(bundle, i),
			d.classifyVolatility(bundle, i),
		}
		raw[i] = consensusVote(votes)
	}

	return smoothLabels(raw, d.config.SmoothingWindow)
}

// CurrentRegime returns the smoothed label at the most recent bar, or
// Unknown for an empty series.
func (d *Detector) CurrentRegime(series types.PriceSeries) types.RegimeLabel {
	labels := d.DetectRegime(series)
	if len(labels) == 0 {
		return types.RegimeUnknown
	}

	return labels[len(labels)-1]
}

// Strength returns the detector's confidence in [0,1] at the most recent
// bar: the mean of a trend-slope score, an RSI-stability score and an
// ADX-clarity score. It returns 0.0 when the series fails validation or
// holds fewer than lookback_days bars.
func (d *Detector) Strength(series types.PriceSeries) float64 {
	if !d.validate(series) || series.Len() < d.config.LookbackDays {
		return 0.0
	}

	bundle := d.computeBundle(series)
	last := series.Len() - 1

	trendScore := 0.0
	if slope := bundle.longSlope[last]; !math.IsNaN(slope) {
		trendScore = math.Min(math.Abs(slope)/d.config.TrendThreshold, 1.0)
	}

	window := series.Len() - d.config.LookbackDays
	momentumScore := math.Max(0, 1-indicator.Std(bundle.rsi[window:])/20)
	volatilityScore := math.Min(indicator.Mean(bundle.adx[window:])/40, 1.0)

	return (trendScore + momentumScore + volatilityScore) / 3
}

// Decision bundles the current label and confidence.
func (d *Detector) Decision(series types.PriceSeries) types.RegimeDecision {
	return types.RegimeDecision{
		Label:      d.CurrentRegime(series),
		Confidence: d.Strength(series),
	}
}

// validate applies the soft-fail input checks: enough history for the long
// MA and strictly increasing timestamps.
func (d *Detector) validate(series types.PriceSeries) bool {
	if series.Len() < d.config.LongMAPeriod {
		return false
	}

	return series.Validate() == nil
}

func (d *Detector) computeBundle(series types.PriceSeries) indicatorBundle {
	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()

	bundle := indicatorBundle{
		closes:    closes,
		smaShort:  indicator.SMA(closes, d.config.ShortMAPeriod),
		smaMedium: indicator.SMA(closes, d.config.MediumMAPeriod),
		smaLong:   indicator.SMA(closes, d.config.LongMAPeriod),
		emaShort:  indicator.EMA(closes, d.config.ShortMAPeriod),
		emaMedium: indicator.EMA(closes, d.config.MediumMAPeriod),
		emaLong:   indicator.EMA(closes, d.config.LongMAPeriod),
		rocShort:  indicator.ROC(closes, d.config.ShortROCPeriod),
		rocMedium: indicator.ROC(closes, d.config.MediumROCPeriod),
		rsi:       indicator.RSI(closes, rsiPeriod),
		adx:       indicator.ADX(highs, lows, closes, adxPeriod).ADX,
		atr:       indicator.ATR(highs, lows, closes, atrPeriod),
	}

	bundle.longSlope = indicator.Slope(bundle.smaLong, d.config.LookbackDays)
	bundle.rollingVol = indicator.RollingStd(bundle.rocShort, d.config.LookbackDays)

	bundle.priceToMedium = priceRatio(closes, bundle.smaMedium)
	bundle.priceToLong = priceRatio(closes, bundle.smaLong)

	return bundle
}

// classifyTrend applies the MA-stack rules: a directional call requires the
// long-MA slope to clear the trend threshold, price above (below) both the
// medium and long MA, and a strictly ordered MA stack.
func (d *Detector) classifyTrend(b indicatorBundle, i int) types.RegimeLabel {
	slope := b.longSlope[i]
	close := b.closes[i]

	stackBullish := b.smaShort[i] > b.smaMedium[i] && b.smaMedium[i] > b.smaLong[i]
	stackBearish := b.smaShort[i] < b.smaMedium[i] && b.smaMedium[i] < b.smaLong[i]

	if slope > d.config.TrendThreshold &&
		close > b.smaMedium[i] && close > b.smaLong[i] &&
		stackBullish {
		return types.RegimeBullish
	}

	if slope < -d.config.TrendThreshold &&
		close < b.smaMedium[i] && close < b.smaLong[i] &&
		stackBearish {
		return types.RegimeBearish
	}

	// NaN slopes fail both comparisons below, leaving the stack test to
	// decide; an unordered (or warm-up) stack reads as sideways.
	if math.Abs(slope) <= d.config.SidewaysThreshold || (!stackBullish && !stackBearish) {
		return types.RegimeSideways
	}

	return types.RegimeUnknown
}

// classifyMomentum applies tiered RSI and medium-term ROC thresholds.
func (d *Detector) classifyMomentum(b indicatorBundle, i int) types.RegimeLabel {
	rsi := b.rsi[i]
	roc := b.rocMedium[i]

	switch {
	case rsi > 60 && roc > 5:
		return types.RegimeBullish
	case rsi > 50 && roc > 2:
		return types.RegimeBullish
	case rsi < 40 && roc < -5:
		return types.RegimeBearish
	case rsi < 50 && roc < -2:
		return types.RegimeBearish
	case rsi >= 40 && rsi <= 60 && math.Abs(roc) <= 2:
		return types.RegimeSideways
	default:
		return types.RegimeUnknown
	}
}

// classifyVolatility currently only recognizes the weak-trend case; strong
// directional volatility states intentionally fall through to Unknown.
// See DESIGN.md before extending this.
func (d *Detector) classifyVolatility(b indicatorBundle, i int) types.RegimeLabel {
	if b.adx[i] < weakTrendADX {
		return types.RegimeSideways
	}

	return types.RegimeUnknown
}

// consensusVote applies a majority vote over the sub-classifier labels.
// The fixed priority order makes tie-breaks deterministic; Unknown is last
// in the order, so it only wins as a unique plurality.
func consensusVote(votes [3]types.RegimeLabel) types.RegimeLabel {
	counts := make(map[types.RegimeLabel]int, len(types.RegimeLabelPriority))
	for _, vote := range votes {
		counts[vote]++
	}

	winner := types.RegimeUnknown
	best := 0

	for _, label := range types.RegimeLabelPriority {
		if counts[label] > best {
			best = counts[label]
			winner = label
		}
	}

	return winner
}

// smoothLabels applies a trailing modal filter: each position is replaced
// with the most frequent label over the window [max(0,i-width+1), i], ties
// broken toward the label occurring most recently in the window.
func smoothLabels(raw []types.RegimeLabel, width int) []types.RegimeLabel {
	if width < 1 {
		width = 1
	}

	out := make([]types.RegimeLabel, len(raw))

	for i := range raw {
		start := i - width + 1
		if start < 0 {
			start = 0
		}

		var counts [len(types.RegimeLabelPriority)]int
		for j := start; j <= i; j++ {
			counts[raw[j].Encode()]++
		}

		best := 0
		for _, c := range counts {
			if c > best {
				best = c
			}
		}

		// Scan backward so the most recent tied label wins.
		for j := i; j >= start; j-- {
			if counts[raw[j].Encode()] == best {
				out[i] = raw[j]
				break
			}
		}
	}

	return out
}

// priceRatio returns close/ma aligned with the inputs; NaN or zero MA
// entries yield NaN.
func priceRatio(closes, ma []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		if ma[i] == 0 || math.IsNaN(ma[i]) {
			out[i] = math.NaN()
			continue
		}

		out[i] = closes[i] / ma[i]
	}

	return out
}
