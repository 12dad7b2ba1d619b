package regime

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/meridian-quant/regimegate/internal/logger"
	"github.com/meridian-quant/regimegate/internal/types"
	"github.com/meridian-quant/regimegate/pkg/errors"
)

// FilterPolicy decides which regime decisions permit trading. It is
// immutable after construction.
type FilterPolicy struct {
	AllowedLabels []types.RegimeLabel `yaml:"allowed_labels" validate:"min=1"`
	MinConfidence float64             `yaml:"min_confidence" validate:"gte=0,lte=1"`
}

// NewFilterPolicy validates and builds a policy. The allowed-label slice is
// copied so later mutation by the caller cannot change the policy.
func NewFilterPolicy(allowed []types.RegimeLabel, minConfidence float64) (FilterPolicy, error) {
	policy := FilterPolicy{
		AllowedLabels: append([]types.RegimeLabel(nil), allowed...),
		MinConfidence: minConfidence,
	}

	validate := validator.New()
	if err := validate.Struct(policy); err != nil {
		return FilterPolicy{}, errors.Wrap(errors.ErrCodeInvalidPolicy, "invalid filter policy", err)
	}

	for _, label := range policy.AllowedLabels {
		if !label.Valid() {
			return FilterPolicy{}, errors.Newf(errors.ErrCodeInvalidLabel, "unknown regime label %q", label)
		}
	}

	return policy, nil
}

// Allows reports whether the label is in the policy's allowed set.
func (p FilterPolicy) Allows(label types.RegimeLabel) bool {
	for _, allowed := range p.AllowedLabels {
		if allowed == label {
			return true
		}
	}

	return false
}

// Filter wraps a Detector with a FilterPolicy to answer "may I trade on
// date D given this reference series?".
//
// The filter fails closed: an empty truncation or any internal failure
// returns false. This is the opposite of the Cache's fail-open policy; see
// DESIGN.md for the rationale of the asymmetry.
type Filter struct {
	detector *Detector
	policy   FilterPolicy
	logger   *logger.Logger
}

// NewFilter creates a Filter.
func NewFilter(detector *Detector, policy FilterPolicy, log *logger.Logger) *Filter {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Filter{
		detector: detector,
		policy:   policy,
		logger:   log,
	}
}

// Detector returns the wrapped detector.
func (f *Filter) Detector() *Detector {
	return f.detector
}

// Policy returns the filter policy.
func (f *Filter) Policy() FilterPolicy {
	return f.policy
}

// ShouldTrade reports whether the policy permits trading given the series.
// When asOf is provided the series is truncated to bars at or before it;
// otherwise the full series is used.
func (f *Filter) ShouldTrade(series types.PriceSeries, asOf optional.Option[time.Time]) (allowed bool) {
	// Fail closed on any unexpected failure inside the detector.
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("regime filter recovered from panic, blocking trade",
				zap.Any("panic", r))

			allowed = false
		}
	}()

	if asOf.IsSome() {
		series = series.TruncateAt(asOf.Unwrap())
	}

	if series.Len() == 0 {
		f.logger.Warn("regime data unavailable for filter, blocking trade",
			zap.String("symbol", series.Symbol))

		return false
	}

	decision := f.detector.Decision(series)

	allowed = f.policy.Allows(decision.Label) && decision.Confidence >= f.policy.MinConfidence

	f.logger.Debug("regime filter decision",
		zap.String("symbol", series.Symbol),
		zap.String("label", decision.Label.String()),
		zap.Float64("confidence", decision.Confidence),
		zap.Bool("allowed", allowed))

	return allowed
}
