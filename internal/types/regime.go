package types

// RegimeLabel is a coarse market-condition classification.
type RegimeLabel string

const (
	RegimeBullish  RegimeLabel = "bullish"
	RegimeBearish  RegimeLabel = "bearish"
	RegimeSideways RegimeLabel = "sideways"
	RegimeUnknown  RegimeLabel = "unknown"
)

// RegimeLabelPriority is the fixed tie-break order used by majority votes
// and modal smoothing. Iterating this array instead of a map guarantees
// deterministic tie-break behavior across runs.
var RegimeLabelPriority = [4]RegimeLabel{
	RegimeBullish,
	RegimeBearish,
	RegimeSideways,
	RegimeUnknown,
}

// String implements fmt.Stringer.
func (l RegimeLabel) String() string {
	return string(l)
}

// Valid reports whether l is a member of the closed enumeration.
func (l RegimeLabel) Valid() bool {
	switch l {
	case RegimeBullish, RegimeBearish, RegimeSideways, RegimeUnknown:
		return true
	default:
		return false
	}
}

// Encode maps a label to a stable numeric code used by the temporal
// smoothing pass. Unknown labels map to the Unknown code.
func (l RegimeLabel) Encode() int {
	for i, candidate := range RegimeLabelPriority {
		if l == candidate {
			return i
		}
	}

	return len(RegimeLabelPriority) - 1
}

// DecodeRegimeLabel is the inverse of Encode. Out-of-range codes decode
// to Unknown.
func DecodeRegimeLabel(code int) RegimeLabel {
	if code < 0 || code >= len(RegimeLabelPriority) {
		return RegimeUnknown
	}

	return RegimeLabelPriority[code]
}

// RegimeDecision is the detector output for a single timestamp.
// Confidence is 0.0 when fewer than the configured lookback days of
// history exist.
type RegimeDecision struct {
	Label      RegimeLabel `yaml:"label" json:"label"`
	Confidence float64     `yaml:"confidence" json:"confidence" validate:"gte=0,lte=1"`
}
