package regime

import (
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/meridian-quant/regimegate/internal/version"
	"github.com/meridian-quant/regimegate/pkg/errors"
)

// Config holds the detector parameters. Zero values are filled from the
// default tags; Validate enforces the structural constraints.
type Config struct {
	// SchemaVersion pins the config layout to a binary version range.
	SchemaVersion string `yaml:"schema_version" default:"main"`

	// Moving average periods for the trend sub-classifier, in bars.
	ShortMAPeriod  int `yaml:"short_ma_period" default:"20" validate:"gt=0"`
	MediumMAPeriod int `yaml:"medium_ma_period" default:"50" validate:"gt=0"`
	LongMAPeriod   int `yaml:"long_ma_period" default:"200" validate:"gt=0"`

	// Rate-of-change windows for the momentum sub-classifier, in bars.
	ShortROCPeriod  int `yaml:"short_roc_period" default:"5" validate:"gt=0"`
	MediumROCPeriod int `yaml:"medium_roc_period" default:"20" validate:"gt=0"`

	// LookbackDays is the trailing window used for slope and confidence
	// calculations.
	LookbackDays int `yaml:"lookback_days" default:"20" validate:"gt=0"`

	// TrendThreshold is the minimum fractional long-MA slope over
	// LookbackDays for a directional trend call.
	TrendThreshold float64 `yaml:"trend_threshold" default:"0.02" validate:"gt=0"`

	// SidewaysThreshold is the maximum absolute slope still considered
	// flat.
	SidewaysThreshold float64 `yaml:"sideways_threshold" default:"0.005" validate:"gte=0"`

	// SmoothingWindow is the width of the trailing modal filter applied to
	// raw labels.
	SmoothingWindow int `yaml:"smoothing_window" default:"5" validate:"gt=0"`
}

// DefaultConfig returns a Config with every field at its default value.
func DefaultConfig() Config {
	config := Config{}
	// Setting defaults on a struct literal cannot fail.
	_ = defaults.Set(&config)

	return config
}

// Validate checks the configuration constraints.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid detector config", err)
	}

	if !(c.ShortMAPeriod < c.MediumMAPeriod && c.MediumMAPeriod < c.LongMAPeriod) {
		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"MA periods must be strictly increasing: short=%d medium=%d long=%d",
			c.ShortMAPeriod, c.MediumMAPeriod, c.LongMAPeriod)
	}

	if c.SidewaysThreshold > c.TrendThreshold {
		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"sideways threshold %.4f must not exceed trend threshold %.4f",
			c.SidewaysThreshold, c.TrendThreshold)
	}

	return nil
}

// ParseConfig unmarshals a YAML document into a Config, filling unset
// fields with defaults and validating the result.
func ParseConfig(data []byte) (Config, error) {
	config := Config{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse detector config", err)
	}

	if err := defaults.Set(&config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to apply config defaults", err)
	}

	if err := version.CheckConfigCompatibility(version.GetVersion(), config.SchemaVersion); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "config schema version incompatible", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return ParseConfig(data)
}
