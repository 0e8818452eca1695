package summarizer

import (
	"errors"

	"github.com/yanqian/protoform/internal/domain/trend"
)

// Config configures the summary generators. Values are resolved once and not
// changed afterwards; use With to derive a variant.
type Config struct {
	Metric     string
	MetricUnit string
	// NoiseThreshold is the normalised slope under which trend segments are flat.
	NoiseThreshold float64
	// WeekdayWeekendThreshold is the equality validity above which weekdays and
	// weekends are fitted together.
	WeekdayWeekendThreshold float64
	// MinWeekDays is the number of distinct days a week needs to be analysed.
	MinWeekDays int
	// Precision is the number of decimals printed for values.
	Precision int
}

// Overrides holds caller supplied settings. Empty strings and nil pointers keep
// the base value.
type Overrides struct {
	Metric                  string
	MetricUnit              string
	NoiseThreshold          *float64
	WeekdayWeekendThreshold *float64
	MinWeekDays             *int
	Precision               *int
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Metric:                  "active users",
		MetricUnit:              "users",
		NoiseThreshold:          trend.DefaultNoise,
		WeekdayWeekendThreshold: 0.7,
		MinWeekDays:             4,
		Precision:               2,
	}
}

// Resolve applies overrides on top of the defaults.
func Resolve(o Overrides) Config {
	return DefaultConfig().With(o)
}

// With returns a copy of c with the overrides applied.
func (c Config) With(o Overrides) Config {
	if o.Metric != "" {
		c.Metric = o.Metric
	}
	if o.MetricUnit != "" {
		c.MetricUnit = o.MetricUnit
	}
	if o.NoiseThreshold != nil {
		c.NoiseThreshold = *o.NoiseThreshold
	}
	if o.WeekdayWeekendThreshold != nil {
		c.WeekdayWeekendThreshold = *o.WeekdayWeekendThreshold
	}
	if o.MinWeekDays != nil {
		c.MinWeekDays = *o.MinWeekDays
	}
	if o.Precision != nil {
		c.Precision = *o.Precision
	}
	return c
}

// Validate ensures the configuration is safe to use.
func (c Config) Validate() error {
	if c.Metric == "" {
		return errors.New("metric cannot be empty")
	}
	if c.NoiseThreshold < 0 {
		return errors.New("noiseThreshold cannot be negative")
	}
	if c.WeekdayWeekendThreshold < 0 || c.WeekdayWeekendThreshold > 1 {
		return errors.New("weekdayWeekendThreshold must be within [0,1]")
	}
	if c.MinWeekDays < 1 || c.MinWeekDays > 7 {
		return errors.New("minWeekDays must be within [1,7]")
	}
	if c.Precision < 0 || c.Precision > 6 {
		return errors.New("precision must be within [0,6]")
	}
	return nil
}
