package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the tool.
type Config struct {
	Summary SummaryConfig `yaml:"summary"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
}

// SummaryConfig defines the defaults of the summarizer domain.
type SummaryConfig struct {
	Metric                  string  `yaml:"metric"`
	MetricUnit              string  `yaml:"metricUnit"`
	NoiseThreshold          float64 `yaml:"noiseThreshold"`
	WeekdayWeekendThreshold float64 `yaml:"weekdayWeekendThreshold"`
	MinWeekDays             int     `yaml:"minWeekDays"`
	Precision               int     `yaml:"precision"`
}

// InputConfig describes where series are read from.
type InputConfig struct {
	Path string `yaml:"path"`
	// Format is csv, json or yaml. Empty means detect from the file extension.
	Format     string `yaml:"format"`
	TimeColumn string `yaml:"timeColumn"`
	TimeLayout string `yaml:"timeLayout"`
	Timezone   string `yaml:"timezone"`
}

// OutputConfig controls how summaries are printed.
type OutputConfig struct {
	Format      string  `yaml:"format"`
	MinValidity float64 `yaml:"minValidity"`
	// Top keeps the N most valid summaries per group; 0 keeps all.
	Top   int  `yaml:"top"`
	Color bool `yaml:"color"`
}

// Location resolves the configured timezone.
func (c InputConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SUMMARY_METRIC"); v != "" {
		cfg.Summary.Metric = v
	}
	if v := os.Getenv("SUMMARY_METRIC_UNIT"); v != "" {
		cfg.Summary.MetricUnit = v
	}
	if v := os.Getenv("SUMMARY_NOISE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Summary.NoiseThreshold = parsed
		}
	}
	if v := os.Getenv("SUMMARY_WEEKDAY_WEEKEND_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Summary.WeekdayWeekendThreshold = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MIN_WEEK_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MinWeekDays = parsed
		}
	}
	if v := os.Getenv("SUMMARY_PRECISION"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.Precision = parsed
		}
	}
	if v := os.Getenv("INPUT_PATH"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("INPUT_FORMAT"); v != "" {
		cfg.Input.Format = strings.ToLower(v)
	}
	if v := os.Getenv("INPUT_TIME_COLUMN"); v != "" {
		cfg.Input.TimeColumn = v
	}
	if v := os.Getenv("INPUT_TIME_LAYOUT"); v != "" {
		cfg.Input.TimeLayout = v
	}
	if v := os.Getenv("INPUT_TIMEZONE"); v != "" {
		cfg.Input.Timezone = v
	}
	if v := os.Getenv("OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv("OUTPUT_MIN_VALIDITY"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Output.MinValidity = parsed
		}
	}
	if v := os.Getenv("OUTPUT_TOP"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Output.Top = parsed
		}
	}
	if v := os.Getenv("OUTPUT_COLOR"); v != "" {
		cfg.Output.Color = v == "1" || strings.EqualFold(v, "true")
	}
}

func defaultConfig() *Config {
	return &Config{
		Summary: SummaryConfig{
			Metric:                  "active users",
			MetricUnit:              "users",
			NoiseThreshold:          0.01,
			WeekdayWeekendThreshold: 0.7,
			MinWeekDays:             4,
			Precision:               2,
		},
		Input: InputConfig{
			TimeColumn: "date",
			TimeLayout: "2006-01-02",
			Timezone:   "UTC",
		},
		Output: OutputConfig{
			Format:      "table",
			MinValidity: 0,
			Top:         0,
			Color:       true,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Summary.Metric) == "" {
		return errors.New("summary.metric cannot be empty")
	}
	if c.Summary.NoiseThreshold < 0 {
		return errors.New("summary.noiseThreshold cannot be negative")
	}
	if c.Summary.WeekdayWeekendThreshold < 0 || c.Summary.WeekdayWeekendThreshold > 1 {
		return errors.New("summary.weekdayWeekendThreshold must be within [0,1]")
	}
	if c.Summary.MinWeekDays < 1 || c.Summary.MinWeekDays > 7 {
		return errors.New("summary.minWeekDays must be within [1,7]")
	}
	if c.Summary.Precision < 0 || c.Summary.Precision > 6 {
		return errors.New("summary.precision must be within [0,6]")
	}
	switch c.Input.Format {
	case "", "csv", "json", "yaml":
	default:
		return fmt.Errorf("input.format %q is not supported", c.Input.Format)
	}
	if strings.TrimSpace(c.Input.TimeColumn) == "" {
		return errors.New("input.timeColumn cannot be empty")
	}
	if _, err := c.Input.Location(); err != nil {
		return fmt.Errorf("input.timezone: %w", err)
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format %q is not supported", c.Output.Format)
	}
	if c.Output.MinValidity < 0 || c.Output.MinValidity > 1 {
		return errors.New("output.minValidity must be within [0,1]")
	}
	if c.Output.Top < 0 {
		return errors.New("output.top cannot be negative")
	}
	return nil
}
