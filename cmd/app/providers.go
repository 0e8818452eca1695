package main

import (
	"github.com/yanqian/protoform/internal/domain/summarizer"
	"github.com/yanqian/protoform/internal/infra/config"
	"github.com/yanqian/protoform/internal/infra/datasource"
	apperrors "github.com/yanqian/protoform/pkg/errors"
)

func provideSummaryConfig(cfg *config.Config) (summarizer.Config, error) {
	resolved := summarizer.Resolve(summarizer.Overrides{
		Metric:                  cfg.Summary.Metric,
		MetricUnit:              cfg.Summary.MetricUnit,
		NoiseThreshold:          &cfg.Summary.NoiseThreshold,
		WeekdayWeekendThreshold: &cfg.Summary.WeekdayWeekendThreshold,
		MinWeekDays:             &cfg.Summary.MinWeekDays,
		Precision:               &cfg.Summary.Precision,
	})
	if err := resolved.Validate(); err != nil {
		return summarizer.Config{}, apperrors.Wrap(apperrors.CodeConfigError, "summary config", err)
	}
	return resolved, nil
}

func provideDataSourceConfig(cfg *config.Config) (datasource.Config, error) {
	loc, err := cfg.Input.Location()
	if err != nil {
		return datasource.Config{}, apperrors.Wrap(apperrors.CodeConfigError, "input timezone", err)
	}
	return datasource.Config{
		TimeColumn: cfg.Input.TimeColumn,
		TimeLayout: cfg.Input.TimeLayout,
		Location:   loc,
	}, nil
}
