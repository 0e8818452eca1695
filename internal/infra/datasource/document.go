package datasource

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/protoform/internal/domain/series"
)

type document struct {
	Series []documentSeries `json:"series" yaml:"series"`
}

type documentSeries struct {
	Metric                      string          `json:"metric" yaml:"metric"`
	Unit                        string          `json:"unit" yaml:"unit"`
	WeekdayWeekendEqualValidity *float64        `json:"weekdayWeekendEqualValidity" yaml:"weekdayWeekendEqualValidity"`
	Points                      []documentPoint `json:"points" yaml:"points"`
}

type documentPoint struct {
	X string  `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func decodeJSON(r io.Reader, cfg Config) ([]Series, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc.normalize(cfg)
}

func decodeYAML(r io.Reader, cfg Config) ([]Series, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return doc.normalize(cfg)
}

func (d document) normalize(cfg Config) ([]Series, error) {
	out := make([]Series, 0, len(d.Series))
	for i, raw := range d.Series {
		if raw.Metric == "" {
			return nil, fmt.Errorf("series %d: metric is required", i)
		}
		if v := raw.WeekdayWeekendEqualValidity; v != nil && (*v < 0 || *v > 1) {
			return nil, fmt.Errorf("series %s: weekdayWeekendEqualValidity must be within [0,1]", raw.Metric)
		}
		points := make([]series.Point, 0, len(raw.Points))
		for _, p := range raw.Points {
			x, err := parseTime(p.X, cfg)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", raw.Metric, err)
			}
			points = append(points, series.Point{X: x, Y: p.Y})
		}
		out = append(out, Series{
			Metric:                      raw.Metric,
			Unit:                        raw.Unit,
			Points:                      points,
			WeekdayWeekendEqualValidity: raw.WeekdayWeekendEqualValidity,
		})
	}
	return out, nil
}
