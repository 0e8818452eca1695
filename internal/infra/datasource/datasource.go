package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yanqian/protoform/internal/domain/series"
	apperrors "github.com/yanqian/protoform/pkg/errors"
)

// Supported file formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Series is one named metric read from a file.
type Series struct {
	Metric string
	Unit   string
	Points []series.Point
	// WeekdayWeekendEqualValidity is set only when the file carries it.
	WeekdayWeekendEqualValidity *float64
}

// Query selects what to load. Zero From/To leave the window open and an empty
// Metrics list keeps every series in the file.
type Query struct {
	Path    string
	Format  string
	Metrics []string
	From    time.Time
	To      time.Time
}

// Config controls how timestamps are read.
type Config struct {
	TimeColumn string
	TimeLayout string
	Location   *time.Location
}

// Source loads metric series.
type Source interface {
	Load(ctx context.Context, q Query) ([]Series, error)
}

// FileSource reads series from local CSV, JSON or YAML files.
type FileSource struct {
	cfg    Config
	logger *slog.Logger
}

// NewFileSource builds a file backed source.
func NewFileSource(cfg Config, logger *slog.Logger) *FileSource {
	if cfg.TimeColumn == "" {
		cfg.TimeColumn = "date"
	}
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = time.DateOnly
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &FileSource{cfg: cfg, logger: logger.With("component", "datasource.file")}
}

// Load reads q.Path and returns its series with points sorted by time.
func (s *FileSource) Load(ctx context.Context, q Query) ([]Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := detectFormat(q)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(q.Path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDataSourceError, "open input", err)
	}
	defer f.Close()

	var loaded []Series
	switch format {
	case FormatCSV:
		loaded, err = decodeCSV(f, s.cfg)
	case FormatJSON:
		loaded, err = decodeJSON(f, s.cfg)
	default:
		loaded, err = decodeYAML(f, s.cfg)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "decode "+q.Path, err)
	}

	selected, err := selectMetrics(loaded, q.Metrics)
	if err != nil {
		return nil, err
	}
	for i := range selected {
		points, err := sortPoints(selected[i].Points)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "metric "+selected[i].Metric, err)
		}
		selected[i].Points = series.Window(points, q.From, q.To)
	}

	s.logger.Debug("series loaded", "path", q.Path, "format", format, "series", len(selected))
	return selected, nil
}

func detectFormat(q Query) (string, error) {
	format := strings.ToLower(strings.TrimSpace(q.Format))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(q.Path)), ".")
	}
	switch format {
	case FormatCSV, FormatJSON:
		return format, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unsupported input format %q", format), nil)
	}
}

func selectMetrics(all []Series, metrics []string) ([]Series, error) {
	if len(metrics) == 0 {
		return all, nil
	}
	byName := make(map[string]Series, len(all))
	for _, s := range all {
		byName[s.Metric] = s
	}
	out := make([]Series, 0, len(metrics))
	for _, m := range metrics {
		s, ok := byName[m]
		if !ok {
			return nil, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("metric %q not found in input", m), nil)
		}
		out = append(out, s)
	}
	return out, nil
}

func sortPoints(points []series.Point) ([]series.Point, error) {
	sorted := append([]series.Point(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X.Before(sorted[j].X) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].X.Equal(sorted[i-1].X) {
			return nil, fmt.Errorf("duplicate timestamp %s", sorted[i].X.Format(time.RFC3339))
		}
	}
	return sorted, nil
}

// parseTime accepts the configured layout and RFC3339.
func parseTime(value string, cfg Config) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(cfg.TimeLayout, value, cfg.Location); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: expected layout %s or RFC3339", value, cfg.TimeLayout)
	}
	return t.In(cfg.Location), nil
}
