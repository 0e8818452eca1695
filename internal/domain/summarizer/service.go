package summarizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/protoform/internal/domain/fuzzy"
	"github.com/yanqian/protoform/internal/domain/series"
	apperrors "github.com/yanqian/protoform/pkg/errors"
	"github.com/yanqian/protoform/pkg/metrics"
)

// Service exposes linguistic summarization of a metric series.
type Service interface {
	Summarize(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{cfg: cfg, logger: logger.With("component", "summarizer.service"), now: time.Now}
}

func (s *service) Summarize(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	started := s.now()

	cfg := s.cfg.With(Overrides{Metric: req.Metric, MetricUnit: req.MetricUnit})
	resp := Response{Metric: cfg.Metric, Groups: []SummaryGroup{}}
	if len(req.Points) == 0 {
		s.logger.Debug("no points to summarize", "metric", cfg.Metric)
		return resp, nil
	}

	equality := series.WeekdayWeekendEquality(req.Points)
	if req.WeekdayWeekendEqualValidity != nil {
		equality = fuzzy.Clamp01(*req.WeekdayWeekendEqualValidity)
	}
	resp.WeekdayWeekendEqualValidity = equality

	queries := []Query{
		TrendDynamicsFactory(cfg)(req.Points),
		WeeklyPatternFactory(cfg)(req.Points),
		WeeklyElaborationFactory(cfg, equality)(req.Points),
	}
	for _, query := range queries {
		groups, err := query()
		if err != nil {
			return Response{}, apperrors.Wrap(apperrors.CodeOf(err), "summarize "+cfg.Metric, err)
		}
		resp.Groups = append(resp.Groups, groups...)
	}

	resp.Usage = metrics.Usage{
		Points: len(req.Points),
		Weeks:  len(series.FullWeeks(req.Points, cfg.MinWeekDays)),
		Groups: len(resp.Groups),
	}
	for _, g := range resp.Groups {
		resp.Usage.Summaries += len(g.Summaries)
	}
	resp.DurationMs = s.now().Sub(started).Milliseconds()

	s.logger.Info("summaries generated",
		"metric", cfg.Metric,
		"points", resp.Usage.Points,
		"groups", resp.Usage.Groups,
		"summaries", resp.Usage.Summaries,
	)
	return resp, nil
}
