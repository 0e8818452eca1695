package cli

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/yanqian/protoform/internal/domain/summarizer"
	"github.com/yanqian/protoform/internal/infra/datasource"
)

// Handler wires the command line to domain services.
type Handler struct {
	summarizerSvc summarizer.Service
	source        datasource.Source
	logger        *slog.Logger
}

// NewHandler constructs the command handler.
func NewHandler(summarySvc summarizer.Service, source datasource.Source, logger *slog.Logger) *Handler {
	return &Handler{
		summarizerSvc: summarySvc,
		source:        source,
		logger:        logger.With("component", "cli.handler"),
	}
}

// Summarize loads every selected series and summarizes them concurrently.
// Results keep the order of the series in the input. unit, when set, replaces
// the unit of every series.
func (h *Handler) Summarize(ctx context.Context, q datasource.Query, unit string) ([]summarizer.Response, error) {
	loaded, err := h.source.Load(ctx, q)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("input loaded", "path", q.Path, "series", len(loaded))

	results := make([]summarizer.Response, len(loaded))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range loaded {
		i, s := i, s
		req := summarizer.Request{
			Metric:                      s.Metric,
			MetricUnit:                  s.Unit,
			Points:                      s.Points,
			WeekdayWeekendEqualValidity: s.WeekdayWeekendEqualValidity,
		}
		if unit != "" {
			req.MetricUnit = unit
		}
		g.Go(func() error {
			resp, err := h.summarizerSvc.Summarize(gctx, req)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
