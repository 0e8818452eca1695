package summarizer

import (
	"fmt"

	"github.com/yanqian/protoform/internal/domain/fuzzy"
	"github.com/yanqian/protoform/internal/domain/series"
	"github.com/yanqian/protoform/internal/domain/trend"
)

// trendDynamics are predicates over the average angle of a partial trend,
// expressed as fractions of the chart diagonal.
func trendDynamics() []fuzzy.Predicate {
	theta := trend.DiagonalAngle
	return []fuzzy.Predicate{
		{Label: "quickly increasing", Fn: fuzzy.LeftShoulder(theta/2, theta*3/5)},
		{Label: "increasing", Fn: fuzzy.LeftShoulder(theta/8, theta/4)},
		{Label: "constant", Fn: fuzzy.Trapezoid(-theta/4, -theta/8, theta/8, theta/4)},
		{Label: "decreasing", Fn: fuzzy.RightShoulder(-theta/4, -theta/8)},
		{Label: "quickly decreasing", Fn: fuzzy.RightShoulder(-theta*3/5, -theta/2)},
	}
}

// describeTrends emits one summary per quantity and dynamic pair, always in
// the same order. An empty trend list scores every sentence 0.
func describeTrends(trends []trend.PartialTrend) []Summary {
	dynamics := trendDynamics()
	quantifiers := fuzzy.Quantifiers()
	summaries := make([]Summary, 0, len(quantifiers)*len(dynamics))
	for _, q := range quantifiers {
		for _, d := range dynamics {
			items := make([]fuzzy.Item, len(trends))
			for i, tr := range trends {
				items[i] = fuzzy.Item{Degree: d.Degree(tr.AverageAngle()), Span: tr.SpanFraction}
			}
			summaries = append(summaries, Summary{
				Text:     fmt.Sprintf("trends that took <b>%s</b> of the time are <b>%s</b>.", q.Label, d.Label),
				Validity: fuzzy.SigmaCount(items, q.Fn),
			})
		}
	}
	return summaries
}

// TrendDynamicsFactory builds queries describing how the series moves over
// its partial trends. A point set without time extent yields no group.
func TrendDynamicsFactory(cfg Config) QueryFactory {
	return func(points []series.Point) Query {
		return CacheSummaries(func() ([]SummaryGroup, error) {
			if series.Extent(points) <= 0 {
				return nil, nil
			}
			trends := trend.Segment(points, cfg.NoiseThreshold)
			return []SummaryGroup{{
				Title:     TitleTrendDynamics,
				Summaries: describeTrends(trends),
			}}, nil
		})
	}
}
