package summarizer

import (
	"github.com/yanqian/protoform/internal/domain/series"
	"github.com/yanqian/protoform/pkg/metrics"
)

// Group titles.
const (
	TitleTrendDynamics          = "Trend Dynamics"
	TitleTrendWeeklyPattern     = "Trend Weekly Pattern"
	TitleTrendWeeklyElaboration = "Trend Weekly Elaboration"
)

// Summary is one linguistic sentence. Text carries <b>..</b> emphasis around
// its variable parts and must reach the presentation layer untouched.
type Summary struct {
	Text     string  `json:"text"`
	Validity float64 `json:"validity"`
}

// SummaryGroup is the unit handed to the presentation layer. Summaries are in
// generation order; ranking by validity is left to the consumer.
type SummaryGroup struct {
	Title     string    `json:"title"`
	Summaries []Summary `json:"summaries"`
}

// Query lazily produces the summary groups for one bound point set.
type Query func() ([]SummaryGroup, error)

// QueryFactory binds a point set to a cached Query.
type QueryFactory func(points []series.Point) Query

// Request is the summarization payload for one metric.
type Request struct {
	Metric     string         `json:"metric,omitempty"`
	MetricUnit string         `json:"metricUnit,omitempty"`
	Points     []series.Point `json:"points"`
	// WeekdayWeekendEqualValidity is supplied by the data source. When nil it is
	// derived from the points; supplied values are clamped to [0,1].
	WeekdayWeekendEqualValidity *float64 `json:"weekdayWeekendEqualValidity,omitempty"`
}

// Response is returned by Service.Summarize.
type Response struct {
	Metric                      string         `json:"metric"`
	Groups                      []SummaryGroup `json:"groups"`
	WeekdayWeekendEqualValidity float64        `json:"weekdayWeekendEqualValidity"`
	Usage                       metrics.Usage  `json:"usage"`
	DurationMs                  int64          `json:"durationMs,omitempty"`
}
