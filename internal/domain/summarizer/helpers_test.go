package summarizer

import (
	"strings"
	"time"

	"github.com/yanqian/protoform/internal/domain/series"
)

type summaryFilter func(Summary) bool

func textParts(parts ...string) summaryFilter {
	return func(s Summary) bool {
		for _, p := range parts {
			if !strings.Contains(s.Text, p) {
				return false
			}
		}
		return true
	}
}

func noneOf(filters ...summaryFilter) summaryFilter {
	return func(s Summary) bool {
		for _, f := range filters {
			if f(s) {
				return false
			}
		}
		return true
	}
}

func filterSummaries(summaries []Summary, f summaryFilter) []Summary {
	var out []Summary
	for _, s := range summaries {
		if f(s) {
			out = append(out, s)
		}
	}
	return out
}

func july(day int) time.Time {
	return time.Date(2020, time.July, day, 0, 0, 0, 0, time.UTC)
}

// julySeries builds daily points for 6..26 July 2020, three Monday-based weeks.
func julySeries(y func(day int, x time.Time) float64) []series.Point {
	var points []series.Point
	for d := 6; d <= 26; d++ {
		x := july(d)
		points = append(points, series.Point{X: x, Y: y(d, x)})
	}
	return points
}

// withPattern adds pattern, indexed by time.Weekday with Sunday first, to base.
func withPattern(base func(day int) float64, pattern [7]float64) func(int, time.Time) float64 {
	return func(day int, x time.Time) float64 {
		return base(day) + pattern[x.Weekday()]
	}
}
