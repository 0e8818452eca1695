package summarizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/protoform/internal/domain/series"
)

var (
	vShape = [7]float64{120, 60, 30, 10, 30, 60, 90}
	uShape = [7]float64{100, 100, 50, 0, 0, 0, 50}

	constantBase   = func(int) float64 { return 250 }
	increasingBase = func(day int) float64 { return 200 + 5*float64(day) }
	decreasingBase = func(day int) float64 { return 300 - 5*float64(day) }
)

func weeklyPatternSummaries(t *testing.T, points []series.Point) []Summary {
	t.Helper()
	groups, err := WeeklyPatternFactory(DefaultConfig())(points)()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, TitleTrendWeeklyPattern, groups[0].Title)
	return groups[0].Summaries
}

func requireOnlyHigh(t *testing.T, summaries []Summary, expected ...summaryFilter) {
	t.Helper()
	for _, f := range expected {
		matched := filterSummaries(summaries, f)
		require.Len(t, matched, 1)
		require.Greater(t, matched[0].Validity, 0.7, matched[0].Text)
	}
	for _, other := range filterSummaries(summaries, noneOf(expected...)) {
		require.Less(t, other.Validity, 0.3, other.Text)
	}
}

func TestWeeklyPatternValidityInUnitInterval(t *testing.T) {
	var points []series.Point
	for d := 1; d <= 31; d++ {
		points = append(points, series.Point{X: july(d), Y: float64(d)})
	}
	for _, s := range weeklyPatternSummaries(t, points) {
		require.GreaterOrEqual(t, s.Validity, 0.0)
		require.LessOrEqual(t, s.Validity, 1.0)
	}
}

func TestWeeklyPatternSteadyWeeks(t *testing.T) {
	tests := []struct {
		name string
		y    func(int, time.Time) float64
	}{
		{name: "monotonic increasing", y: func(d int, _ time.Time) float64 { return 200 + 5*float64(d) }},
		{name: "monotonic decreasing", y: func(d int, _ time.Time) float64 { return 300 - 5*float64(d) }},
		{name: "constant", y: func(int, time.Time) float64 { return 100 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			summaries := weeklyPatternSummaries(t, julySeries(tt.y))
			requireOnlyHigh(t, summaries, textParts("Monday", "Sunday", "similar"))
		})
	}
}

func TestWeeklyPatternVShape(t *testing.T) {
	bases := map[string]func(int) float64{
		"constant":   constantBase,
		"increasing": increasingBase,
		"decreasing": decreasingBase,
	}
	for name, base := range bases {
		base := base
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			summaries := weeklyPatternSummaries(t, julySeries(withPattern(base, vShape)))
			requireOnlyHigh(t, summaries,
				textParts("Monday", "Wednesday", "decreased"),
				textParts("Wednesday", "Sunday", "increased"),
			)
		})
	}
}

func TestWeeklyPatternUShape(t *testing.T) {
	bases := map[string]func(int) float64{
		"constant":   constantBase,
		"increasing": increasingBase,
		"decreasing": decreasingBase,
	}
	for name, base := range bases {
		base := base
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			summaries := weeklyPatternSummaries(t, julySeries(withPattern(base, uShape)))
			requireOnlyHigh(t, summaries,
				textParts("Monday", "Wednesday", "decreased"),
				textParts("Wednesday", "Friday", "similar"),
				textParts("Friday", "Sunday", "increased"),
			)
		})
	}
}

func TestAnalyzeWeeksScoresEachWeek(t *testing.T) {
	patterns := AnalyzeWeeks(julySeries(withPattern(constantBase, uShape)), 4)
	require.Len(t, patterns, 3)
	for i, p := range patterns {
		require.Equal(t, july(6+7*i), p.Start)
		require.Equal(t, 7, p.Days)
		require.Len(t, p.Shapes, len(weeklyShapes))
		require.InDelta(t, 1.0, p.validity("u"), 1e-9)
		require.InDelta(t, 0.0, p.validity("v"), 1e-9)
		require.InDelta(t, 0.0, p.validity("steady"), 1e-9)
	}
}

func TestAnalyzeWeeksFillsMissingBreakpoints(t *testing.T) {
	// Tuesday 7 .. Sunday 12 July: Monday is missing and comes from the week's fit;
	// Wednesday is dropped and interpolated.
	var points []series.Point
	for d := 7; d <= 12; d++ {
		if d == 8 {
			continue
		}
		x := july(d)
		points = append(points, series.Point{X: x, Y: 10 * float64(d)})
	}

	patterns := AnalyzeWeeks(points, 4)
	require.Len(t, patterns, 1)
	require.Equal(t, 5, patterns[0].Days)
	require.InDelta(t, 1.0, patterns[0].validity("rising"), 1e-9)
}

func TestWeeklyPatternSkipsShortWeeks(t *testing.T) {
	points := []series.Point{{X: july(6), Y: 1}, {X: july(7), Y: 2}, {X: july(8), Y: 3}}
	groups, err := WeeklyPatternFactory(DefaultConfig())(points)()
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestWeekOverWeekSlope(t *testing.T) {
	points := julySeries(withPattern(increasingBase, vShape))
	require.InDelta(t, 5.0, weekOverWeekSlope(points), 1e-9)

	single := julySeries(withPattern(increasingBase, vShape))[:7]
	require.Equal(t, 0.0, weekOverWeekSlope(single))
}

func TestResidualAt(t *testing.T) {
	present := []int{1, 2, 5}
	values := []float64{10, 20, 50}

	require.Equal(t, 20.0, residualAt(2, present, values))
	require.InDelta(t, 30.0, residualAt(3, present, values), 1e-9)
	require.InDelta(t, 0.0, residualAt(0, present, values), 1e-9)
	require.InDelta(t, 60.0, residualAt(6, present, values), 1e-9)
}
