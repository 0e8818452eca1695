package summarizer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/protoform/internal/domain/series"
)

func linearJuly(_ int, x time.Time) float64 {
	return 200 + 5*float64(x.Day())
}

func TestElaborateWeeksLinearFit(t *testing.T) {
	weeks := ElaborateWeeks(julySeries(linearJuly), 4, true)
	require.Len(t, weeks, 3)
	for i, w := range weeks {
		require.False(t, w.WeekdaysOnly)
		require.InDelta(t, 5.0, w.Model.Gradient, 1e-9)
		require.InDelta(t, 1.0, w.Model.R2, 1e-9)
		require.InDelta(t, 230+35*float64(i), w.Model.PredictedStart, 1e-9)
	}
}

func TestElaborateWeeksNoisyFitHasLowerR2(t *testing.T) {
	noisy := func(d int, x time.Time) float64 {
		return linearJuly(d, x) + 20*math.Sin(float64(d)*2.1)
	}
	weeks := ElaborateWeeks(julySeries(noisy), 4, true)
	require.Len(t, weeks, 3)
	for _, w := range weeks {
		require.Less(t, w.Model.R2, 1.0)
		require.GreaterOrEqual(t, w.Model.R2, 0.0)
	}
}

func TestWeeklyElaborationWholeWeek(t *testing.T) {
	groups, err := WeeklyElaborationFactory(DefaultConfig(), 1)(julySeries(linearJuly))()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, TitleTrendWeeklyElaboration, groups[0].Title)

	summaries := groups[0].Summaries
	require.Len(t, summaries, 3)
	require.Equal(t,
		"The active users <b>from Monday to Sunday</b> in the <b>first week</b> <b>increased</b> by <b>5</b> users per day from 230 <b>(R2 = 1.00)</b>.",
		summaries[0].Text)
	require.Contains(t, summaries[2].Text, "<b>third week</b>")
	require.Contains(t, summaries[2].Text, "from 300 ")
	for _, s := range summaries {
		require.Equal(t, 1.0, s.Validity)
	}
}

func TestWeeklyElaborationWeekdaysOnly(t *testing.T) {
	// Weekends sit far below the weekday line and fall from Friday to Saturday.
	y := func(d int, x time.Time) float64 {
		v := linearJuly(d, x)
		if wd := x.Weekday(); wd == time.Saturday || wd == time.Sunday {
			v -= 100
		}
		return v
	}
	cfg := DefaultConfig().With(Overrides{Metric: "sessions", MetricUnit: "sessions"})
	groups, err := WeeklyElaborationFactory(cfg, 0)(julySeries(y))()
	require.NoError(t, err)
	require.Len(t, groups, 1)

	summaries := groups[0].Summaries
	require.Len(t, summaries, 6)
	require.Equal(t,
		"The sessions <b>from Monday to Friday</b> in the <b>first week</b> <b>increased</b> by <b>5</b> sessions per day from 230 <b>(R2 = 1.00)</b>.",
		summaries[0].Text)
	require.Equal(t,
		"The sessions from Friday to Saturday <b>decreased by 95</b> sessions in the <b>first week</b>.",
		summaries[1].Text)
}

func TestWeeklyElaborationBeyondTwelveWeeks(t *testing.T) {
	var points []series.Point
	start := july(6)
	for d := 0; d < 14*7; d++ {
		points = append(points, series.Point{X: start.AddDate(0, 0, d), Y: float64(d)})
	}

	groups, err := WeeklyElaborationFactory(DefaultConfig(), 1)(points)()
	require.NoError(t, err)
	require.Len(t, groups, 1)

	summaries := groups[0].Summaries
	require.Len(t, summaries, 14)
	require.Contains(t, summaries[11].Text, "<b>twelfth week</b>")
	require.Contains(t, summaries[12].Text, "<b>13th week</b>")
	require.Contains(t, summaries[13].Text, "<b>14th week</b>")
}

func TestWeeklyElaborationWithoutWeeks(t *testing.T) {
	points := []series.Point{{X: july(6), Y: 1}, {X: july(7), Y: 2}}
	groups, err := WeeklyElaborationFactory(DefaultConfig(), 1)(points)()
	require.NoError(t, err)
	require.Empty(t, groups)
}
