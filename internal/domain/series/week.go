package series

import (
	"time"

	"github.com/yanqian/protoform/pkg/util"
)

// Week is a contiguous run of points inside one Monday-based calendar week.
type Week struct {
	// Start is Monday 00:00 of the week in the location of its points.
	Start  time.Time
	Points []Point
}

// Days counts the distinct calendar dates present in the week.
func (w Week) Days() int {
	seen := make(map[int]struct{}, 7)
	for _, p := range w.Points {
		seen[DayNumber(p.X)] = struct{}{}
	}
	return len(seen)
}

// Find returns the first point falling on the given weekday.
func (w Week) Find(day time.Weekday) (Point, bool) {
	for _, p := range w.Points {
		if p.X.Weekday() == day {
			return p, true
		}
	}
	return Point{}, false
}

// Offset measures t in fractional days from the week start. Whole days are
// counted on the calendar and the fraction is the wall-clock time of day, so a
// daylight saving change inside the week does not shift later days.
func (w Week) Offset(t time.Time) float64 {
	h, m, s := t.Clock()
	clock := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
	return float64(DayNumber(t)-DayNumber(w.Start)) + clock.Hours()/24
}

// WeekStart returns Monday 00:00 of the calendar week containing t.
func WeekStart(t time.Time) time.Time {
	day := util.StartOfDay(t)
	return day.AddDate(0, 0, -DayIndex(day.Weekday()))
}

// GroupByWeek splits time-ordered points into calendar weeks.
func GroupByWeek(points []Point) []Week {
	var weeks []Week
	for _, p := range points {
		start := WeekStart(p.X)
		if n := len(weeks); n > 0 && weeks[n-1].Start.Equal(start) {
			weeks[n-1].Points = append(weeks[n-1].Points, p)
			continue
		}
		weeks = append(weeks, Week{Start: start, Points: []Point{p}})
	}
	return weeks
}

// FullWeeks groups points by week and drops weeks with fewer than minDays
// distinct days; those belong to the neighbouring period rather than a week.
func FullWeeks(points []Point, minDays int) []Week {
	all := GroupByWeek(points)
	out := all[:0]
	for _, w := range all {
		if w.Days() >= minDays {
			out = append(out, w)
		}
	}
	return out
}
