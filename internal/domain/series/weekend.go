package series

import (
	"math"
	"time"

	"github.com/yanqian/protoform/internal/domain/fuzzy"
)

var similarLevel = fuzzy.RightShoulder(0.1, 0.3)

// WeekendDegree is the fuzzy membership of a day in "weekend". Friday evening
// already leans towards the weekend.
func WeekendDegree(t time.Time) float64 {
	switch t.Weekday() {
	case time.Friday:
		return 0.2
	case time.Saturday, time.Sunday:
		return 1
	default:
		return 0
	}
}

// WeekdayDegree is the complement of WeekendDegree.
func WeekdayDegree(t time.Time) float64 {
	return 1 - WeekendDegree(t)
}

// IsWeekday reports whether t is more weekday than weekend.
func IsWeekday(t time.Time) bool {
	return WeekdayDegree(t) > 0.5
}

// Weekdays keeps the points that fall on weekdays.
func Weekdays(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if IsWeekday(p.X) {
			out = append(out, p)
		}
	}
	return out
}

// WeekdayWeekendEquality is the validity of "weekday and weekend values are
// similar". It compares the membership-weighted weekday and weekend means by
// their relative difference; a series without weekday or weekend mass scores 0.
func WeekdayWeekendEquality(points []Point) float64 {
	var weekdaySum, weekdayMass, weekendSum, weekendMass float64
	for _, p := range points {
		we := WeekendDegree(p.X)
		weekendSum += we * p.Y
		weekendMass += we
		weekdaySum += (1 - we) * p.Y
		weekdayMass += 1 - we
	}
	if weekdayMass == 0 || weekendMass == 0 {
		return 0
	}
	weekday := weekdaySum / weekdayMass
	weekend := weekendSum / weekendMass
	if weekday == weekend {
		return 1
	}
	diff := math.Abs(weekday-weekend) / math.Max(math.Abs(weekday), math.Abs(weekend))
	return fuzzy.Clamp01(similarLevel(diff))
}
