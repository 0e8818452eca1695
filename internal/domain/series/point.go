package series

import "time"

// Point is a single observation of a metric.
type Point struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

// Extent returns the time between the first and last point. Empty and single
// point sequences have zero extent.
func Extent(points []Point) time.Duration {
	if len(points) < 2 {
		return 0
	}
	return points[len(points)-1].X.Sub(points[0].X)
}

// Window keeps the points whose calendar day lies within [from, to]. Days are
// read in each time's own location, and a zero bound is open.
func Window(points []Point, from, to time.Time) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		day := DayNumber(p.X)
		if !from.IsZero() && day < DayNumber(from) {
			continue
		}
		if !to.IsZero() && day > DayNumber(to) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DayIndex maps a weekday onto a Monday-based index: Monday 0 ... Sunday 6.
func DayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// DayNumber counts calendar days since the Unix epoch for the local date of t.
// Two instants on the same local date share a day number.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// MeanAbs is the mean absolute value of the points, 0 for an empty slice.
func MeanAbs(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		if p.Y < 0 {
			sum -= p.Y
		} else {
			sum += p.Y
		}
	}
	return sum / float64(len(points))
}
