package trend

import (
	"math"

	"github.com/yanqian/protoform/internal/domain/series"
)

// DefaultNoise is the slope below which a segment counts as flat.
const DefaultNoise = 0.01

// DiagonalAngle is the angle of the unit chart diagonal. A trend climbing the
// full value range over the full time range has this angle.
const DiagonalAngle = math.Pi / 4

// PartialTrend is a maximal run of points sharing one direction. Neighbouring
// trends share their boundary point, so their time spans tile the series.
type PartialTrend struct {
	Points []series.Point
	// StartAngle and EndAngle are the chart angles of the first and last segment.
	StartAngle float64
	EndAngle   float64
	// SpanFraction is the trend's share of the series time extent.
	SpanFraction float64
}

// AverageAngle is the mean of the bounding segment angles.
func (t PartialTrend) AverageAngle() float64 {
	return (t.StartAngle + t.EndAngle) / 2
}

// Segment splits points into partial trends. A run keeps growing while segment
// slopes keep its direction or stay within noise of flat, and is closed when a
// slope turns the other way by more than noise. One point or a zero time
// extent produces no trends.
func Segment(points []series.Point, noise float64) []PartialTrend {
	total := series.Extent(points)
	if len(points) < 2 || total <= 0 {
		return nil
	}

	xs, ys := normalize(points, total.Seconds())
	angles := make([]float64, len(points)-1)
	dirs := make([]int, len(points)-1)
	for i := range angles {
		dx, dy := xs[i+1]-xs[i], ys[i+1]-ys[i]
		if dx <= 0 {
			continue
		}
		angles[i] = math.Atan2(dy, dx)
		dirs[i] = direction(dy/dx, noise)
	}

	var (
		trends []PartialTrend
		start  int
		runDir int
	)
	closeRun := func(end int) {
		trends = append(trends, PartialTrend{
			Points:       points[start : end+1 : end+1],
			StartAngle:   angles[start],
			EndAngle:     angles[end-1],
			SpanFraction: xs[end] - xs[start],
		})
		start = end
	}
	for i, d := range dirs {
		switch {
		case d == 0:
		case runDir == 0:
			runDir = d
		case d != runDir:
			closeRun(i)
			runDir = d
		}
	}
	closeRun(len(points) - 1)
	return trends
}

func direction(slope, noise float64) int {
	switch {
	case slope > noise:
		return 1
	case slope < -noise:
		return -1
	default:
		return 0
	}
}

// normalize maps points into the unit chart. A series with no value range lies
// on y = 0.
func normalize(points []series.Point, totalSeconds float64) ([]float64, []float64) {
	lo, hi := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Y)
		hi = math.Max(hi, p.Y)
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	origin := points[0].X
	for i, p := range points {
		xs[i] = p.X.Sub(origin).Seconds() / totalSeconds
		if hi > lo {
			ys[i] = (p.Y - lo) / (hi - lo)
		}
	}
	return xs, ys
}
