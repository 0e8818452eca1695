package summarizer

import (
	"fmt"
	"math"
	"time"

	"github.com/yanqian/protoform/internal/domain/fuzzy"
	"github.com/yanqian/protoform/internal/domain/series"
	"github.com/yanqian/protoform/internal/domain/trend"
)

// residualFloor keeps tiny residual wiggles of an otherwise flat week from
// being stretched into a full-range shape: the scale of a week never drops
// below this share of the series' mean absolute value.
const residualFloor = 0.05

type direction int

const (
	similar direction = iota
	increased
	decreased
)

func (d direction) word() string {
	switch d {
	case increased:
		return "increased"
	case decreased:
		return "decreased"
	default:
		return "similar"
	}
}

// degree scores a normalised change against the direction.
func (d direction) degree(delta float64) float64 {
	switch d {
	case increased:
		return fuzzy.LeftShoulder(0.05, 0.15)(delta)
	case decreased:
		return fuzzy.RightShoulder(-0.15, -0.05)(delta)
	default:
		return fuzzy.Trapezoid(-0.15, -0.05, 0.05, 0.15)(delta)
	}
}

// breakpoints split a week into Monday-Wednesday, Wednesday-Friday and
// Friday-Sunday segments.
var breakpoints = [4]time.Weekday{time.Monday, time.Wednesday, time.Friday, time.Sunday}

// clause is one sentence a shape is described by.
type clause struct {
	from, to time.Weekday
	dir      direction
}

func (c clause) text(quantifier, metric string) string {
	if c.dir == similar {
		return fmt.Sprintf("In <b>%s</b> weeks, the %s from <b>%s</b> to <b>%s</b> stayed <b>similar</b>.",
			quantifier, metric, c.from, c.to)
	}
	return fmt.Sprintf("In <b>%s</b> weeks, the %s from <b>%s</b> to <b>%s</b> <b>%s</b>.",
		quantifier, metric, c.from, c.to, c.dir.word())
}

// shape is a weekly hypothesis: one expected direction per segment and the
// clauses that describe it.
type shape struct {
	name     string
	segments [3]direction
	clauses  []clause
}

var weeklyShapes = []shape{
	{
		name:     "steady",
		segments: [3]direction{similar, similar, similar},
		clauses:  []clause{{time.Monday, time.Sunday, similar}},
	},
	{
		name:     "rising",
		segments: [3]direction{increased, increased, increased},
		clauses:  []clause{{time.Monday, time.Sunday, increased}},
	},
	{
		name:     "falling",
		segments: [3]direction{decreased, decreased, decreased},
		clauses:  []clause{{time.Monday, time.Sunday, decreased}},
	},
	{
		name:     "v",
		segments: [3]direction{decreased, increased, increased},
		clauses: []clause{
			{time.Monday, time.Wednesday, decreased},
			{time.Wednesday, time.Sunday, increased},
		},
	},
	{
		name:     "inverted-v",
		segments: [3]direction{increased, decreased, decreased},
		clauses: []clause{
			{time.Monday, time.Wednesday, increased},
			{time.Wednesday, time.Sunday, decreased},
		},
	},
	{
		name:     "u",
		segments: [3]direction{decreased, similar, increased},
		clauses: []clause{
			{time.Monday, time.Wednesday, decreased},
			{time.Wednesday, time.Friday, similar},
			{time.Friday, time.Sunday, increased},
		},
	},
	{
		name:     "inverted-u",
		segments: [3]direction{increased, similar, decreased},
		clauses: []clause{
			{time.Monday, time.Wednesday, increased},
			{time.Wednesday, time.Friday, similar},
			{time.Friday, time.Sunday, decreased},
		},
	},
}

// ShapeScore is the validity of one shape hypothesis for one week.
type ShapeScore struct {
	Shape    string  `json:"shape"`
	Validity float64 `json:"validity"`
}

// WeekPattern holds the shape validities of one analysed week.
type WeekPattern struct {
	Start  time.Time    `json:"start"`
	Days   int          `json:"days"`
	Shapes []ShapeScore `json:"shapes"`
}

func (w WeekPattern) validity(name string) float64 {
	for _, s := range w.Shapes {
		if s.Shape == name {
			return s.Validity
		}
	}
	return 0
}

// AnalyzeWeeks scores every shape hypothesis in every week with at least
// minDays days. Values are compared after removing the week-over-week trend of
// the whole series, so a steadily growing series reads as a steady week.
func AnalyzeWeeks(points []series.Point, minDays int) []WeekPattern {
	weeks := series.FullWeeks(points, minDays)
	if len(weeks) == 0 {
		return nil
	}

	slope := weekOverWeekSlope(points)
	origin := series.DayNumber(points[0].X)
	floor := residualFloor * series.MeanAbs(points)

	patterns := make([]WeekPattern, 0, len(weeks))
	for _, w := range weeks {
		deltas := segmentDeltas(w, slope, origin, floor)
		scores := make([]ShapeScore, 0, len(weeklyShapes))
		for _, sh := range weeklyShapes {
			degrees := make([]float64, len(deltas))
			for i, delta := range deltas {
				degrees[i] = sh.segments[i].degree(delta)
			}
			scores = append(scores, ShapeScore{Shape: sh.name, Validity: fuzzy.Min(degrees...)})
		}
		patterns = append(patterns, WeekPattern{Start: w.Start, Days: w.Days(), Shapes: scores})
	}
	return patterns
}

// weekOverWeekSlope estimates the per-day trend as the mean of
// (y(d+7) - y(d)) / 7 over all days observed one week apart. A weekly pattern
// cancels out of these differences. Without such pairs the slope is 0.
func weekOverWeekSlope(points []series.Point) float64 {
	days, values := dailyMeans(points)
	index := make(map[int]int, len(days))
	for i, d := range days {
		index[d] = i
	}

	var sum float64
	var pairs int
	for i, d := range days {
		if j, ok := index[d+7]; ok {
			sum += (values[j] - values[i]) / 7
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}

// dailyMeans averages the points of each calendar day, in time order.
func dailyMeans(points []series.Point) ([]int, []float64) {
	var (
		days   []int
		values []float64
		counts []int
	)
	for _, p := range points {
		d := series.DayNumber(p.X)
		if n := len(days); n > 0 && days[n-1] == d {
			values[n-1] += p.Y
			counts[n-1]++
			continue
		}
		days = append(days, d)
		values = append(values, p.Y)
		counts = append(counts, 1)
	}
	for i := range values {
		values[i] /= float64(counts[i])
	}
	return days, values
}

// segmentDeltas returns the detrended change over each breakpoint segment,
// divided by the week's residual range (never less than floor).
func segmentDeltas(w series.Week, slope float64, origin int, floor float64) []float64 {
	var (
		sums    [7]float64
		counts  [7]int
		present []int
		values  []float64
	)
	for _, p := range w.Points {
		idx := series.DayIndex(p.X.Weekday())
		sums[idx] += p.Y - slope*float64(series.DayNumber(p.X)-origin)
		counts[idx]++
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for idx := range sums {
		if counts[idx] == 0 {
			continue
		}
		r := sums[idx] / float64(counts[idx])
		present = append(present, idx)
		values = append(values, r)
		lo = math.Min(lo, r)
		hi = math.Max(hi, r)
	}

	scale := math.Max(hi-lo, floor)
	deltas := make([]float64, len(breakpoints)-1)
	if scale <= 0 || len(present) == 0 {
		return deltas
	}

	at := make([]float64, len(breakpoints))
	for i, day := range breakpoints {
		at[i] = residualAt(series.DayIndex(day), present, values)
	}
	for i := range deltas {
		deltas[i] = (at[i+1] - at[i]) / scale
	}
	return deltas
}

// residualAt reads the residual of a weekday index: observed if present,
// interpolated between the closest observed days, or taken from a linear fit
// of the week when the day lies outside the observed ones.
func residualAt(idx int, present []int, values []float64) float64 {
	for i, p := range present {
		if p == idx {
			return values[i]
		}
		if p > idx {
			if i == 0 {
				break
			}
			prev := present[i-1]
			frac := float64(idx-prev) / float64(p-prev)
			return values[i-1] + frac*(values[i]-values[i-1])
		}
	}
	xs := make([]float64, len(present))
	for i, p := range present {
		xs[i] = float64(p)
	}
	return trend.FitLinear(xs, values).Predict(float64(idx))
}

// describeWeeklyPatterns emits one summary per distinct clause. A clause holds
// in a week as strongly as the best shape carrying it; weeks are weighted by
// their number of days.
func describeWeeklyPatterns(patterns []WeekPattern, metric string) []Summary {
	var totalDays int
	for _, p := range patterns {
		totalDays += p.Days
	}

	var clauses []clause
	seen := make(map[clause]struct{})
	for _, sh := range weeklyShapes {
		for _, c := range sh.clauses {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			clauses = append(clauses, c)
		}
	}

	summaries := make([]Summary, 0, len(clauses))
	for _, c := range clauses {
		items := make([]fuzzy.Item, len(patterns))
		for i, p := range patterns {
			var degree float64
			for _, sh := range weeklyShapes {
				if carries(sh, c) {
					degree = math.Max(degree, p.validity(sh.name))
				}
			}
			items[i] = fuzzy.Item{Degree: degree, Span: float64(p.Days) / float64(totalDays)}
		}
		summaries = append(summaries, Summary{
			Text:     c.text(fuzzy.Most.Label, metric),
			Validity: fuzzy.RelativeSigmaCount(items, fuzzy.Most.Fn),
		})
	}
	return summaries
}

func carries(sh shape, c clause) bool {
	for _, own := range sh.clauses {
		if own == c {
			return true
		}
	}
	return false
}

// WeeklyPatternFactory builds queries describing the recurring shape of the
// weeks. Without an analysable week no group is produced.
func WeeklyPatternFactory(cfg Config) QueryFactory {
	return func(points []series.Point) Query {
		return CacheSummaries(func() ([]SummaryGroup, error) {
			patterns := AnalyzeWeeks(points, cfg.MinWeekDays)
			if len(patterns) == 0 {
				return nil, nil
			}
			return []SummaryGroup{{
				Title:     TitleTrendWeeklyPattern,
				Summaries: describeWeeklyPatterns(patterns, cfg.Metric),
			}}, nil
		})
	}
}
