package summarizer

import (
	"fmt"
	"math"
	"time"

	"github.com/yanqian/protoform/internal/domain/series"
	"github.com/yanqian/protoform/internal/domain/trend"
)

// WeekElaboration is the linear model of one analysed week.
type WeekElaboration struct {
	Week  series.Week
	Model trend.LinearModel
	// WeekdaysOnly reports whether the model ignored Saturday and Sunday.
	WeekdaysOnly bool
}

// ElaborateWeeks fits a line through every week with at least minDays days.
// When weekdays and weekends behave alike the whole week is fitted, otherwise
// only the weekdays. x is measured in days from Monday 00:00 and the model's
// PredictedStart is its value at the week's first point.
func ElaborateWeeks(points []series.Point, minDays int, weekdayWeekendEqual bool) []WeekElaboration {
	weeks := series.FullWeeks(points, minDays)
	out := make([]WeekElaboration, 0, len(weeks))
	for _, w := range weeks {
		fitted := w.Points
		if !weekdayWeekendEqual {
			fitted = series.Weekdays(w.Points)
		}
		xs := make([]float64, len(fitted))
		ys := make([]float64, len(fitted))
		for i, p := range fitted {
			xs[i] = w.Offset(p.X)
			ys[i] = p.Y
		}
		model := trend.FitLinear(xs, ys)
		model.PredictedStart = model.Predict(w.Offset(w.Points[0].X))
		out = append(out, WeekElaboration{Week: w, Model: model, WeekdaysOnly: !weekdayWeekendEqual})
	}
	return out
}

func describeElaborations(weeks []WeekElaboration, cfg Config) ([]Summary, error) {
	summaries := make([]Summary, 0, len(weeks))
	for i, we := range weeks {
		ordinal, err := weekOrdinal(i)
		if err != nil {
			return nil, err
		}

		span := "from Monday to Sunday"
		if we.WeekdaysOnly {
			span = "from Monday to Friday"
		}
		m := we.Model
		summaries = append(summaries, Summary{
			Text: fmt.Sprintf("The %s <b>%s</b> in the <b>%s week</b> <b>%s</b> by <b>%s</b> %s per day from %s <b>(R2 = %s)</b>.",
				cfg.Metric, span, ordinal, directionWord(m.Gradient),
				formatValue(math.Abs(m.Gradient), cfg.Precision), cfg.MetricUnit,
				formatValue(m.PredictedStart, cfg.Precision), formatRatio(m.R2, cfg.Precision)),
			Validity: 1,
		})

		if !we.WeekdaysOnly {
			continue
		}
		fri, okFri := we.Week.Find(time.Friday)
		sat, okSat := we.Week.Find(time.Saturday)
		if !okFri || !okSat {
			continue
		}
		diff := sat.Y - fri.Y
		summaries = append(summaries, Summary{
			Text: fmt.Sprintf("The %s from Friday to Saturday <b>%s by %s</b> %s in the <b>%s week</b>.",
				cfg.Metric, directionWord(diff), formatValue(math.Abs(diff), cfg.Precision), cfg.MetricUnit, ordinal),
			Validity: 1,
		})
	}
	return summaries, nil
}

// WeeklyElaborationFactory builds queries describing the linear dynamic inside
// each week. equality is the validity of "weekdays and weekends are similar";
// above cfg.WeekdayWeekendThreshold the whole week is fitted.
func WeeklyElaborationFactory(cfg Config, equality float64) QueryFactory {
	return func(points []series.Point) Query {
		return CacheSummaries(func() ([]SummaryGroup, error) {
			weeks := ElaborateWeeks(points, cfg.MinWeekDays, equality > cfg.WeekdayWeekendThreshold)
			if len(weeks) == 0 {
				return nil, nil
			}
			summaries, err := describeElaborations(weeks, cfg)
			if err != nil {
				return nil, err
			}
			return []SummaryGroup{{Title: TitleTrendWeeklyElaboration, Summaries: summaries}}, nil
		})
	}
}
