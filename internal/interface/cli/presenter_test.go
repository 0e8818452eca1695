package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/protoform/internal/domain/summarizer"
	"github.com/yanqian/protoform/pkg/metrics"
)

func sampleGroups() []summarizer.SummaryGroup {
	return []summarizer.SummaryGroup{{
		Title: summarizer.TitleTrendDynamics,
		Summaries: []summarizer.Summary{
			{Text: "trends that took <b>most</b> of the time are <b>constant</b>.", Validity: 0.2},
			{Text: "trends that took <b>most</b> of the time are <b>increasing</b>.", Validity: 0.9},
			{Text: "trends that took <b>half</b> of the time are <b>increasing</b>.", Validity: 0.5},
			{Text: "trends that took <b>few</b> of the time are <b>increasing</b>.", Validity: 0},
		},
	}}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name        string
		minValidity float64
		top         int
		want        []float64
	}{
		{name: "sort only", want: []float64{0.9, 0.5, 0.2, 0}},
		{name: "cutoff", minValidity: 0.3, want: []float64{0.9, 0.5}},
		{name: "top", top: 1, want: []float64{0.9}},
		{name: "cutoff above all", minValidity: 0.95, want: []float64{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			groups := sampleGroups()
			ranked := Rank(groups, tt.minValidity, tt.top)
			require.Len(t, ranked, 1)
			got := make([]float64, 0, len(ranked[0].Summaries))
			for _, s := range ranked[0].Summaries {
				got = append(got, s.Validity)
			}
			require.Equal(t, tt.want, got)
			require.Equal(t, 0.2, groups[0].Summaries[0].Validity)
		})
	}
}

func TestPresenterJSONKeepsMarkup(t *testing.T) {
	var out bytes.Buffer
	report := NewReport([]summarizer.Response{{
		Metric: "active users",
		Groups: sampleGroups(),
		Usage:  metrics.Usage{Points: 21, Weeks: 3, Groups: 1, Summaries: 4},
	}})

	require.NoError(t, NewPresenter(&out, PresentOptions{Format: OutputJSON, Top: 2}).Write(report))
	require.Contains(t, out.String(), "<b>most</b>")

	var decoded Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Equal(t, report.ID, decoded.ID)
	require.Len(t, decoded.Results[0].Groups[0].Summaries, 2)
	require.Equal(t, 21, decoded.Usage.Points)
	require.Len(t, report.Results[0].Groups[0].Summaries, 4)
}

func TestPresenterTableStripsMarkupWithoutColor(t *testing.T) {
	var out bytes.Buffer
	report := NewReport([]summarizer.Response{
		{Metric: "active users", Groups: sampleGroups(), Usage: metrics.Usage{Points: 1200, Weeks: 3}},
		{Metric: "sessions"},
	})

	require.NoError(t, NewPresenter(&out, PresentOptions{Format: OutputTable, MinValidity: 0.3}).Write(report))
	text := out.String()
	require.Contains(t, text, "trends that took most of the time are increasing.")
	require.NotContains(t, text, "<b>")
	require.NotContains(t, text, "\x1b[")
	require.NotContains(t, text, "constant")
	require.Contains(t, text, "1,200 points, 3 weeks")
	require.Contains(t, text, "sessions\nno summaries")
	require.Contains(t, text, report.ID)
}

func TestPresenterMarkupWithColor(t *testing.T) {
	p := NewPresenter(&bytes.Buffer{}, PresentOptions{Color: true})
	rendered := p.markup("a <b>bold</b> word")
	require.Contains(t, rendered, "\x1b[1m")
	require.Contains(t, rendered, "bold")
	require.NotContains(t, rendered, "<b>")
}
