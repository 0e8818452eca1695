package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/yanqian/protoform/internal/domain/summarizer"
	"github.com/yanqian/protoform/pkg/metrics"
	"github.com/yanqian/protoform/pkg/util"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

var emphasis = regexp.MustCompile(`<b>(.*?)</b>`)

// PresentOptions controls ranking and rendering.
type PresentOptions struct {
	Format      string
	MinValidity float64
	// Top keeps the N most valid summaries of each group; 0 keeps all.
	Top   int
	Color bool
}

// Report is the document printed for one run.
type Report struct {
	ID          string                `json:"id"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Results     []summarizer.Response `json:"results"`
	Usage       metrics.Usage         `json:"usage"`
}

// NewReport stamps results with a fresh id and the current time.
func NewReport(results []summarizer.Response) Report {
	report := Report{ID: uuid.NewString(), GeneratedAt: util.NowUTC(), Results: results}
	for _, r := range results {
		report.Usage = report.Usage.Add(r.Usage)
	}
	return report
}

// Rank orders each group by validity, highest first, drops summaries below
// minValidity and keeps at most top of them. The input is not modified.
func Rank(groups []summarizer.SummaryGroup, minValidity float64, top int) []summarizer.SummaryGroup {
	out := make([]summarizer.SummaryGroup, 0, len(groups))
	for _, g := range groups {
		kept := make([]summarizer.Summary, 0, len(g.Summaries))
		for _, s := range g.Summaries {
			if s.Validity >= minValidity {
				kept = append(kept, s)
			}
		}
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Validity > kept[j].Validity })
		if top > 0 && len(kept) > top {
			kept = kept[:top]
		}
		out = append(out, summarizer.SummaryGroup{Title: g.Title, Summaries: kept})
	}
	return out
}

// Presenter writes reports.
type Presenter struct {
	out  io.Writer
	opts PresentOptions
}

// NewPresenter builds a presenter writing to out.
func NewPresenter(out io.Writer, opts PresentOptions) *Presenter {
	return &Presenter{out: out, opts: opts}
}

// Write ranks every result and prints the report.
func (p *Presenter) Write(report Report) error {
	ranked := report
	ranked.Results = make([]summarizer.Response, len(report.Results))
	for i, r := range report.Results {
		r.Groups = Rank(r.Groups, p.opts.MinValidity, p.opts.Top)
		ranked.Results[i] = r
	}

	if p.opts.Format == OutputJSON {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(ranked)
	}
	return p.writeTables(ranked)
}

func (p *Presenter) writeTables(report Report) error {
	heading := p.style(color.Bold, color.Underline)
	for i, r := range report.Results {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		fmt.Fprintln(p.out, heading.Sprint(r.Metric))
		if len(r.Groups) == 0 {
			fmt.Fprintln(p.out, "no summaries")
			continue
		}

		table := newTable(p.out)
		rows := make([][]string, 0)
		for _, g := range r.Groups {
			for _, s := range g.Summaries {
				rows = append(rows, []string{g.Title, p.validity(s.Validity), p.markup(s.Text)})
			}
		}
		table.Header([]string{"Group", "Validity", "Summary"})
		if err := table.Bulk(rows); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
		fmt.Fprintf(p.out, "%s points, %s weeks, weekday/weekend equality %s\n",
			humanize.Comma(int64(r.Usage.Points)), humanize.Comma(int64(r.Usage.Weeks)),
			strconv.FormatFloat(r.WeekdayWeekendEqualValidity, 'f', 2, 64))
	}
	fmt.Fprintf(p.out, "\nreport %s generated %s\n", report.ID, report.GeneratedAt.Format(time.RFC3339))
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

func (p *Presenter) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// markup renders <b> emphasis as bold text, or drops the tags without colour.
func (p *Presenter) markup(text string) string {
	bold := p.style(color.Bold)
	return emphasis.ReplaceAllStringFunc(text, func(m string) string {
		return bold.Sprint(emphasis.FindStringSubmatch(m)[1])
	})
}

func (p *Presenter) validity(v float64) string {
	text := strconv.FormatFloat(v, 'f', 2, 64)
	switch {
	case v >= 0.7:
		return p.style(color.FgGreen).Sprint(text)
	case v >= 0.3:
		return p.style(color.FgYellow).Sprint(text)
	default:
		return p.style(color.Faint).Sprint(text)
	}
}
