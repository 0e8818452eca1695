package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/protoform/internal/infra/config"
	"github.com/yanqian/protoform/internal/infra/datasource"
)

// Version is stamped at build time.
var Version = "dev"

type summarizeFlags struct {
	input       string
	inputFormat string
	metrics     []string
	unit        string
	from        string
	to          string
	output      string
	minValidity float64
	top         int
	color       bool
}

// NewRootCommand builds the protoform command tree. Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config, handler *Handler) *cobra.Command {
	root := &cobra.Command{
		Use:   "protoform",
		Short: "Describe metric time series in plain sentences",
		Long: `protoform reads daily metric series and prints linguistic summaries of
their trends and weekly patterns, each with a validity between 0 and 1.

Example usage:
  protoform summarize -i data/users.csv
  protoform summarize -i data/metrics.yaml --metric sessions -o json
  protoform summarize -i data/users.csv --from 2020-07-06 --to 2020-07-26 --top 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewCLIError(ExitUsageError, "invalid_request", "invalid flag", err)
	})
	root.AddCommand(newSummarizeCommand(cfg, handler), newVersionCommand())
	return root
}

// noArgs rejects positional arguments, which on the root command are unknown
// subcommands.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return NewCLIError(ExitUsageError, "invalid_request",
		fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath()), nil)
}

func newSummarizeCommand(cfg *config.Config, handler *Handler) *cobra.Command {
	flags := summarizeFlags{
		input:       cfg.Input.Path,
		inputFormat: cfg.Input.Format,
		output:      cfg.Output.Format,
		minValidity: cfg.Output.MinValidity,
		top:         cfg.Output.Top,
		color:       cfg.Output.Color,
	}

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize the series of an input file",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := flags.query()
			if err != nil {
				return err
			}
			opts, err := flags.presentOptions()
			if err != nil {
				return err
			}

			results, err := handler.Summarize(cmd.Context(), query, flags.unit)
			if err != nil {
				return err
			}
			return NewPresenter(cmd.OutOrStdout(), opts).Write(NewReport(results))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.input, "input", "i", flags.input, "input file (csv, json or yaml)")
	f.StringVar(&flags.inputFormat, "format", flags.inputFormat, "input format, detected from the extension when empty")
	f.StringSliceVarP(&flags.metrics, "metric", "m", nil, "metrics to summarize (default all)")
	f.StringVar(&flags.unit, "unit", "", "unit used for every metric")
	f.StringVar(&flags.from, "from", "", "first day to include (YYYY-MM-DD)")
	f.StringVar(&flags.to, "to", "", "last day to include (YYYY-MM-DD)")
	f.StringVarP(&flags.output, "output", "o", flags.output, "output format: table or json")
	f.Float64Var(&flags.minValidity, "min-validity", flags.minValidity, "hide summaries below this validity")
	f.IntVar(&flags.top, "top", flags.top, "keep the N most valid summaries per group (0 keeps all)")
	f.BoolVar(&flags.color, "color", flags.color, "render emphasis with terminal colours")
	return cmd
}

func (f summarizeFlags) query() (datasource.Query, error) {
	q := datasource.Query{Path: strings.TrimSpace(f.input), Format: f.inputFormat, Metrics: f.metrics}
	if q.Path == "" {
		return q, NewCLIError(ExitUsageError, "invalid_request", "an input file is required (--input or INPUT_PATH)", nil)
	}
	var err error
	if q.From, err = parseDay("from", f.from); err != nil {
		return q, err
	}
	if q.To, err = parseDay("to", f.to); err != nil {
		return q, err
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return q, NewCLIError(ExitUsageError, "invalid_request", "--to must not be before --from", nil)
	}
	return q, nil
}

func (f summarizeFlags) presentOptions() (PresentOptions, error) {
	format := strings.ToLower(f.output)
	if format != OutputTable && format != OutputJSON {
		return PresentOptions{}, NewCLIError(ExitUsageError, "invalid_request", fmt.Sprintf("unsupported output format %q", f.output), nil)
	}
	if f.minValidity < 0 || f.minValidity > 1 {
		return PresentOptions{}, NewCLIError(ExitUsageError, "invalid_request", "--min-validity must be within [0,1]", nil)
	}
	if f.top < 0 {
		return PresentOptions{}, NewCLIError(ExitUsageError, "invalid_request", "--top cannot be negative", nil)
	}
	return PresentOptions{Format: format, MinValidity: f.minValidity, Top: f.top, Color: f.color}, nil
}

func parseDay(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, NewCLIError(ExitUsageError, "invalid_request", fmt.Sprintf("--%s must be YYYY-MM-DD", name), err)
	}
	return t, nil
}

func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]string{
					"version":   Version,
					"goVersion": runtime.Version(),
					"platform":  runtime.GOOS + "/" + runtime.GOARCH,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "protoform version %s (%s %s/%s)\n",
				Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}
