package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/turtacn/MacBench/internal/application/advisor"
	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/domain/view"
	"github.com/turtacn/MacBench/internal/i18n"
	"github.com/turtacn/MacBench/pkg/errors"
)

// viewFlags mirrors the URL view parameters as command flags.
type viewFlags struct {
	search    string
	devType   string
	family    string
	os        string
	sort      string
	dir       string
	scenario  string
	reference bool
	compare   []string
	query     string
}

func (f *viewFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.search, "search", "s", "", "free-text search over name, chip and description")
	fs.StringVar(&f.devType, "type", view.All, "device type: All|laptop|desktop|tablet")
	fs.StringVar(&f.family, "family", view.All, "chip family: All|M1|M2|M3|M4|M5|Intel")
	fs.StringVar(&f.os, "os", view.All, "operating system: All|macOS|iPadOS")
	fs.StringVar(&f.sort, "sort", string(view.DefaultSort), "sort key: score|value|price|name|year|single|cpu|gpu|memory")
	fs.StringVar(&f.dir, "dir", string(view.DefaultDirection), "sort direction: asc|desc")
	fs.StringVar(&f.scenario, "scenario", string(machine.DefaultScenario), "scenario: balanced|developer|creative|daily")
	fs.BoolVar(&f.reference, "reference", false, "include reference CPUs and GPUs")
	fs.StringSliceVar(&f.compare, "compare", nil, "machine ids selected for comparison (at most two)")
	fs.StringVar(&f.query, "query", "", "view query string (as in a shared link); other view flags are ignored")
}

// state builds the view state.  Invalid values fall back to defaults the
// same way a shared link does.
func (f *viewFlags) state() view.State {
	if f.query != "" {
		q := f.query
		if i := strings.Index(q, "?"); i >= 0 {
			q = q[i+1:]
		}
		return view.ParseQueryString(q)
	}
	return view.State{
		Search:        f.search,
		Type:          f.devType,
		Family:        f.family,
		OS:            f.os,
		Sort:          view.SortKey(strings.ToLower(f.sort)),
		Dir:           view.Direction(strings.ToLower(f.dir)),
		Scenario:      machine.Scenario(f.scenario),
		ShowReference: f.reference,
		Compare:       f.compare,
	}.Normalize()
}

// ─────────────────────────────────────────────────────────────────────────────
// list
// ─────────────────────────────────────────────────────────────────────────────

func newListCmd() *cobra.Command {
	flags := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List machines filtered and sorted by the view flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := cliCtx.operationContext(cmd.Context())
			defer cancel()

			result, err := cliCtx.Services.Catalog.List(ctx, flags.state())
			if err != nil {
				return err
			}
			return PrintResult(cmd, result, func(w io.Writer, table bool) error {
				return renderList(w, cliCtx.Printer, result, table)
			})
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func rowCells(r catalog.Row) []string {
	return []string{
		r.ID,
		r.Name,
		r.Chip,
		strconv.Itoa(r.Year),
		formatInt(r.Score),
		string(r.Tier),
		formatInt(r.Value),
		formatUSD(r.Price),
	}
}

func renderList(w io.Writer, p *i18n.Printer, result *catalog.ListResult, table bool) error {
	headers := []string{
		"ID",
		p.T(i18n.KeyColName),
		p.T(i18n.KeyColChip),
		p.T(i18n.KeyColYear),
		p.T(i18n.KeyColScore),
		p.T(i18n.KeyColTier),
		p.T(i18n.KeyColValue),
		p.T(i18n.KeyColPrice),
	}
	rows := make([][]string, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, rowCells(r))
	}
	if _, err := io.WriteString(w, FormatTable(headers, rows)); err != nil {
		return err
	}
	if table {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%d/%d  %s  %s %s\n",
		result.Count, result.Total,
		advisor.ScenarioLabel(p, result.State.Scenario),
		result.State.Sort, result.State.Dir)
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// show
// ─────────────────────────────────────────────────────────────────────────────

func newShowCmd() *cobra.Command {
	var scenario string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one machine with its score breakdown and price estimates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := cliCtx.operationContext(cmd.Context())
			defer cancel()

			sc, _ := machine.ParseScenario(scenario)
			detail, err := cliCtx.Services.Catalog.Get(ctx, args[0], sc)
			if err != nil {
				return err
			}
			return PrintResult(cmd, detail, func(w io.Writer, _ bool) error {
				return renderDetail(w, cliCtx.Printer, detail)
			})
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", string(machine.DefaultScenario), "scenario: balanced|developer|creative|daily")
	return cmd
}

func renderDetail(w io.Writer, p *i18n.Printer, d *catalog.Detail) error {
	m := d.Row
	b := d.Breakdown
	pairs := [][2]string{
		{p.T(i18n.KeyColName), m.Name},
		{"ID", m.ID},
		{p.T(i18n.KeyColChip), fmt.Sprintf("%s (%s CPU, %d GPU)", m.Chip, m.CPUCores, m.GPUCores)},
		{p.T(i18n.KeyColMemory), m.Memory},
		{p.T(i18n.KeyColYear), strconv.Itoa(m.Year)},
		{p.T(i18n.KeyColSingle), formatInt(m.SingleCore)},
		{p.T(i18n.KeyColMulti), formatInt(m.MultiCore)},
		{p.T(i18n.KeyColGPU), formatInt(m.Metal)},
		{p.T(i18n.KeyColScore), fmt.Sprintf("%s (%s: %.2f + %.2f + %.2f)",
			formatInt(b.Score), advisor.ScenarioLabel(p, b.Scenario), b.Single, b.Multi, b.GPU)},
		{p.T(i18n.KeyColTier), string(b.Tier)},
		{p.T(i18n.KeyColValue), formatInt(b.Value)},
		{p.T(i18n.KeyColPrice), formatUSD(m.Price)},
	}
	if m.EffectivePrice() != m.Price {
		pairs = append(pairs, [2]string{p.T(i18n.KeyColPrice) + " *", formatUSD(m.EffectivePrice())})
	}
	if !m.IsReference {
		pairs = append(pairs,
			[2]string{p.T(i18n.KeyEstimateTradeIn), formatUSD(d.Estimates.TradeIn)},
			[2]string{p.T(i18n.KeyEstimateRefurbished), formatUSD(d.Estimates.Refurbished)},
		)
	}
	if _, err := io.WriteString(w, formatPairs(pairs)); err != nil {
		return err
	}
	if m.Description != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", m.Description)
		return err
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// compare
// ─────────────────────────────────────────────────────────────────────────────

func newCompareCmd() *cobra.Command {
	var scenario string
	cmd := &cobra.Command{
		Use:   "compare <id> <id>",
		Short: "Compare two machines metric by metric",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := cliCtx.operationContext(cmd.Context())
			defer cancel()

			sc, _ := machine.ParseScenario(scenario)
			cmp, err := cliCtx.Services.Catalog.Compare(ctx, args, sc)
			if err != nil {
				return err
			}
			return PrintResult(cmd, cmp, func(w io.Writer, _ bool) error {
				return renderComparison(w, cliCtx.Printer, cmp)
			})
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", string(machine.DefaultScenario), "scenario: balanced|developer|creative|daily")
	return cmd
}

var metricLabels = map[string]i18n.Key{
	catalog.MetricScore:  i18n.KeyColScore,
	catalog.MetricSingle: i18n.KeyColSingle,
	catalog.MetricMulti:  i18n.KeyColMulti,
	catalog.MetricGPU:    i18n.KeyColGPU,
	catalog.MetricValue:  i18n.KeyColValue,
	catalog.MetricMemory: i18n.KeyColMemory,
	catalog.MetricPrice:  i18n.KeyColPrice,
}

func formatMetric(metric string, v float64) string {
	switch metric {
	case catalog.MetricPrice:
		return formatUSD(v)
	case catalog.MetricMemory:
		return strconv.FormatFloat(v, 'f', -1, 64) + "GB"
	default:
		return formatInt(int(v))
	}
}

func renderComparison(w io.Writer, p *i18n.Printer, cmp *catalog.Comparison) error {
	headers := []string{"", cmp.Left.Name, cmp.Right.Name, p.T(i18n.KeyCompareWinner), "Δ"}
	rows := make([][]string, 0, len(cmp.Metrics))
	for _, md := range cmp.Metrics {
		label := md.Metric
		if key, ok := metricLabels[md.Metric]; ok {
			label = p.T(key)
		}
		winner := p.T(i18n.KeyCompareTie)
		switch md.Winner {
		case catalog.SideLeft:
			winner = cmp.Left.Name
		case catalog.SideRight:
			winner = cmp.Right.Name
		}
		rows = append(rows, []string{
			label,
			formatMetric(md.Metric, md.Left),
			formatMetric(md.Metric, md.Right),
			winner,
			fmt.Sprintf("%+.1f%%", md.DeltaPct),
		})
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", advisor.ScenarioLabel(p, cmp.Scenario)); err != nil {
		return err
	}
	_, err := io.WriteString(w, FormatTable(headers, rows))
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// estimate
// ─────────────────────────────────────────────────────────────────────────────

func newEstimateCmd() *cobra.Command {
	var (
		price float64
		year  int
	)
	cmd := &cobra.Command{
		Use:   "estimate [id]",
		Short: "Estimate trade-in and refurbished prices",
		Long: "Estimate trade-in and refurbished prices either for a catalog machine\n" +
			"(by id) or for an arbitrary --price and --year.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := cliCtx.operationContext(cmd.Context())
			defer cancel()

			svc := cliCtx.Services.Catalog
			req := &catalog.EstimateRequest{Price: price, Year: year}
			if len(args) == 1 {
				detail, err := svc.Get(ctx, args[0], machine.DefaultScenario)
				if err != nil {
					return err
				}
				req = &catalog.EstimateRequest{Price: detail.Row.Price, Year: detail.Row.Year}
			} else if !cmd.Flags().Changed("price") || !cmd.Flags().Changed("year") {
				return errors.New(errors.ErrCodeEstimateInputError, "either a machine id or both --price and --year are required")
			}

			result, err := svc.Estimate(req)
			if err != nil {
				return err
			}
			return PrintResult(cmd, result, func(w io.Writer, _ bool) error {
				p := cliCtx.Printer
				_, err := io.WriteString(w, formatPairs([][2]string{
					{p.T(i18n.KeyColPrice), formatUSD(result.Price)},
					{p.T(i18n.KeyColYear), fmt.Sprintf("%d (%d)", result.Year, result.CurrentYear)},
					{p.T(i18n.KeyEstimateTradeIn), formatUSD(result.TradeIn)},
					{p.T(i18n.KeyEstimateRefurbished), formatUSD(result.Refurbished)},
				}))
				return err
			})
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "purchase price in USD")
	cmd.Flags().IntVar(&year, "year", 0, "release year")
	return cmd
}

// ─────────────────────────────────────────────────────────────────────────────
// scenarios
// ─────────────────────────────────────────────────────────────────────────────

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List scoring scenarios and their weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			scenarios := cliCtx.Services.Catalog.Scenarios()
			return PrintResult(cmd, scenarios, func(w io.Writer, _ bool) error {
				p := cliCtx.Printer
				rows := make([][]string, 0, len(scenarios))
				for _, s := range scenarios {
					mark := ""
					if s.Default {
						mark = "*"
					}
					rows = append(rows, []string{
						string(s.Name),
						advisor.ScenarioLabel(p, s.Name),
						fmt.Sprintf("%d%%", s.Weights.Single),
						fmt.Sprintf("%d%%", s.Weights.Multi),
						fmt.Sprintf("%d%%", s.Weights.GPU),
						mark,
					})
				}
				headers := []string{"ID", "", p.T(i18n.KeyColSingle), p.T(i18n.KeyColMulti), p.T(i18n.KeyColGPU), ""}
				_, err := io.WriteString(w, FormatTable(headers, rows))
				return err
			})
		},
	}
}

//Personal.AI order the ending
