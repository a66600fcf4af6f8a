package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/analysis"
	"github.com/cleared-dev/ledgerview/internal/ratios"
	"github.com/cleared-dev/ledgerview/internal/render"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Totals, ratios and health score",
	}
	reportCmd.AddCommand(newReportSummaryCommand(), newReportRatiosCommand())
	return reportCmd
}

func newReportSummaryCommand() *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show key totals and the health score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			fy, entries, err := b.entries(year)
			if err != nil {
				return err
			}
			return runReportSummary(cmd.OutOrStdout(), b.format, analysis.Compute(fy, entries))
		},
	}

	addYearFlag(cmd, &year)

	return cmd
}

func runReportSummary(out io.Writer, f render.Formatter, s analysis.Snapshot) error {
	t := s.Totals
	render.Heading(out, fmt.Sprintf("Summary for %s (%d entries)", yearLabel(s.FinancialYear), s.EntryCount))

	tbl := render.NewTable(out)
	for _, line := range []struct {
		label string
		value decimal.Decimal
	}{
		{"Total Assets", t.Assets},
		{"Total Liabilities", t.Liabilities},
		{"Total Equity", t.TotalEquity},
		{"Revenue", t.Revenue},
		{"Expenses", t.Expenses},
		{"Net Income", t.NetIncome},
		{"Other Comprehensive Income", t.OCI},
		{"Working Capital", t.WorkingCapital},
		{"Cash and Cash Equivalents", t.CashAndCashEquivalents},
		{"Cash Inflows", t.CashInflows},
		{"Cash Outflows", t.CashOutflows},
	} {
		tbl.Row(line.label, f.Money(line.value))
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	render.Heading(out, fmt.Sprintf("Health Score: %d/100 (%s)", s.HealthScore, s.Status))
	tbl = render.NewTable(out, "Dimension", "Points", "Max")
	for _, p := range s.Health.Parts() {
		tbl.Row(p.Name, strconv.Itoa(p.Points), strconv.Itoa(p.Max))
	}
	return tbl.Flush()
}

func newReportRatiosCommand() *cobra.Command {
	var year string
	var explain bool

	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Show every financial ratio by family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			fy, entries, err := b.entries(year)
			if err != nil {
				return err
			}
			return runReportRatios(cmd.OutOrStdout(), b.format, analysis.Compute(fy, entries), explain)
		},
	}

	addYearFlag(cmd, &year)
	cmd.Flags().BoolVar(&explain, "explain", false, "show each ratio's formula and meaning")

	return cmd
}

func runReportRatios(out io.Writer, f render.Formatter, s analysis.Snapshot, explain bool) error {
	render.Heading(out, "Ratios for "+yearLabel(s.FinancialYear))

	var tbl *render.Table
	family := ratios.Family("")
	for _, e := range s.Ratios.Entries() {
		if e.Family != family {
			if tbl != nil {
				if err := tbl.Flush(); err != nil {
					return err
				}
			}
			family = e.Family
			fmt.Fprintf(out, "\n%s\n", family)
			if explain {
				tbl = render.NewTable(out, "Ratio", "Value", "Formula", "Meaning")
			} else {
				tbl = render.NewTable(out, "Ratio", "Value")
			}
		}

		value := f.Ratio(e.Value, 2)
		if e.Percent {
			value = f.Percent(e.Value, 2)
		}
		if explain {
			tbl.Row(e.Title, value, e.Formula, e.Description)
		} else {
			tbl.Row(e.Title, value)
		}
	}
	if tbl == nil {
		return nil
	}
	return tbl.Flush()
}
