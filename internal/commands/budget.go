package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/budget"
	"github.com/cleared-dev/ledgerview/internal/render"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

func newBudgetCommand() *cobra.Command {
	var year string
	var inflation bool
	var rate float64

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Compare the year's budget with actual results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			fy, err := b.year(year)
			if err != nil {
				return err
			}
			if fy == "" {
				return errors.New("budgets are per financial year; pass --year")
			}

			bud, err := budget.Load(budget.Path(b.dir, fy))
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("no budget for %s; create one with 'ledgerview budget set --year %s'", fy, fy)
			}
			if err != nil {
				return err
			}
			entries, err := b.journal.Entries(fy)
			if err != nil {
				return fmt.Errorf("loading entries: %w", err)
			}

			if !cmd.Flags().Changed("rate") {
				rate = b.cfg.Budget.InflationRate
			}
			opts := budget.Options{AdjustForInflation: inflation, InflationRate: decimal.NewFromFloat(rate)}
			rep := budget.Compare(*bud, totals.Aggregate(entries), opts)
			return runBudget(cmd.OutOrStdout(), b.format, fy, rep)
		},
	}

	addYearFlag(cmd, &year)
	cmd.Flags().BoolVar(&inflation, "inflation", false, "inflate revenue, COGS, operating expenses and capex budgets")
	cmd.Flags().Float64Var(&rate, "rate", 0, "inflation rate in percent (default from config)")

	cmd.AddCommand(newBudgetSetCommand())

	return cmd
}

func runBudget(out io.Writer, f render.Formatter, fy string, rep budget.Report) error {
	title := "Budget vs Actual, " + fy
	if rep.Options.AdjustForInflation && rep.Options.InflationRate.IsPositive() {
		title += fmt.Sprintf(" (inflation-adjusted at %s%%)", rep.Options.InflationRate.String())
	}
	render.Heading(out, title)

	tbl := render.NewTable(out, "Line", "Budget", "Actual", "Variance", "")
	for _, row := range rep.Rows {
		sign := "+"
		if row.Variance.IsNegative() {
			sign = "-"
		}
		status := "Unfavourable"
		if row.Favourable {
			status = "Favourable"
		}
		tbl.Row(row.Label, f.Whole(row.Budgeted), f.Whole(row.Actual), sign+f.Whole(row.Variance.Abs()), status)
	}
	if err := tbl.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d of %d lines favourable\n", rep.Favourable, len(rep.Rows))
	return nil
}

func newBudgetSetCommand() *cobra.Command {
	var year string
	amounts := map[string]*string{}
	flags := []struct{ name, usage string }{
		{"revenue", "budgeted revenue"},
		{"cogs", "budgeted cost of goods sold"},
		{"operating-expenses", "budgeted operating expenses"},
		{"net-income", "budgeted net income"},
		{"capex", "budgeted capital expenditure"},
		{"cash-inflows", "budgeted cash inflows"},
		{"cash-outflows", "budgeted cash outflows"},
	}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a year's budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			fy, err := b.year(year)
			if err != nil {
				return err
			}
			if fy == "" {
				return errors.New("budgets are per financial year; pass --year")
			}

			path := budget.Path(b.dir, fy)
			bud, err := budget.Load(path)
			if errors.Is(err, fs.ErrNotExist) {
				bud, err = &budget.Budget{FinancialYear: fy}, nil
			}
			if err != nil {
				return err
			}

			targets := map[string]*decimal.Decimal{
				"revenue":            &bud.Revenue,
				"cogs":               &bud.COGS,
				"operating-expenses": &bud.OperatingExpenses,
				"net-income":         &bud.NetIncome,
				"capex":              &bud.Capex,
				"cash-inflows":       &bud.CashInflows,
				"cash-outflows":      &bud.CashOutflows,
			}
			for name, raw := range amounts {
				if !cmd.Flags().Changed(name) {
					continue
				}
				v, err := decimal.NewFromString(*raw)
				if err != nil {
					return fmt.Errorf("parsing --%s %q: %w", name, *raw, err)
				}
				*targets[name] = v
			}

			if err := budget.Save(path, bud); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved budget for %s\n", fy)
			return nil
		},
	}

	addYearFlag(cmd, &year)
	for _, fl := range flags {
		amounts[fl.name] = cmd.Flags().String(fl.name, "0", fl.usage)
	}

	return cmd
}
