package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/render"
	"github.com/cleared-dev/ledgerview/internal/statements"
)

func newStatementCommand() *cobra.Command {
	var year string

	stmtCmd := &cobra.Command{
		Use:   "statement",
		Short: "Financial statements, trial balance and ledgers",
	}
	stmtCmd.PersistentFlags().StringVar(&year, "year", "", `financial year label, e.g. FY2024-25, or "all"`)

	builders := []struct {
		use, short string
		run        func(out io.Writer, b *books, fy string, entries []model.JournalEntry) error
	}{
		{"balance-sheet", "Statement of financial position", runBalanceSheet},
		{"income", "Income statement", runIncomeStatement},
		{"cash-flow", "Cash flow statement", runCashFlow},
		{"equity", "Statement of changes in equity", runEquityStatement},
		{"comprehensive", "Statement of comprehensive income", runComprehensiveIncome},
		{"trial-balance", "Trial balance of every account", runTrialBalance},
	}
	for _, sb := range builders {
		run := sb.run
		stmtCmd.AddCommand(&cobra.Command{
			Use:   sb.use,
			Short: sb.short,
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
				return run(cmd.OutOrStdout(), b, fy, entries)
			},
		})
	}
	stmtCmd.AddCommand(newLedgerCommand(&year))

	return stmtCmd
}

func newLedgerCommand(year *string) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "T-account ledgers with running balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			var cat model.Category
			if category != "" {
				if cat, err = parseCategory(category); err != nil {
					return err
				}
			}
			fy, entries, err := b.entries(*year)
			if err != nil {
				return err
			}
			return runLedgers(cmd.OutOrStdout(), b, fy, entries, cat)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show one category")

	return cmd
}

// writeGroup renders a group's lines and total. Empty groups print nothing.
func writeGroup(tbl *render.Table, f render.Formatter, g statements.Group) {
	if g.Empty() {
		return
	}
	tbl.Row(g.Name, "")
	for _, l := range g.Lines {
		tbl.Row("  "+l.Name, f.Money(l.Amount))
	}
	tbl.Row("  Total "+g.Name, f.Money(g.Total))
}

func balancedLabel(ok bool) string {
	if ok {
		return "Balanced"
	}
	return "NOT BALANCED"
}

func runBalanceSheet(out io.Writer, b *books, fy string, entries []model.JournalEntry) error {
	bs := statements.NewBalanceSheet(entries)
	f := b.format
	render.Heading(out, "Balance Sheet, "+yearLabel(fy))

	tbl := render.NewTable(out)
	for _, g := range []statements.Group{bs.CurrentAssets, bs.NonCurrentAssets, bs.ContraAssets} {
		writeGroup(tbl, f, g)
	}
	for _, g := range bs.Other {
		writeGroup(tbl, f, g)
	}
	tbl.Row("Total Assets", f.Money(bs.TotalAssets))
	tbl.Row("", "")
	for _, g := range []statements.Group{bs.CurrentLiabilities, bs.NonCurrentLiabilities, bs.ContraLiabilities} {
		writeGroup(tbl, f, g)
	}
	tbl.Row("Total Liabilities", f.Money(bs.TotalLiabilities))
	tbl.Row("", "")
	writeGroup(tbl, f, bs.Equity)
	tbl.Row("Total Equity", f.Money(bs.TotalEquity))
	tbl.Row("Total Liabilities and Equity", f.Money(bs.TotalLiabilitiesAndEquity))
	if err := tbl.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, balancedLabel(bs.Balanced))
	return nil
}

func runIncomeStatement(out io.Writer, b *books, fy string, entries []model.JournalEntry) error {
	is := statements.NewIncomeStatement(entries)
	f := b.format
	render.Heading(out, "Income Statement, "+yearLabel(fy))

	tbl := render.NewTable(out)
	for _, g := range is.Groups {
		writeGroup(tbl, f, g)
	}
	tbl.Row("", "")
	for _, line := range []statements.Line{
		{Name: "Net Revenue", Amount: is.NetRevenue},
		{Name: "Gross Profit", Amount: is.GrossProfit},
		{Name: "EBITDA", Amount: is.EBITDA},
		{Name: "EBIT", Amount: is.EBIT},
		{Name: "Income Before Tax", Amount: is.IncomeBeforeTax},
		{Name: "Net Income", Amount: is.NetIncome},
	} {
		tbl.Row(line.Name, f.Money(line.Amount))
	}
	return tbl.Flush()
}

func runCashFlow(out io.Writer, b *books, fy string, entries []model.JournalEntry) error {
	cf := statements.NewCashFlow(entries)
	f := b.format
	render.Heading(out, "Cash Flow Statement, "+yearLabel(fy))

	tbl := render.NewTable(out)
	for _, g := range []statements.Group{cf.Operating, cf.Investing, cf.Financing} {
		if g.Empty() {
			tbl.Row(g.Name, f.Money(g.Total))
			continue
		}
		writeGroup(tbl, f, g)
	}
	tbl.Row("Net Change in Cash", f.Money(cf.NetChangeInCash))
	return tbl.Flush()
}

func runEquityStatement(out io.Writer, b *books, fy string, entries []model.JournalEntry) error {
	es := statements.NewEquityStatement(entries)
	f := b.format
	render.Heading(out, "Statement of Changes in Equity, "+yearLabel(fy))

	tbl := render.NewTable(out)
	for _, l := range es.Lines {
		tbl.Row(l.Name, f.Money(l.Amount))
	}
	tbl.Row("Total Equity", f.Money(es.Total))
	return tbl.Flush()
}

func runComprehensiveIncome(out io.Writer, b *books, fy string, entries []model.JournalEntry) error {
	ci := statements.NewComprehensiveIncome(entries)
	f := b.format
	render.Heading(out, "Statement of Comprehensive Income, "+yearLabel(fy))

	tbl := render.NewTable(out)
	tbl.Row("Net Income", f.Money(ci.NetIncome))
	writeGroup(tbl, f, ci.Revenue)
	writeGroup(tbl, f, ci.Expense)
	tbl.Row("Total Comprehensive Income", f.Money(ci.TotalComprehensiveIncome))
	return tbl.Flush()
}

func runTrialBalance(out io.Writer, b *books, fy string, entries []model.JournalEntry) error {
	tb := statements.NewTrialBalance(b.accounts.All(), entries)
	f := b.format
	render.Heading(out, "Trial Balance, "+yearLabel(fy))

	tbl := render.NewTable(out, "ID", "Account", "Debit", "Credit")
	for _, row := range tb.Active() {
		tbl.Row(fmt.Sprint(row.Account.ID), row.Account.Name, f.Number(row.Debit), f.Number(row.Credit))
	}
	tbl.Row("", "Total", f.Number(tb.TotalDebit), f.Number(tb.TotalCredit))
	if err := tbl.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, balancedLabel(tb.Balanced))
	return nil
}

func runLedgers(out io.Writer, b *books, fy string, entries []model.JournalEntry, category model.Category) error {
	ledgers := statements.FilterLedgers(statements.NewLedgers(b.accounts.All(), entries), category)
	f := b.format
	render.Heading(out, "Ledgers, "+yearLabel(fy))

	for _, l := range ledgers {
		if len(l.Lines) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%d %s\n", l.Account.ID, l.Account.Name)
		tbl := render.NewTable(out, "Date", "Entry", "Description", "Debit", "Credit", "Balance")
		for _, line := range l.Lines {
			tbl.Row(line.Date.Format(dateLayout), line.EntryID, line.Description,
				f.Number(line.Debit), f.Number(line.Credit), f.Number(line.Balance))
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Closing balance: %s %s\n", f.Number(l.Balance.Abs()), l.Side())
	}
	return nil
}
