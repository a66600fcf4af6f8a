package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/analysis"
	"github.com/cleared-dev/ledgerview/internal/id"
	"github.com/cleared-dev/ledgerview/internal/journal"
	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/parser"
	"github.com/cleared-dev/ledgerview/internal/render"
)

func newEntryCommand() *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Record and list journal entries",
	}
	entryCmd.AddCommand(newEntryAddCommand(), newEntryParseCommand(), newEntryListCommand())
	return entryCmd
}

func newEntryAddCommand() *cobra.Command {
	var date, description, debit, credit, amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}

			amt := decimal.Zero
			if amount != "" {
				amt, err = decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("%w: %s", journal.ErrInvalidEntry, journal.MsgAmountPositive)
				}
			}
			draft := model.DraftEntry{Description: description, DebitAccount: debit, CreditAccount: credit, Amount: amt}
			return saveDraft(cmd.OutOrStdout(), b, draft, date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&debit, "debit", "", "debit account name")
	cmd.Flags().StringVar(&credit, "credit", "", "credit account name")
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount")

	return cmd
}

func newEntryParseCommand() *cobra.Command {
	var save bool
	var date string

	cmd := &cobra.Command{
		Use:   "parse <prompt>",
		Short: "Draft an entry from a plain-language description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			return runEntryParse(cmd.OutOrStdout(), b, strings.Join(args, " "), save, date)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "record the draft when it is valid")
	cmd.Flags().StringVar(&date, "date", "", "entry date YYYY-MM-DD when saving (default today)")

	return cmd
}

func runEntryParse(out io.Writer, b *books, prompt string, save bool, date string) error {
	draft := parser.Parse(prompt, b.accounts.All())
	verdict := journal.ValidateDraft(draft, b.accounts.Names())

	fmt.Fprintf(out, "Intent:      %s\n", parser.DetectIntent(prompt))
	fmt.Fprintf(out, "Description: %s\n", draft.Description)
	fmt.Fprintf(out, "Debit:       %s\n", draft.DebitAccount)
	fmt.Fprintf(out, "Credit:      %s\n", draft.CreditAccount)
	fmt.Fprintf(out, "Amount:      %s\n", b.format.Number(draft.Amount))
	fmt.Fprintf(out, "Validation:  %s\n", verdict.Message)

	if !save {
		return nil
	}
	if !verdict.Valid {
		return fmt.Errorf("%w: %s", journal.ErrInvalidEntry, verdict.Message)
	}
	return saveDraft(out, b, draft, date)
}

// saveDraft records draft and reports the refreshed health score of its
// financial year.
func saveDraft(out io.Writer, b *books, draft model.DraftEntry, date string) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	fy, err := id.FinancialYear(d, b.cfg.Fiscal.YearStart)
	if err != nil {
		return err
	}

	rc := analysis.NewRecomputer(b.journal.Entries)
	var refreshErr error
	b.journal.Subscribe(func(financialYear string) {
		refreshErr = rc.Refresh(financialYear)
	})

	entryID, err := b.journal.AddEntry(journal.AddEntryParams{Date: d, FinancialYear: fy, Draft: draft})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Recorded %s\n", entryID)

	if refreshErr != nil {
		return errors.Join(errors.New("entry recorded but analysis failed"), refreshErr)
	}
	snap := rc.Latest()
	fmt.Fprintf(out, "Health score for %s: %d (%s)\n", snap.FinancialYear, snap.HealthScore, snap.Status)
	return nil
}

func newEntryListCommand() *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
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
			return runEntryList(cmd.OutOrStdout(), b, fy, entries)
		},
	}

	addYearFlag(cmd, &year)

	return cmd
}

func runEntryList(out io.Writer, b *books, fy string, entries []model.JournalEntry) error {
	if len(entries) == 0 {
		fmt.Fprintf(out, "No entries for %s.\n", yearLabel(fy))
		return nil
	}

	tbl := render.NewTable(out, "ID", "Date", "Description", "Debit", "Credit", "Amount")
	total := decimal.Zero
	for _, e := range entries {
		tbl.Row(e.ID, e.Date.Format(dateLayout), e.Description, e.DebitAccount.Name, e.CreditAccount.Name,
			b.format.Number(e.Amount))
		total = total.Add(e.Amount)
	}
	tbl.Row("", "", "", "", "Total", b.format.Number(total))
	return tbl.Flush()
}
