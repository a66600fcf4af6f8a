package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/importer"
	"github.com/cleared-dev/ledgerview/internal/render"
)

func newImportCommand() *cobra.Command {
	var format string
	var commit bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Draft journal entries from a bank statement CSV",
		Long: "Draft journal entries from a bank statement CSV. Without a file, every CSV in\n" +
			"the books' import/ directory is processed and, with --commit, moved to\n" +
			"import/processed/ afterwards.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			runner := importer.NewRunner(importer.DefaultRegistry(), b.accounts.All(), b.journal, b.log)
			params := importer.RunParams{Format: format, YearStart: b.cfg.Fiscal.YearStart, Commit: commit}

			if len(args) == 1 {
				params.Path = args[0]
				return runImport(cmd.OutOrStdout(), b, runner, params)
			}

			files, err := importer.Scan(b.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No CSV files in import/.")
				return nil
			}
			for _, file := range files {
				params.Path = file.Path
				if err := runImport(cmd.OutOrStdout(), b, runner, params); err != nil {
					return err
				}
				if commit {
					if err := importer.MarkProcessed(b.dir, file.Name); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "export layout ("+strings.Join(importer.DefaultRegistry().Formats(), ", ")+")")
	cmd.Flags().BoolVar(&commit, "commit", false, "record every valid draft")

	return cmd
}

func runImport(out io.Writer, b *books, runner *importer.Runner, params importer.RunParams) error {
	sum, err := runner.Run(params)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Batch %s: %s\n", sum.BatchID, params.Path)
	if len(sum.Proposals) == 0 {
		fmt.Fprintln(out, "No transactions found.")
		return nil
	}

	tbl := render.NewTable(out, "Date", "Description", "Debit", "Credit", "Amount", "Status")
	for _, p := range sum.Proposals {
		status := p.Verdict.Message
		if p.EntryID != "" {
			status = "Recorded " + p.EntryID
		} else if p.Verdict.Valid {
			status = "Ready"
		}
		tbl.Row(p.Transaction.Date.Format(dateLayout), p.Draft.Description, p.Draft.DebitAccount,
			p.Draft.CreditAccount, b.format.Number(p.Draft.Amount), status)
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%d drafted, %d committed, %d skipped\n", len(sum.Proposals), sum.Committed, sum.Skipped)
	return nil
}
