package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/render"
	"github.com/cleared-dev/ledgerview/internal/shariah"
	"github.com/cleared-dev/ledgerview/internal/totals"
)

func newShariahCommand() *cobra.Command {
	var year, standard string
	var list bool

	cmd := &cobra.Command{
		Use:   "shariah",
		Short: "Screen the books against a Shariah standard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runShariahList(cmd.OutOrStdout())
			}
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			if standard == "" {
				standard = b.cfg.Shariah.Standard
			}
			fy, entries, err := b.entries(year)
			if err != nil {
				return err
			}
			s, err := shariah.Screen(standard, totals.Aggregate(entries))
			if err != nil {
				return fmt.Errorf("%w (have %s)", err, strings.Join(shariah.Keys(), ", "))
			}
			return runShariah(cmd.OutOrStdout(), fy, s)
		},
	}

	addYearFlag(cmd, &year)
	cmd.Flags().StringVar(&standard, "standard", "", "standard key (default from config)")
	cmd.Flags().BoolVar(&list, "list", false, "list the available standards")

	return cmd
}

func runShariahList(out io.Writer) error {
	tbl := render.NewTable(out, "Key", "Standard", "Criteria")
	for _, s := range shariah.Standards() {
		tbl.Row(s.Key, s.Name, fmt.Sprint(len(s.Criteria)))
	}
	return tbl.Flush()
}

func runShariah(out io.Writer, fy string, s shariah.Screening) error {
	std := s.Standard
	render.Heading(out, fmt.Sprintf("%s, %s", std.Name, yearLabel(fy)))
	fmt.Fprintf(out, "Reference: %s (%s)\n", std.ReferenceName, std.ReferenceURL)

	if len(std.BusinessActivityRules) > 0 {
		fmt.Fprintln(out, "\nBusiness activity rules:")
		for _, r := range std.BusinessActivityRules {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}

	fmt.Fprintln(out)
	tbl := render.NewTable(out, "Criterion", "Value", "Threshold", "Result")
	for _, r := range s.Results {
		value := "n/a"
		if r.Value.Valid {
			value = r.Value.Decimal.StringFixed(2) + "%"
		}
		result := "FAIL"
		if r.Pass {
			result = "PASS"
		}
		tbl.Row(r.Name, value, r.Threshold, result)
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	verdict := "Not compliant"
	if s.Compliant() {
		verdict = "Compliant"
	}
	fmt.Fprintf(out, "\n%s: %d of %d criteria passed (%d%%)\n", verdict, s.Passed, len(s.Results), s.Compliance)
	if std.Notes != "" {
		fmt.Fprintf(out, "Note: %s\n", std.Notes)
	}
	return nil
}
