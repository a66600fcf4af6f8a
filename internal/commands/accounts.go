package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/render"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts with their classification tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			return runAccountsList(cmd, b, category)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list one category (asset, liability, equity, revenue, expense)")

	return cmd
}

func runAccountsList(cmd *cobra.Command, b *books, category string) error {
	list := b.accounts.All()
	if category != "" {
		cat, err := parseCategory(category)
		if err != nil {
			return err
		}
		list = b.accounts.ByCategory(cat)
	}

	tbl := render.NewTable(cmd.OutOrStdout(), "ID", "Name", "Type", "Category", "Sub-category", "Statement", "Cash Flow")
	for _, a := range list {
		tbl.Row(strconv.Itoa(a.ID), a.Name, string(a.Type), string(a.Category), a.SubCategory,
			string(a.FinancialStatement), string(a.CashFlowSection))
	}
	return tbl.Flush()
}

func parseCategory(s string) (model.Category, error) {
	for _, c := range []model.Category{model.CategoryAsset, model.CategoryLiability, model.CategoryEquity,
		model.CategoryRevenue, model.CategoryExpense} {
		if render.Title(s) == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
