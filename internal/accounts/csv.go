package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

const (
	numFields      = 10
	colID          = 0
	colName        = 1
	colType        = 2
	colCategory    = 3
	colSubCategory = 4
	colStatement   = 5
	colCashFlow    = 6
	colBalance     = 7
	colYearly      = 8
	colDesc        = 9
)

// Header is the chart-of-accounts.csv header row.
var Header = []string{
	"account_id", "account_name", "account_type", "category", "sub_category",
	"financial_statement", "cash_flow_section", "balance", "yearly_balances", "description",
}

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(acct.ID)
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colCategory] = string(acct.Category)
	row[colSubCategory] = acct.SubCategory
	row[colStatement] = string(acct.FinancialStatement)
	row[colCashFlow] = string(acct.CashFlowSection)
	if !acct.Balance.IsZero() {
		row[colBalance] = acct.Balance.StringFixed(2)
	}
	row[colYearly] = marshalYearly(acct.YearlyBalances)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing account_id %q: %w", record[colID], err)
	}

	acctType := model.AccountType(strings.ToLower(record[colType]))
	if acctType != model.AccountTypeDebit && acctType != model.AccountTypeCredit {
		return model.Account{}, fmt.Errorf("account %d: account_type must be debit or credit, got %q", id, record[colType])
	}

	balance := decimal.Zero
	if record[colBalance] != "" {
		balance, err = decimal.NewFromString(record[colBalance])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
		}
	}

	yearly, err := unmarshalYearly(record[colYearly])
	if err != nil {
		return model.Account{}, fmt.Errorf("account %d: %w", id, err)
	}

	return model.Account{
		ID:                 id,
		Name:               record[colName],
		Type:               acctType,
		Category:           model.Category(record[colCategory]),
		SubCategory:        record[colSubCategory],
		FinancialStatement: model.FinancialStatement(record[colStatement]),
		CashFlowSection:    model.CashFlowSection(record[colCashFlow]),
		Balance:            balance,
		YearlyBalances:     yearly,
		Description:        record[colDesc],
	}, nil
}

// Yearly balances are stored in one cell as "FY2024=100.00;FY2025=250.00".
func marshalYearly(balances []model.YearlyBalance) string {
	parts := make([]string, len(balances))
	for i, b := range balances {
		parts[i] = b.FinancialYear + "=" + b.Balance.StringFixed(2)
	}
	return strings.Join(parts, ";")
}

func unmarshalYearly(cell string) ([]model.YearlyBalance, error) {
	if cell == "" {
		return nil, nil
	}
	var out []model.YearlyBalance
	for _, part := range strings.Split(cell, ";") {
		year, amount, ok := strings.Cut(part, "=")
		if !ok || year == "" {
			return nil, fmt.Errorf("invalid yearly balance %q", part)
		}
		bal, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parsing yearly balance %q: %w", part, err)
		}
		out = append(out, model.YearlyBalance{FinancialYear: year, Balance: bal})
	}
	return out, nil
}
