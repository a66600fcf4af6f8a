package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents one row of a bank statement export.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}

// IsInflow reports whether the transaction brought money into the account.
func (t BankTransaction) IsInflow() bool {
	return t.Amount.IsPositive()
}
