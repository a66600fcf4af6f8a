package journal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/id"
	"github.com/cleared-dev/ledgerview/internal/model"
)

// Messages returned by ValidateDraft.
const (
	MsgRequired       = "All fields (description, debit account, credit account, amount) are required."
	MsgAmountPositive = "Amount must be a positive number."
	MsgInvalidDebit   = "Invalid debit account."
	MsgInvalidCredit  = "Invalid credit account."
	MsgSameAccount    = "Debit and credit accounts must be different."
	MsgValid          = "Entry is valid."
)

// Result is the verdict of ValidateDraft.
type Result struct {
	Valid   bool
	Message string
}

// ValidateDraft is the gate between a draft (parsed or typed) and storage.
// Account names must match knownAccounts exactly.
func ValidateDraft(draft model.DraftEntry, knownAccounts []string) Result {
	if strings.TrimSpace(draft.Description) == "" || draft.DebitAccount == "" ||
		draft.CreditAccount == "" || draft.Amount.IsZero() {
		return Result{Message: MsgRequired}
	}
	if !draft.Amount.IsPositive() {
		return Result{Message: MsgAmountPositive}
	}

	known := make(map[string]bool, len(knownAccounts))
	for _, name := range knownAccounts {
		known[name] = true
	}
	if !known[draft.DebitAccount] {
		return Result{Message: MsgInvalidDebit}
	}
	if !known[draft.CreditAccount] {
		return Result{Message: MsgInvalidCredit}
	}
	if draft.DebitAccount == draft.CreditAccount {
		return Result{Message: MsgSameAccount}
	}
	return Result{Valid: true, Message: MsgValid}
}

// ValidationError describes a single storage invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id int) bool
}

// ValidateRows enforces 6 invariants on the rows of one financial year file.
func ValidateRows(rows []Row, accounts AccountChecker, financialYear string) []ValidationError {
	var errs []ValidationError
	hundred := decimal.NewFromInt(100)

	for _, row := range rows {
		// Invariant 1: Amount is positive.
		if !row.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     row.EntryID,
				Description: fmt.Sprintf("amount %s is not positive", row.Amount),
			})
		}

		// Invariant 2: Two distinct legs.
		if row.DebitAccountID == row.CreditAccountID {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     row.EntryID,
				Description: fmt.Sprintf("debit and credit both post to account %d", row.DebitAccountID),
			})
		}

		// Invariant 3: Valid account references.
		for _, acct := range []int{row.DebitAccountID, row.CreditAccountID} {
			if !accounts.Exists(acct) {
				errs = append(errs, ValidationError{
					Invariant:   3,
					EntryID:     row.EntryID,
					Description: fmt.Sprintf("unknown account %d", acct),
				})
			}
		}

		// Invariant 4: Row belongs to this file's financial year.
		if row.FinancialYear != financialYear {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     row.EntryID,
				Description: fmt.Sprintf("financial year %q not %q", row.FinancialYear, financialYear),
			})
		}

		// Invariant 6: Exact decimals, no more than 2 decimal places.
		if !row.Amount.Mul(hundred).Equal(row.Amount.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				EntryID:     row.EntryID,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", row.Amount),
			})
		}
	}

	// Invariant 5: Unique sequential IDs, contiguous 1..N.
	seqSeen := make(map[int]bool)
	for _, row := range rows {
		year, seq, err := id.ParseEntryID(row.EntryID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     row.EntryID,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		if year != row.FinancialYear {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     row.EntryID,
				Description: fmt.Sprintf("entry ID prefix %q does not match financial year %q", year, row.FinancialYear),
			})
		}
		if seqSeen[seq] {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     row.EntryID,
				Description: fmt.Sprintf("duplicate sequence %d", seq),
			})
		}
		seqSeen[seq] = true
	}
	for i := 1; i <= len(seqSeen); i++ {
		if !seqSeen[i] {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     fmt.Sprintf("seq %d", i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
			})
		}
	}

	return errs
}
