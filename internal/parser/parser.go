// Package parser turns a free-text transaction description into a draft
// journal entry. It is a best-effort heuristic: the draft must pass the
// entry validator before it is saved.
package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// Sentinels for legs the parser could not resolve.
const (
	UnknownDebit  = "Unknown Debit"
	UnknownCredit = "Unknown Credit"
)

// Intent is the kind of transaction a prompt describes.
type Intent string

const (
	IntentIncome   Intent = "income"
	IntentExpense  Intent = "expense"
	IntentTransfer Intent = "transfer"
	IntentUnknown  Intent = "unknown"
)

var (
	amountRe   = regexp.MustCompile(`\$?\s*(\d[\d,]*(?:\.\d{1,2})?)`)
	incomeRe   = regexp.MustCompile(`(?i)\b(received|receive|sold|sales?|revenue|income|deposit(ed)?|customers?|clients?|collections?|invoice (from|to))\b`)
	expenseRe  = regexp.MustCompile(`(?i)\b(paid|pay|spent|bought|purchased?|bills?|invoice|expenses?|suppliers?|vendors?|rent|salary|salaries|utility|utilities)\b`)
	transferRe = regexp.MustCompile(`(?i)\b(transfer(red)?|moved)\b|\bfrom\b.*\bto\b|\bto\b.*\bfrom\b|\bdeposit\b.*\binto\b|\bwithdr[ae]w\b.*\bfrom\b`)
)

// DetectIntent classifies the prompt. Income wins over expense, expense
// over transfer.
func DetectIntent(prompt string) Intent {
	switch {
	case incomeRe.MatchString(prompt):
		return IntentIncome
	case expenseRe.MatchString(prompt):
		return IntentExpense
	case transferRe.MatchString(prompt):
		return IntentTransfer
	default:
		return IntentUnknown
	}
}

// ExtractAmount returns the largest number in the prompt, or zero.
func ExtractAmount(prompt string) decimal.Decimal {
	best := decimal.Zero
	for _, m := range amountRe.FindAllStringSubmatch(prompt, -1) {
		v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if v.GreaterThan(best) {
			best = v
		}
	}
	return best
}

// Parser resolves prompts against a fixed chart of accounts.
type Parser struct {
	accounts []model.Account
}

// New returns a parser over accounts. Earlier accounts win ties.
func New(accounts []model.Account) *Parser {
	return &Parser{accounts: accounts}
}

// Parse is New(accounts).Parse(prompt).
func Parse(prompt string, accounts []model.Account) model.DraftEntry {
	return New(accounts).Parse(prompt)
}

// Parse never fails: unresolved legs come back as UnknownDebit and
// UnknownCredit, and a missing amount as zero.
func (p *Parser) Parse(prompt string) model.DraftEntry {
	prompt = strings.TrimSpace(prompt)
	draft := model.DraftEntry{
		Description:   prompt,
		DebitAccount:  UnknownDebit,
		CreditAccount: UnknownCredit,
		Amount:        ExtractAmount(prompt),
	}
	if prompt == "" || len(p.accounts) == 0 {
		return draft
	}

	words := tokenize(prompt)
	lower := strings.ToLower(prompt)

	var debit, credit *model.Account
	switch DetectIntent(prompt) {
	case IntentIncome:
		debit = p.first(
			p.best(words, lower, model.Account.IsCashOrBank),
			p.best(words, lower, isReceivable),
			p.find(model.Account.IsCashOrBank),
			p.find(isReceivable),
		)
		credit = p.best(words, lower, isRevenue)
	case IntentExpense:
		debit = p.first(
			p.best(words, lower, isExpense),
			p.best(words, lower, isExpenseLike),
		)
		credit = p.first(
			p.best(words, lower, isPayable),
			p.best(words, lower, model.Account.IsCashOrBank),
			p.find(model.Account.IsCashOrBank),
			p.find(isPayable),
		)
	case IntentTransfer:
		debit, credit = p.transfer(words, lower)
	}

	if debit == nil || credit == nil {
		for _, a := range p.mentioned(lower) {
			if a == debit || a == credit {
				continue
			}
			if debit == nil {
				debit = a
			} else if credit == nil {
				credit = a
			}
		}
	}

	if debit != nil {
		draft.DebitAccount = debit.Name
	}
	if credit != nil {
		draft.CreditAccount = credit.Name
	}
	return draft
}

// transfer pairs the two longest mentioned accounts. With a single
// mention the other leg is the first cash or bank account; "to" makes the
// mention the receiving side.
func (p *Parser) transfer(words map[string]bool, lower string) (debit, credit *model.Account) {
	mentioned := p.mentioned(lower)
	switch {
	case len(mentioned) >= 2:
		return mentioned[0], mentioned[1]
	case len(mentioned) == 1:
		cash := p.find(model.Account.IsCashOrBank)
		if cash == nil || cash.Name == mentioned[0].Name {
			return nil, nil
		}
		if words["to"] {
			return mentioned[0], cash
		}
		return cash, mentioned[0]
	}
	return nil, nil
}

// best returns the highest scoring account accepted by keep, or nil when
// nothing scores.
func (p *Parser) best(words map[string]bool, lower string, keep func(model.Account) bool) *model.Account {
	var found *model.Account
	top := 0
	for i := range p.accounts {
		a := &p.accounts[i]
		if !keep(*a) {
			continue
		}
		if s := score(words, lower, a.Name); s > top {
			top, found = s, a
		}
	}
	return found
}

func (p *Parser) find(keep func(model.Account) bool) *model.Account {
	for i := range p.accounts {
		if keep(p.accounts[i]) {
			return &p.accounts[i]
		}
	}
	return nil
}

// mentioned returns accounts whose full name appears in the prompt,
// longest name first.
func (p *Parser) mentioned(lower string) []*model.Account {
	var out []*model.Account
	for i := range p.accounts {
		if strings.Contains(lower, strings.ToLower(p.accounts[i].Name)) {
			out = append(out, &p.accounts[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Name) > len(out[j].Name) })
	return out
}

func (p *Parser) first(candidates ...*model.Account) *model.Account {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// stopwords never count towards a partial name match.
var stopwords = map[string]bool{
	"account": true, "accounts": true, "expense": true, "expenses": true,
	"income": true, "revenue": true, "cost": true, "and": true, "the": true,
	"for": true, "from": true, "other": true,
}

// score rates how well name matches the prompt. A name contained in full
// scores 1000 plus its length, so longer full matches win. Otherwise each
// significant word of the name found as a prompt word adds its length.
func score(words map[string]bool, lower, name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0
	}
	if strings.Contains(lower, name) {
		return 1000 + len(name)
	}
	s := 0
	for w := range tokenize(name) {
		if len(w) >= 3 && !stopwords[w] && words[w] {
			s += len(w)
		}
	}
	return s
}

func tokenize(s string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		out[f] = true
	}
	return out
}

func isReceivable(a model.Account) bool {
	return a.Category == model.CategoryAsset && a.NameContains("receivable")
}

func isPayable(a model.Account) bool {
	return a.Category == model.CategoryLiability && a.NameContains("payable")
}

func isRevenue(a model.Account) bool {
	return a.Category == model.CategoryRevenue
}

func isExpense(a model.Account) bool {
	return a.Category == model.CategoryExpense
}

func isExpenseLike(a model.Account) bool {
	return isExpense(a) || a.SubCategoryContains("expense")
}
