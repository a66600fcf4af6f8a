package importer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerview/internal/id"
	"github.com/cleared-dev/ledgerview/internal/journal"
	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/parser"
)

// Prompt phrases a bank transaction the way a user would describe it to
// the transaction parser.
func Prompt(txn model.BankTransaction) string {
	verb := "paid"
	if txn.IsInflow() {
		verb = "received"
	}
	return fmt.Sprintf("%s %s %s", verb, txn.Description, txn.Amount.Abs().StringFixed(2))
}

// Proposal is one bank row with the entry drafted for it.
type Proposal struct {
	Transaction model.BankTransaction
	Prompt      string
	Draft       model.DraftEntry
	Verdict     journal.Result
	EntryID     string // set once committed
}

// Draft runs every transaction through p and the entry validator. The
// bank amount and description replace whatever the parser extracted.
func Draft(txns []model.BankTransaction, p *parser.Parser, accountNames []string) []Proposal {
	out := make([]Proposal, len(txns))
	for i, txn := range txns {
		prompt := Prompt(txn)
		draft := p.Parse(prompt)
		draft.Description = txn.Description
		draft.Amount = txn.Amount.Abs()
		out[i] = Proposal{
			Transaction: txn,
			Prompt:      prompt,
			Draft:       draft,
			Verdict:     journal.ValidateDraft(draft, accountNames),
		}
	}
	return out
}

// EntryAdder records journal entries.
type EntryAdder interface {
	AddEntry(params journal.AddEntryParams) (string, error)
}

// Runner imports bank files into a set of books.
type Runner struct {
	registry *Registry
	accounts []model.Account
	names    []string
	journal  EntryAdder
	log      zerolog.Logger
}

// NewRunner creates a Runner resolving against accounts and committing to j.
func NewRunner(registry *Registry, accounts []model.Account, j EntryAdder, log zerolog.Logger) *Runner {
	names := make([]string, len(accounts))
	for i, a := range accounts {
		names[i] = a.Name
	}
	return &Runner{registry: registry, accounts: accounts, names: names, journal: j, log: log}
}

// RunParams holds parameters for one import run.
type RunParams struct {
	Path      string
	Format    string
	YearStart string // "MM-DD", used to label each entry's financial year
	Commit    bool
}

// Summary reports the outcome of an import run.
type Summary struct {
	BatchID   string
	Proposals []Proposal
	Committed int
	Skipped   int
}

// Run parses the file, drafts an entry per row and, with Commit, appends
// every valid draft. Invalid drafts are skipped, never fatal.
func (r *Runner) Run(params RunParams) (*Summary, error) {
	p := r.registry.Get(params.Format)
	if p == nil {
		return nil, fmt.Errorf("unknown import format %q (have %v)", params.Format, r.registry.Formats())
	}

	f, err := os.Open(params.Path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", params.Path, err)
	}

	sum := &Summary{BatchID: uuid.NewString()}
	log := r.log.With().Str("batch_id", sum.BatchID).Str("format", p.Format()).Logger()
	log.Info().Str("file", params.Path).Int("rows", len(txns)).Msg("import started")

	sum.Proposals = Draft(txns, parser.New(r.accounts), r.names)
	for i := range sum.Proposals {
		prop := &sum.Proposals[i]
		if !prop.Verdict.Valid {
			sum.Skipped++
			log.Warn().Str("reference", prop.Transaction.Reference).Str("reason", prop.Verdict.Message).Msg("row skipped")
			continue
		}
		if !params.Commit {
			continue
		}
		entryID, err := r.commit(prop, params.YearStart)
		if errors.Is(err, journal.ErrInvalidEntry) {
			prop.Verdict = journal.Result{Valid: false, Message: err.Error()}
			sum.Skipped++
			log.Warn().Str("reference", prop.Transaction.Reference).Str("reason", err.Error()).Msg("row skipped")
			continue
		}
		if err != nil {
			return sum, fmt.Errorf("committing %s: %w", prop.Transaction.Reference, err)
		}
		prop.EntryID = entryID
		sum.Committed++
		log.Debug().Str("reference", prop.Transaction.Reference).Str("entry_id", entryID).Msg("row committed")
	}

	log.Info().Int("committed", sum.Committed).Int("skipped", sum.Skipped).Msg("import finished")
	return sum, nil
}

func (r *Runner) commit(prop *Proposal, yearStart string) (string, error) {
	date := prop.Transaction.Date
	if date.IsZero() {
		date = time.Now()
	}
	fy, err := id.FinancialYear(date, yearStart)
	if err != nil {
		return "", err
	}
	return r.journal.AddEntry(journal.AddEntryParams{
		Date:          date,
		FinancialYear: fy,
		Draft:         prop.Draft,
	})
}
