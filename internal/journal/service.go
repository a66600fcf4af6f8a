package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerview/internal/id"
	"github.com/cleared-dev/ledgerview/internal/model"
)

// ErrInvalidEntry wraps the validator message when a draft is rejected.
var ErrInvalidEntry = errors.New("invalid entry")

// AccountLookup resolves account references for the journal.
type AccountLookup interface {
	AccountChecker
	Get(id int) (model.Account, bool)
	ByName(name string) (model.Account, error)
	Names() []string
}

// Service stores journal entries, one CSV file per financial year.
type Service struct {
	booksDir  string
	accounts  AccountLookup
	log       zerolog.Logger
	listeners []func(financialYear string)
}

// NewService creates a journal Service.
func NewService(booksDir string, accounts AccountLookup, log zerolog.Logger) *Service {
	return &Service{booksDir: booksDir, accounts: accounts, log: log}
}

// Subscribe registers fn to run after every successful append, with the
// financial year that changed.
func (s *Service) Subscribe(fn func(financialYear string)) {
	s.listeners = append(s.listeners, fn)
}

// AddEntryParams holds parameters for recording a journal entry.
type AddEntryParams struct {
	Date          time.Time
	FinancialYear string
	Draft         model.DraftEntry
}

// AddEntry validates a draft, resolves its accounts, checks the year's
// storage invariants and appends it. Returns the entry ID.
func (s *Service) AddEntry(params AddEntryParams) (string, error) {
	draft := params.Draft
	draft.Description = strings.TrimSpace(draft.Description)
	if res := ValidateDraft(draft, s.accounts.Names()); !res.Valid {
		return "", fmt.Errorf("%w: %s", ErrInvalidEntry, res.Message)
	}
	if params.FinancialYear == "" {
		return "", fmt.Errorf("%w: financial year is required", ErrInvalidEntry)
	}

	debit, err := s.accounts.ByName(draft.DebitAccount)
	if err != nil {
		return "", fmt.Errorf("resolving debit account: %w", err)
	}
	credit, err := s.accounts.ByName(draft.CreditAccount)
	if err != nil {
		return "", fmt.Errorf("resolving credit account: %w", err)
	}

	existing, err := s.ReadYear(params.FinancialYear)
	if err != nil {
		return "", err
	}

	entryID := id.FormatEntryID(params.FinancialYear, nextSeq(existing))
	row := Row{
		EntryID:         entryID,
		Date:            params.Date,
		FinancialYear:   params.FinancialYear,
		Description:     draft.Description,
		DebitAccountID:  debit.ID,
		CreditAccountID: credit.ID,
		Amount:          draft.Amount,
	}

	// Validate the whole year with the new row in place.
	all := append(existing, row)
	if verrs := ValidateRows(all, s.accounts, params.FinancialYear); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("%w: validation failed: %s", ErrInvalidEntry, strings.Join(msgs, "; "))
	}

	if err := s.appendRow(row); err != nil {
		return "", err
	}

	s.log.Debug().
		Str("entry_id", entryID).
		Str("debit", debit.Name).
		Str("credit", credit.Name).
		Str("amount", row.Amount.StringFixed(2)).
		Msg("journal entry appended")

	for _, fn := range s.listeners {
		fn(params.FinancialYear)
	}
	return entryID, nil
}

func (s *Service) appendRow(row Row) error {
	path := s.yearPath(row.FinancialYear)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendRows(f, []Row{row}); err != nil {
		return fmt.Errorf("appending row: %w", err)
	}
	return nil
}

// ReadYear reads the stored rows for one financial year.
func (s *Service) ReadYear(financialYear string) ([]Row, error) {
	path := s.yearPath(financialYear)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return rows, nil
}

// Entries returns one financial year's entries with full account snapshots.
// An empty year returns every year.
func (s *Service) Entries(financialYear string) ([]model.JournalEntry, error) {
	years := []string{financialYear}
	if financialYear == "" {
		var err error
		years, err = s.Years()
		if err != nil {
			return nil, err
		}
	}

	var entries []model.JournalEntry
	for _, fy := range years {
		rows, err := s.ReadYear(fy)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			e, err := s.resolve(row)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *Service) resolve(row Row) (model.JournalEntry, error) {
	debit, ok := s.accounts.Get(row.DebitAccountID)
	if !ok {
		return model.JournalEntry{}, fmt.Errorf("entry %s: unknown debit account %d", row.EntryID, row.DebitAccountID)
	}
	credit, ok := s.accounts.Get(row.CreditAccountID)
	if !ok {
		return model.JournalEntry{}, fmt.Errorf("entry %s: unknown credit account %d", row.EntryID, row.CreditAccountID)
	}
	return model.JournalEntry{
		ID:            row.EntryID,
		Date:          row.Date,
		Description:   row.Description,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        row.Amount,
		FinancialYear: row.FinancialYear,
	}, nil
}

// Years lists the financial years that have a journal file, sorted.
func (s *Service) Years() ([]string, error) {
	dir := filepath.Join(s.booksDir, "journal")
	dirEntries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading journal dir: %w", err)
	}

	var years []string
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		years = append(years, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(years)
	return years, nil
}

// NextEntrySeq returns the next available sequence number for a year.
func (s *Service) NextEntrySeq(financialYear string) (int, error) {
	rows, err := s.ReadYear(financialYear)
	if err != nil {
		return 0, err
	}
	return nextSeq(rows), nil
}

func nextSeq(rows []Row) int {
	maxSeq := 0
	for _, row := range rows {
		_, seq, err := id.ParseEntryID(row.EntryID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

func (s *Service) yearPath(financialYear string) string {
	return filepath.Join(s.booksDir, "journal", financialYear+".csv")
}
