package accounts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// ErrUnknownAccount is returned when a name or ID is not in the chart.
var ErrUnknownAccount = errors.New("unknown account")

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byID     map[int]model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[int]model.Account, len(accounts))
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
		byName[normalizeName(a.Name)] = a
	}
	return &Service{accounts: accounts, byID: byID, byName: byName}
}

// Path returns the chart-of-accounts.csv location under a books directory.
func Path(booksDir string) string {
	return filepath.Join(booksDir, "accounts", "chart-of-accounts.csv")
}

// Load reads chart-of-accounts.csv from a books directory and returns a Service.
func Load(booksDir string) (*Service, error) {
	f, err := os.Open(Path(booksDir))
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id int) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// ByName looks an account up by name, ignoring case and surrounding space.
func (s *Service) ByName(name string) (model.Account, error) {
	a, ok := s.byName[normalizeName(name)]
	if !ok {
		return model.Account{}, fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	return a, nil
}

// Names returns every account name in chart order.
func (s *Service) Names() []string {
	names := make([]string, len(s.accounts))
	for i, a := range s.accounts {
		names[i] = a.Name
	}
	return names
}

// ByCategory returns all accounts of the given category.
func (s *Service) ByCategory(category model.Category) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(booksDir string) error {
	dir := filepath.Join(booksDir, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(Path(booksDir))
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
