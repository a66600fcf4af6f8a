// Package budget stores yearly budgets and compares them with actual totals.
package budget

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Dir is the books subdirectory holding budget files.
const Dir = "budgets"

// Budget is one financial year's budgeted amounts.
type Budget struct {
	FinancialYear     string          `yaml:"financial_year"`
	Revenue           decimal.Decimal `yaml:"revenue"`
	COGS              decimal.Decimal `yaml:"cogs"`
	OperatingExpenses decimal.Decimal `yaml:"operating_expenses"`
	NetIncome         decimal.Decimal `yaml:"net_income"`
	Capex             decimal.Decimal `yaml:"capex"`
	CashInflows       decimal.Decimal `yaml:"cash_inflows"`
	CashOutflows      decimal.Decimal `yaml:"cash_outflows"`
}

// Path returns the budget file for a financial year under booksDir.
func Path(booksDir, financialYear string) string {
	return filepath.Join(booksDir, Dir, financialYear+".yaml")
}

// Load reads a budget file from disk.
func Load(path string) (*Budget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading budget: %w", err)
	}
	var b Budget
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing budget %s: %w", filepath.Base(path), err)
	}
	return &b, nil
}

// Save writes a budget file, creating the budgets directory if needed.
func Save(path string, b *Budget) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating budget dir: %w", err)
	}
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshaling budget: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}
	return nil
}
