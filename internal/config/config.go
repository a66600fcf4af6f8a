package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a books directory.
const FileName = "ledgerview.yaml"

// Config represents the top-level ledgerview.yaml configuration.
type Config struct {
	Company CompanyConfig `yaml:"company"`
	Fiscal  FiscalConfig  `yaml:"fiscal"`
	Shariah ShariahConfig `yaml:"shariah"`
	Budget  BudgetConfig  `yaml:"budget"`
	Logging LoggingConfig `yaml:"logging"`
}

// CompanyConfig identifies the business and its reporting currency.
type CompanyConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart   string `yaml:"year_start"`             // "MM-DD" format, e.g. "07-01"
	CurrentYear string `yaml:"current_year,omitempty"` // label such as "FY2024-25"; empty means today's
}

// ShariahConfig selects the screening standard used by default.
type ShariahConfig struct {
	Standard string `yaml:"standard"`
}

// BudgetConfig controls budget reporting.
type BudgetConfig struct {
	InflationRate float64 `yaml:"inflation_rate"` // percent
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// Path returns the config file path for a books directory.
func Path(booksDir string) string {
	return filepath.Join(booksDir, FileName)
}

// Load reads a ledgerview.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new set of books.
func Default(companyName string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name:     companyName,
			Currency: "PKR",
		},
		Fiscal: FiscalConfig{
			YearStart: "07-01",
		},
		Shariah: ShariahConfig{
			Standard: "meezan",
		},
		Budget: BudgetConfig{
			InflationRate: 6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks values that other packages parse later.
func (c *Config) Validate() error {
	if _, err := time.Parse("01-02", c.Fiscal.YearStart); err != nil {
		return fmt.Errorf("fiscal.year_start %q: want MM-DD", c.Fiscal.YearStart)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format %q: want console or json", c.Logging.Format)
	}
	if c.Budget.InflationRate < 0 {
		return fmt.Errorf("budget.inflation_rate %v: must not be negative", c.Budget.InflationRate)
	}
	return nil
}
