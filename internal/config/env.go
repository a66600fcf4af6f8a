package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys that override config values.
const (
	EnvFinancialYear   = "LEDGERVIEW_FINANCIAL_YEAR"
	EnvCurrency        = "LEDGERVIEW_CURRENCY"
	EnvShariahStandard = "LEDGERVIEW_SHARIAH_STANDARD"
	EnvLogLevel        = "LEDGERVIEW_LOG_LEVEL"
	EnvLogFormat       = "LEDGERVIEW_LOG_FORMAT"
	EnvInflationRate   = "LEDGERVIEW_INFLATION_RATE"
)

// LookupFunc reports the value of an environment key.
type LookupFunc func(key string) (string, bool)

// LoadEnv reads the .env file in booksDir. A missing file yields an empty
// map.
func LoadEnv(booksDir string) (map[string]string, error) {
	vars, err := godotenv.Read(filepath.Join(booksDir, ".env"))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	return vars, nil
}

// Lookup layers the process environment over dotenv values.
func Lookup(dotenv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// ApplyEnv overwrites config values with any keys lookup reports. Empty
// values are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvFinancialYear, &c.Fiscal.CurrentYear)
	set(EnvCurrency, &c.Company.Currency)
	set(EnvShariahStandard, &c.Shariah.Standard)
	set(EnvLogLevel, &c.Logging.Level)
	set(EnvLogFormat, &c.Logging.Format)

	if v, ok := lookup(EnvInflationRate); ok && v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvInflationRate, err)
		}
		c.Budget.InflationRate = rate
	}
	return nil
}

// LoadBooks loads the config of booksDir with .env and process environment
// overrides applied, then validates it.
func LoadBooks(booksDir string) (*Config, error) {
	cfg, err := Load(Path(booksDir))
	if err != nil {
		return nil, err
	}
	dotenv, err := LoadEnv(booksDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(Lookup(dotenv)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
