package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/accounts"
	"github.com/cleared-dev/ledgerview/internal/config"
	"github.com/cleared-dev/ledgerview/internal/id"
	"github.com/cleared-dev/ledgerview/internal/journal"
	"github.com/cleared-dev/ledgerview/internal/logger"
	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/render"
)

// allYears is the --year value that selects every financial year.
const allYears = "all"

const dateLayout = "2006-01-02"

// books is an opened books directory.
type books struct {
	dir      string
	cfg      *config.Config
	accounts *accounts.Service
	journal  *journal.Service
	log      zerolog.Logger
	format   render.Formatter
}

// openBooks loads the config and chart of the --books directory and
// replaces the context logger with one built from the config, unless
// --log-level was given.
func openBooks(cmd *cobra.Command) (*books, error) {
	flag, err := cmd.Flags().GetString("books")
	if err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(flag)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadBooks(dir)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(cmd.Context())
	if !cmd.Flags().Changed("log-level") {
		log, err = logger.NewFromConfig(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
		if err != nil {
			return nil, fmt.Errorf("configuring logger: %w", err)
		}
		cmd.SetContext(logger.WithContext(cmd.Context(), log))
	}

	chart, err := accounts.Load(dir)
	if err != nil {
		return nil, err
	}

	return &books{
		dir:      dir,
		cfg:      cfg,
		accounts: chart,
		journal:  journal.NewService(dir, chart, log),
		log:      log,
		format:   render.NewFormatter(cfg.Company.Currency),
	}, nil
}

// year resolves a --year value: "all" selects every year, empty falls back
// to the configured current year and then to the year containing today.
func (b *books) year(flag string) (string, error) {
	switch {
	case flag == allYears:
		return "", nil
	case flag != "":
		return flag, nil
	case b.cfg.Fiscal.CurrentYear != "":
		return b.cfg.Fiscal.CurrentYear, nil
	}
	return id.FinancialYear(time.Now(), b.cfg.Fiscal.YearStart)
}

// entries loads the entries of the --year selection.
func (b *books) entries(flag string) (string, []model.JournalEntry, error) {
	fy, err := b.year(flag)
	if err != nil {
		return "", nil, err
	}
	entries, err := b.journal.Entries(fy)
	if err != nil {
		return "", nil, fmt.Errorf("loading entries: %w", err)
	}
	return fy, entries, nil
}

func yearLabel(fy string) string {
	if fy == "" {
		return "all years"
	}
	return fy
}

func addYearFlag(cmd *cobra.Command, year *string) {
	cmd.Flags().StringVar(year, "year", "", `financial year label, e.g. FY2024-25, or "all"`)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}
