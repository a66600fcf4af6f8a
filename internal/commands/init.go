package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/accounts"
	"github.com/cleared-dev/ledgerview/internal/budget"
	"github.com/cleared-dev/ledgerview/internal/config"
	"github.com/cleared-dev/ledgerview/internal/importer"
	"github.com/cleared-dev/ledgerview/internal/logger"
)

func newInitCommand() *cobra.Command {
	var name, template, currency, yearStart string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new set of books",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			switch template {
			case accounts.TemplateTrading, accounts.TemplateServices:
			default:
				return fmt.Errorf("unknown template %q: want %s or %s", template, accounts.TemplateTrading, accounts.TemplateServices)
			}

			cfg := config.Default(name)
			cfg.Fiscal.YearStart = yearStart
			if currency != "" {
				cfg.Company.Currency = currency
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.FromContext(cmd.Context())
			log.Debug().Str("dir", absDir).Str("template", template).Msg("initializing books")
			return runInit(cmd.OutOrStdout(), absDir, cfg, template)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&template, "template", accounts.TemplateTrading, "chart of accounts template (trading or services)")
	cmd.Flags().StringVar(&currency, "currency", "", "reporting currency code (default PKR)")
	cmd.Flags().StringVar(&yearStart, "year-start", "07-01", "first day of the financial year, MM-DD")

	return cmd
}

func runInit(out io.Writer, dir string, cfg *config.Config, template string) error {
	if _, err := os.Stat(config.Path(dir)); err == nil {
		return fmt.Errorf("books already initialized at %s", dir)
	}

	// Create directory structure.
	dirs := []string{
		"accounts",
		"journal",
		budget.Dir,
		importer.Dir,
		importer.ProcessedDir,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write ledgerview.yaml.
	if err := config.Save(config.Path(dir), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write chart of accounts.
	svc := accounts.NewService(accounts.DefaultChart(template))
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// Keep local overrides out of version control.
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(".env\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, importer.Dir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Fprintf(out, "Initialized books for %s at %s (%d accounts)\n", cfg.Company.Name, dir, len(svc.All()))
	return nil
}
