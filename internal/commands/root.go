package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/buildinfo"
	"github.com/cleared-dev/ledgerview/internal/logger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "ledgerview",
		Short:   "Double-entry books with statements, ratios and health scoring",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.NewFromConfig(logLevel, "console", cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("configuring logger: %w", err)
			}
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("books", ".", "books directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(),
		newEntryCommand(),
		newReportCommand(),
		newStatementCommand(),
		newShariahCommand(),
		newAskCommand(),
		newBudgetCommand(),
		newImportCommand(),
	)

	return rootCmd
}
