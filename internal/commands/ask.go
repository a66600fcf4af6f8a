package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/analysis"
	"github.com/cleared-dev/ledgerview/internal/chatbot"
)

func newAskCommand() *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about the books' financial health",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			fy, entries, err := b.entries(year)
			if err != nil {
				return err
			}
			bot := chatbot.New(b.cfg.Company.Currency)
			fmt.Fprintln(cmd.OutOrStdout(), bot.Reply(strings.Join(args, " "), analysis.Compute(fy, entries)))
			return nil
		},
	}

	addYearFlag(cmd, &year)

	return cmd
}
