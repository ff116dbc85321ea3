package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Inspect persisted matches",
}

var matchesListCmd = &cobra.Command{
	Use:   "list [report-id]",
	Short: "List persisted matches for a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchesList,
}

var matchesContactedCmd = &cobra.Command{
	Use:   "contacted [match-id]",
	Short: "Record that one party has contacted the other",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchesContacted,
}

func init() {
	matchesCmd.AddCommand(matchesListCmd, matchesContactedCmd)
	rootCmd.AddCommand(matchesCmd)
}

func runMatchesList(cmd *cobra.Command, args []string) error {
	matches, err := matchStore.ListForReport(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("listing matches: %w", err)
	}
	if len(matches) == 0 {
		cmd.Println("No matches recorded.")
		return nil
	}
	for _, m := range matches {
		flags := ""
		if m.Notified {
			flags += " notified"
		}
		if m.Contacted {
			flags += " contacted"
		}
		cmd.Printf("%s  [%.3f %-6s] lost=%s found=%s%s\n",
			m.ID, m.Score, m.Confidence, m.LostReportID, m.FoundReportID, flags)
	}
	return nil
}

func runMatchesContacted(cmd *cobra.Command, args []string) error {
	err := matchStore.MarkContacted(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("match %s not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("updating match: %w", err)
	}
	cmd.Printf("Marked %s contacted\n", args[0])
	return nil
}
