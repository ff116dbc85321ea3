package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the batch-mode corpus index",
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus training state and sizes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := corpusService.Initialize(cmd.Context()); err != nil {
			return fmt.Errorf("training corpus: %w", err)
		}
		stats := corpusService.Stats()
		cmd.Printf("Trained:    %t\n", stats.Trained)
		cmd.Printf("Lost:       %d\n", stats.LostCount)
		cmd.Printf("Found:      %d\n", stats.FoundCount)
		cmd.Printf("Vocabulary: %d tokens\n", stats.VocabularySize)
		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusStatsCmd)
	rootCmd.AddCommand(corpusCmd)
}
