package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

var (
	matchTopK     int
	matchMinScore float64
	matchBatch    bool
	matchJSON     bool
)

var matchCmd = &cobra.Command{
	Use:   "match [report-id]",
	Short: "Find matches for a report",
	Long: `Ranks opposite-kind reports against the given report.

By default the real-time matcher is used: every call re-reads the
store and scores plain term-frequency vectors. With --batch the
corpus-trained index is used instead; it is trained on demand and
weights tokens by corpus-wide rarity (TF-IDF).`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().IntVarP(&matchTopK, "top", "n", 0, "maximum number of matches")
	matchCmd.Flags().Float64Var(&matchMinScore, "min-score", 0, "minimum match score")
	matchCmd.Flags().BoolVar(&matchBatch, "batch", false, "use the corpus-trained index")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := settings.MatchConfig()
	if matchTopK > 0 {
		cfg.TopK = matchTopK
	}
	if matchMinScore > 0 {
		cfg.MinScore = matchMinScore
	}

	matcher := realtimeService
	if matchBatch {
		if err := corpusService.Initialize(cmd.Context()); err != nil {
			return fmt.Errorf("training corpus: %w", err)
		}
		matcher = corpusService
	}

	results, err := matcher.FindMatches(cmd.Context(), args[0], cfg)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("report %s not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if matchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No matches found.")
		return nil
	}
	for i, res := range results {
		cmd.Printf("%2d. [%.3f %-6s] %s  %s\n", i+1, res.Score, res.Confidence, res.Report.ID, res.Report.Title)
		cmd.Printf("    text=%.3f category=%.3f location=%.3f date=%.3f\n",
			res.Breakdown.Text, res.Breakdown.Category, res.Breakdown.Location, res.Breakdown.Date)
	}
	return nil
}
