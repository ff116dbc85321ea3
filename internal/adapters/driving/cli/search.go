package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

var (
	searchKind     string
	searchLimit    int
	searchMinScore float64
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search open reports by free text",
	Long: `Scores free text against the open report corpus.
The query goes through the same normalisation pipeline as reports,
so synonym expansion applies ("iphone" finds "smartphone").`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "both", "report kind: lost, found, or both")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", 0, "minimum result score")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind := domain.ReportKind(searchKind)
	if searchKind != "both" && !kind.IsValid() {
		return fmt.Errorf("%w: kind must be lost, found, or both", domain.ErrInvalidInput)
	}

	results, err := realtimeService.SearchByText(cmd.Context(), args[0], kind, domain.SearchOptions{
		Limit:    searchLimit,
		MinScore: searchMinScore,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	for i, res := range results {
		cmd.Printf("%2d. [%.3f] (%s) %s  %s\n", i+1, res.Score, res.Kind, res.Report.ID, res.Report.Title)
	}
	return nil
}
