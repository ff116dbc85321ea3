package matching

import (
	"math"
	"sort"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

// Candidate pairs a report with its feature vector and its weighted
// term vector (TF or TF-IDF depending on the engine mode).
type Candidate struct {
	Report   domain.Report
	Features domain.FeatureVector
	Vector   map[string]float64
}

// Ranker fuses the four similarity signals into one weighted score and
// produces the ordered, truncated, thresholded result list shared by
// both engine modes.
type Ranker struct {
	scorer *FeatureScorer
}

// NewRanker creates a ranker using the given feature scorer.
func NewRanker(scorer *FeatureScorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank scores every candidate against the query and returns the ranked
// match list. The query's own report and any candidate owned by
// cfg.ExcludeOwnerID are skipped. Results are sorted by descending
// score, truncated to cfg.TopK, and only then filtered by cfg.MinScore;
// a strong match outside the top-K window is never returned.
// An empty result list is a valid outcome.
func (r *Ranker) Rank(query Candidate, candidates []Candidate, cfg domain.MatchConfig) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(candidates))

	for _, cand := range candidates {
		if cand.Report.ID == query.Features.ReportID {
			continue
		}
		if cfg.ExcludeOwnerID != "" && cand.Report.OwnerID == cfg.ExcludeOwnerID {
			continue
		}

		breakdown := domain.Breakdown{
			Text:     CosineSimilarity(query.Vector, cand.Vector),
			Category: r.scorer.CategorySimilarity(query.Features.Category, cand.Features.Category),
			Location: r.scorer.LocationSimilarity(query.Features.Location, cand.Features.Location),
			Date:     r.scorer.DateProximity(query.Features.EventDate, cand.Features.EventDate),
		}

		score := round3(breakdown.Text*cfg.Weights.Text +
			breakdown.Category*cfg.Weights.Category +
			breakdown.Location*cfg.Weights.Location +
			breakdown.Date*cfg.Weights.Date)

		results = append(results, domain.MatchResult{
			Report:     cand.Report,
			Score:      score,
			Confidence: domain.ConfidenceFor(score),
			Breakdown:  breakdown,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	// Truncate to TopK first, then apply the score threshold.
	if cfg.TopK > 0 && len(results) > cfg.TopK {
		results = results[:cfg.TopK]
	}

	filtered := results[:0]
	for _, res := range results {
		if res.Score >= cfg.MinScore {
			filtered = append(filtered, res)
		}
	}
	return filtered
}

// round3 rounds to three decimal places.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
