package services

import (
	"math"
	"sort"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/matching"
)

// featureVector derives a report's matching features.
func featureVector(norm *matching.Normalizer, report domain.Report) domain.FeatureVector {
	return domain.FeatureVector{
		ReportID:  report.ID,
		Kind:      report.Kind,
		OwnerID:   report.OwnerID,
		Tokens:    norm.Tokens(report.Text()),
		Category:  norm.NormalizeCategory(report.Category),
		Location:  report.Location,
		EventDate: report.EventDate,
	}
}

// tfCandidate builds a candidate with a plain TF vector (real-time mode).
func tfCandidate(norm *matching.Normalizer, report domain.Report) matching.Candidate {
	features := featureVector(norm, report)
	return matching.Candidate{
		Report:   report,
		Features: features,
		Vector:   matching.TermFrequency(features.Tokens),
	}
}

// tfidfCandidate builds a candidate weighted by a corpus IDF table
// (batch mode).
func tfidfCandidate(norm *matching.Normalizer, report domain.Report, idf domain.IDFTable) matching.Candidate {
	features := featureVector(norm, report)
	return matching.Candidate{
		Report:   report,
		Features: features,
		Vector:   matching.TFIDFVector(features.Tokens, idf),
	}
}

// rankText scores a pseudo-document vector against a candidate pool on
// text similarity alone. Shared by both modes' free-text search; the
// same truncate-then-threshold ordering as full matching applies.
func rankText(vec map[string]float64, pool []matching.Candidate, opts domain.SearchOptions) []domain.SearchResult {
	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultTopK
	}

	results := make([]domain.SearchResult, 0, len(pool))
	for _, cand := range pool {
		score := math.Round(matching.CosineSimilarity(vec, cand.Vector)*1000) / 1000
		results = append(results, domain.SearchResult{
			Report: cand.Report,
			Kind:   cand.Report.Kind,
			Score:  score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	filtered := results[:0]
	for _, res := range results {
		if res.Score > 0 && res.Score >= opts.MinScore {
			filtered = append(filtered, res)
		}
	}
	return filtered
}
