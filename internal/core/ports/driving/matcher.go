package driving

import (
	"context"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

// MatcherService exposes the programmatic matching API.
// Both engine modes implement it: the corpus-trained batch index and
// the on-demand real-time matcher.
type MatcherService interface {
	// FindMatches returns ranked opposite-kind matches for a report.
	FindMatches(ctx context.Context, reportID string, cfg domain.MatchConfig) ([]domain.MatchResult, error)

	// SearchByText scores free text against the open corpus.
	// An invalid kind means both kinds; each result is tagged with its
	// source kind.
	SearchByText(ctx context.Context, query string, kind domain.ReportKind, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

// CorpusService adds batch-mode corpus management on top of matching.
type CorpusService interface {
	MatcherService

	// Initialize loads the open corpus and trains the IDF table.
	Initialize(ctx context.Context) error

	// Refresh rebuilds the corpus snapshot in full.
	Refresh(ctx context.Context) error

	// Stats reports the trained flag and corpus sizes.
	Stats() domain.CorpusStats
}
