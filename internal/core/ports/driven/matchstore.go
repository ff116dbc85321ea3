package driven

import (
	"context"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

// MatchStore persists discovered matches.
// It owns the at-most-one-match-per-pair invariant: SaveIfAbsent must
// be atomic on the (lost, found) pair so concurrent scans cannot
// produce duplicates.
type MatchStore interface {
	// SaveIfAbsent inserts the match unless one already exists for the
	// same (lost, found) pair. Returns true if the match was inserted.
	SaveIfAbsent(ctx context.Context, match *domain.Match) (bool, error)

	// ExistsForPair reports whether a match exists for the pair.
	ExistsForPair(ctx context.Context, lostID, foundID string) (bool, error)

	// ListForReport returns all matches involving the report, newest
	// first.
	ListForReport(ctx context.Context, reportID string) ([]domain.Match, error)

	// MarkNotified flips the notified flag on a match.
	MarkNotified(ctx context.Context, matchID string) error

	// MarkContacted flips the contacted flag on a match.
	MarkContacted(ctx context.Context, matchID string) error
}
