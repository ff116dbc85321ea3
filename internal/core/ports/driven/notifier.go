package driven

import (
	"context"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

// Notifier delivers new-match notifications to report owners.
// Delivery is fire-and-forget from the monitor's point of view:
// a failed Notify is logged and never aborts a scan.
type Notifier interface {
	// Notify tells the report's owner about newly discovered matches.
	// Called once per report per scan, with the full match list.
	Notify(ctx context.Context, report *domain.Report, matches []domain.MatchResult) error
}
