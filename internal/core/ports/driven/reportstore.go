package driven

import (
	"context"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

// ReportStore persists lost and found reports.
// Matching reads through this port; report intake writes through it.
type ReportStore interface {
	// SaveReport stores or updates a report.
	SaveReport(ctx context.Context, report *domain.Report) error

	// GetReport retrieves a report by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	GetReport(ctx context.Context, id string) (*domain.Report, error)

	// ListOpenReports returns unresolved reports of one kind,
	// narrowed by the given filters.
	ListOpenReports(ctx context.Context, kind domain.ReportKind, filters domain.ReportFilters) ([]domain.Report, error)

	// MarkResolved flips a report's resolved flag.
	MarkResolved(ctx context.Context, id string) error
}
