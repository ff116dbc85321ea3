// Package memory provides in-memory implementations of the driven
// storage ports. Used for tests and ephemeral runs; the sqlite
// adapters are the durable equivalents.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{reports: make(map[string]domain.Report)}
}

// SaveReport stores or updates a report.
func (s *ReportStore) SaveReport(_ context.Context, report *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = *report
	return nil
}

// GetReport retrieves a report by ID.
func (s *ReportStore) GetReport(_ context.Context, id string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &report, nil
}

// ListOpenReports returns unresolved reports of one kind.
func (s *ReportStore) ListOpenReports(_ context.Context, kind domain.ReportKind, filters domain.ReportFilters) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Report
	for id := range s.reports {
		report := s.reports[id]
		if report.Kind != kind || report.Resolved {
			continue
		}
		if filters.Category != "" && report.Category != filters.Category {
			continue
		}
		if filters.ExcludeOwnerID != "" && report.OwnerID == filters.ExcludeOwnerID {
			continue
		}
		if !filters.CreatedAfter.IsZero() && !report.CreatedAt.After(filters.CreatedAfter) {
			continue
		}
		result = append(result, report)
	}

	// Deterministic order for callers and tests.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// MarkResolved flips a report's resolved flag.
func (s *ReportStore) MarkResolved(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[id]
	if !ok {
		return domain.ErrNotFound
	}
	report.Resolved = true
	s.reports[id] = report
	return nil
}
