package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reunite-labs/reunite/internal/adapters/driven/storage/memory"
	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/matching"
)

func testPipeline() *matching.Pipeline {
	return matching.NewPipeline(matching.DefaultTables())
}

func seedReport(t *testing.T, store *memory.ReportStore, report domain.Report) domain.Report {
	t.Helper()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	require.NoError(t, store.SaveReport(context.Background(), &report))
	return report
}

// walletPair seeds the canonical cross-kind pairing used throughout
// the service tests: a lost wallet and a found wallet filed by
// different users, same category, overlapping location, one day apart.
func walletPair(t *testing.T, store *memory.ReportStore) (lost, found domain.Report) {
	t.Helper()
	event := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	lost = seedReport(t, store, domain.Report{
		ID:          "lost-wallet",
		Kind:        domain.KindLost,
		Title:       "Black leather wallet",
		Description: "Lost my black leather wallet near the City Mall",
		Category:    "accessories",
		Location:    "City Mall",
		EventDate:   event,
		OwnerID:     "user-a",
	})
	found = seedReport(t, store, domain.Report{
		ID:          "found-wallet",
		Kind:        domain.KindFound,
		Title:       "Found black wallet",
		Description: "found a black wallet at the mall",
		Category:    "accessories",
		Location:    "City Mall",
		EventDate:   event.AddDate(0, 0, 1),
		OwnerID:     "user-b",
	})
	return lost, found
}
