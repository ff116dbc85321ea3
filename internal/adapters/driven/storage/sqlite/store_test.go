package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedPair(t *testing.T, store *Store) (lost, found domain.Report) {
	t.Helper()
	ctx := context.Background()
	reports := store.ReportStore()
	lost = domain.Report{
		ID: "l1", Kind: domain.KindLost, Title: "black wallet",
		Category: "accessories", Location: "mall",
		EventDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		OwnerID:   "u1", CreatedAt: time.Now().UTC(),
	}
	found = domain.Report{
		ID: "f1", Kind: domain.KindFound, Title: "found wallet",
		Category: "accessories", Location: "mall",
		EventDate: time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC),
		OwnerID:   "u2", CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, reports.SaveReport(ctx, &lost))
	require.NoError(t, reports.SaveReport(ctx, &found))
	return lost, found
}

func TestStore_MigratesOnOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "reunite.db"), store.Path())
	require.NoError(t, store.Close())

	// Reopening an already-migrated database is a no-op.
	store, err = NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestReportStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	reports := store.ReportStore()

	want := domain.Report{
		ID: "r1", Kind: domain.KindFound, Title: "Found iPhone",
		Description: "found an iphone near the station",
		ItemName:    "iPhone 12", Category: "electronics",
		Location:  "Bus Station",
		EventDate: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		OwnerID:   "u1",
		CreatedAt: time.Date(2026, 6, 1, 13, 0, 0, 0, time.UTC),
	}
	require.NoError(t, reports.SaveReport(ctx, &want))

	got, err := reports.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, want.Kind, got.Kind)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.ItemName, got.ItemName)
	assert.True(t, want.EventDate.Equal(got.EventDate))
	assert.False(t, got.Resolved)

	_, err = reports.GetReport(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportStore_ZeroEventDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	reports := store.ReportStore()

	require.NoError(t, reports.SaveReport(ctx, &domain.Report{
		ID: "r1", Kind: domain.KindLost, Title: "keys", CreatedAt: time.Now().UTC(),
	}))

	got, err := reports.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, got.EventDate.IsZero(), "NULL event_date maps back to the zero time")
}

func TestReportStore_ListAndResolve(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	reports := store.ReportStore()
	lost, _ := seedPair(t, store)

	open, err := reports.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, lost.ID, open[0].ID)

	require.NoError(t, reports.MarkResolved(ctx, lost.ID))

	open, err = reports.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{})
	require.NoError(t, err)
	assert.Empty(t, open)

	assert.ErrorIs(t, reports.MarkResolved(ctx, "missing"), domain.ErrNotFound)
}

func TestReportStore_ListFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	reports := store.ReportStore()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for _, r := range []domain.Report{
		{ID: "l1", Kind: domain.KindLost, Category: "accessories", OwnerID: "u1", Title: "t", CreatedAt: base},
		{ID: "l2", Kind: domain.KindLost, Category: "electronics", OwnerID: "u2", Title: "t", CreatedAt: base.Add(time.Hour)},
	} {
		r := r
		require.NoError(t, reports.SaveReport(ctx, &r))
	}

	got, err := reports.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{Category: "electronics"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l2", got[0].ID)

	got, err = reports.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{ExcludeOwnerID: "u2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)

	got, err = reports.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{CreatedAfter: base})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l2", got[0].ID)
}

func TestMatchStore_SaveIfAbsentUniquePair(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	matches := store.MatchStore()
	lost, found := seedPair(t, store)

	first := &domain.Match{
		ID: "m1", LostReportID: lost.ID, FoundReportID: found.ID,
		Score: 0.8, Confidence: domain.ConfidenceHigh,
		Breakdown: domain.Breakdown{Text: 0.9, Category: 1, Location: 0.7, Date: 0.8},
		CreatedAt: time.Now().UTC(),
	}
	inserted, err := matches.SaveIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)

	dup := *first
	dup.ID = "m2"
	inserted, err = matches.SaveIfAbsent(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, inserted, "the unique pair index absorbs the duplicate")

	exists, err := matches.ExistsForPair(ctx, lost.ID, found.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := matches.ListForReport(ctx, lost.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, first.Breakdown, got[0].Breakdown)
	assert.Equal(t, domain.ConfidenceHigh, got[0].Confidence)
}

func TestMatchStore_Flags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	matches := store.MatchStore()
	lost, found := seedPair(t, store)

	_, err := matches.SaveIfAbsent(ctx, &domain.Match{
		ID: "m1", LostReportID: lost.ID, FoundReportID: found.ID,
		Score: 0.5, Confidence: domain.ConfidenceMedium, CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, matches.MarkNotified(ctx, "m1"))
	require.NoError(t, matches.MarkContacted(ctx, "m1"))

	got, err := matches.ListForReport(ctx, found.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Notified)
	assert.True(t, got[0].Contacted)

	assert.ErrorIs(t, matches.MarkNotified(ctx, "missing"), domain.ErrNotFound)
}
