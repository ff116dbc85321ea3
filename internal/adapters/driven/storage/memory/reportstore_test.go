package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

func TestReportStore_SaveAndGet(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	report := &domain.Report{
		ID: "r1", Kind: domain.KindLost, Title: "black wallet",
		OwnerID: "u1", CreatedAt: time.Now(),
	}
	require.NoError(t, store.SaveReport(ctx, report))

	got, err := store.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, *report, *got)
}

func TestReportStore_GetUnknown(t *testing.T) {
	store := NewReportStore()

	_, err := store.GetReport(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportStore_SaveOverwrites(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	require.NoError(t, store.SaveReport(ctx, &domain.Report{ID: "r1", Title: "old"}))
	require.NoError(t, store.SaveReport(ctx, &domain.Report{ID: "r1", Title: "new"}))

	got, err := store.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
}

func TestReportStore_ListOpenReports(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	reports := []domain.Report{
		{ID: "l1", Kind: domain.KindLost, Category: "accessories", OwnerID: "u1", CreatedAt: base},
		{ID: "l2", Kind: domain.KindLost, Category: "electronics", OwnerID: "u2", CreatedAt: base.Add(time.Hour)},
		{ID: "l3", Kind: domain.KindLost, Category: "accessories", OwnerID: "u3", CreatedAt: base.Add(2 * time.Hour), Resolved: true},
		{ID: "f1", Kind: domain.KindFound, Category: "accessories", OwnerID: "u4", CreatedAt: base},
	}
	for i := range reports {
		require.NoError(t, store.SaveReport(ctx, &reports[i]))
	}

	t.Run("by kind, unresolved only", func(t *testing.T) {
		got, err := store.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "l1", got[0].ID, "sorted oldest first")
		assert.Equal(t, "l2", got[1].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		got, err := store.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{Category: "electronics"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "l2", got[0].ID)
	})

	t.Run("owner exclusion", func(t *testing.T) {
		got, err := store.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{ExcludeOwnerID: "u1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "l2", got[0].ID)
	})

	t.Run("created after", func(t *testing.T) {
		got, err := store.ListOpenReports(ctx, domain.KindLost, domain.ReportFilters{CreatedAfter: base})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "l2", got[0].ID, "boundary instant is excluded")
	})
}

func TestReportStore_MarkResolved(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	require.NoError(t, store.SaveReport(ctx, &domain.Report{ID: "r1", Kind: domain.KindLost}))

	require.NoError(t, store.MarkResolved(ctx, "r1"))

	got, err := store.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, got.Resolved)

	assert.ErrorIs(t, store.MarkResolved(ctx, "missing"), domain.ErrNotFound)
}
