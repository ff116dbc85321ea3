package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reunite-labs/reunite/internal/adapters/driven/storage/memory"
	"github.com/reunite-labs/reunite/internal/core/domain"
)

// seedCorpus builds a small corpus with enough vocabulary spread that
// the shared wallet tokens keep a non-zero IDF weight.
func seedCorpus(t *testing.T, store *memory.ReportStore) (lost, found domain.Report) {
	t.Helper()
	lost, found = walletPair(t, store)
	seedReport(t, store, domain.Report{
		ID: "found-umbrella", Kind: domain.KindFound, Title: "Found red umbrella",
		Category: "other", Location: "Lakeside", EventDate: time.Now(), OwnerID: "user-c",
	})
	return lost, found
}

func TestCorpusFindMatches_RequiresTraining(t *testing.T) {
	svc := NewCorpusService(memory.NewReportStore(), testPipeline())

	_, err := svc.FindMatches(context.Background(), "lost-wallet", domain.DefaultMatchConfig())

	assert.ErrorIs(t, err, domain.ErrNotTrained)
}

func TestCorpusSearchByText_RequiresTraining(t *testing.T) {
	svc := NewCorpusService(memory.NewReportStore(), testPipeline())

	_, err := svc.SearchByText(context.Background(), "wallet", domain.KindFound, domain.SearchOptions{})

	assert.ErrorIs(t, err, domain.ErrNotTrained)
}

func TestCorpusInitialize_Stats(t *testing.T) {
	store := memory.NewReportStore()
	seedCorpus(t, store)
	svc := NewCorpusService(store, testPipeline())

	stats := svc.Stats()
	assert.False(t, stats.Trained)

	require.NoError(t, svc.Initialize(context.Background()))

	stats = svc.Stats()
	assert.True(t, stats.Trained)
	assert.Equal(t, 1, stats.LostCount)
	assert.Equal(t, 2, stats.FoundCount)
	assert.Greater(t, stats.VocabularySize, 0)
}

func TestCorpusFindMatches_WalletScenario(t *testing.T) {
	store := memory.NewReportStore()
	lost, found := seedCorpus(t, store)
	svc := NewCorpusService(store, testPipeline())
	require.NoError(t, svc.Initialize(context.Background()))

	results, err := svc.FindMatches(context.Background(), lost.ID, domain.DefaultMatchConfig())

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, found.ID, results[0].Report.ID)
	assert.Greater(t, results[0].Breakdown.Text, 0.3)
}

func TestCorpusFindMatches_UncachedReport(t *testing.T) {
	store := memory.NewReportStore()
	_, found := seedCorpus(t, store)
	svc := NewCorpusService(store, testPipeline())
	require.NoError(t, svc.Initialize(context.Background()))

	// Filed after training; matched against the stale snapshot without
	// forcing a refresh.
	late := seedReport(t, store, domain.Report{
		ID: "lost-late", Kind: domain.KindLost, Title: "black leather wallet",
		Category: "accessories", Location: "City Mall",
		EventDate: found.EventDate, OwnerID: "user-d",
	})

	results, err := svc.FindMatches(context.Background(), late.ID, domain.DefaultMatchConfig())

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, found.ID, results[0].Report.ID)
}

func TestCorpusFindMatches_UnknownReport(t *testing.T) {
	store := memory.NewReportStore()
	seedCorpus(t, store)
	svc := NewCorpusService(store, testPipeline())
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.FindMatches(context.Background(), "missing", domain.DefaultMatchConfig())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusRefresh_PicksUpNewReports(t *testing.T) {
	store := memory.NewReportStore()
	seedCorpus(t, store)
	svc := NewCorpusService(store, testPipeline())
	require.NoError(t, svc.Initialize(context.Background()))

	seedReport(t, store, domain.Report{
		ID: "lost-keys", Kind: domain.KindLost, Title: "bunch of keys",
		Category: "keys", Location: "office", EventDate: time.Now(), OwnerID: "user-e",
	})
	require.NoError(t, svc.Refresh(context.Background()))

	stats := svc.Stats()
	assert.Equal(t, 2, stats.LostCount)
	assert.Equal(t, 2, stats.FoundCount)
}

func TestCorpusSearchByText_ScopedByKind(t *testing.T) {
	store := memory.NewReportStore()
	seedCorpus(t, store)
	svc := NewCorpusService(store, testPipeline())
	require.NoError(t, svc.Initialize(context.Background()))

	foundOnly, err := svc.SearchByText(context.Background(), "black wallet", domain.KindFound, domain.SearchOptions{})
	require.NoError(t, err)
	both, err := svc.SearchByText(context.Background(), "black wallet", "", domain.SearchOptions{})
	require.NoError(t, err)

	require.NotEmpty(t, foundOnly)
	for _, res := range foundOnly {
		assert.Equal(t, domain.KindFound, res.Kind)
	}
	assert.Greater(t, len(both), len(foundOnly))
}
