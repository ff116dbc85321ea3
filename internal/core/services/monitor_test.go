package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reunite-labs/reunite/internal/adapters/driven/storage/memory"
	"github.com/reunite-labs/reunite/internal/core/domain"
)

// captureNotifier records notifications and can be told to fail.
type captureNotifier struct {
	mu      sync.Mutex
	err     error
	reports []string
}

func (n *captureNotifier) Notify(_ context.Context, report *domain.Report, _ []domain.MatchResult) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.reports = append(n.reports, report.ID)
	return nil
}

func (n *captureNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.reports)
}

type monitorFixture struct {
	reports  *memory.ReportStore
	matches  *memory.MatchStore
	notifier *captureNotifier
	monitor  *Monitor
}

func newMonitorFixture(t *testing.T, opts ...MonitorOption) *monitorFixture {
	t.Helper()
	reports := memory.NewReportStore()
	matches := memory.NewMatchStore()
	notifier := &captureNotifier{}
	matcher := NewRealTimeService(reports, testPipeline())
	opts = append([]MonitorOption{WithTickInterval(time.Hour)}, opts...)
	return &monitorFixture{
		reports:  reports,
		matches:  matches,
		notifier: notifier,
		monitor:  NewMonitor(reports, matches, notifier, matcher, opts...),
	}
}

func TestMonitor_AtMostOneMatchPerPair(t *testing.T) {
	fix := newMonitorFixture(t)
	lost, found := walletPair(t, fix.reports)

	// Both directions of the pair are evaluated, twice over.
	require.NoError(t, fix.monitor.ProcessAllExisting(context.Background()))
	require.NoError(t, fix.monitor.ProcessAllExisting(context.Background()))

	stored, err := fix.matches.ListForReport(context.Background(), lost.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, lost.ID, stored[0].LostReportID)
	assert.Equal(t, found.ID, stored[0].FoundReportID)
	assert.True(t, stored[0].Notified)
}

func TestMonitor_NotifiesOncePerDiscovery(t *testing.T) {
	fix := newMonitorFixture(t)
	walletPair(t, fix.reports)

	require.NoError(t, fix.monitor.ProcessAllExisting(context.Background()))
	require.NoError(t, fix.monitor.ProcessAllExisting(context.Background()))

	// Only the evaluation that actually inserted the pairing notifies;
	// the mirror evaluation and the re-run see nothing new.
	assert.Equal(t, 1, fix.notifier.count())
}

func TestMonitor_MatchOrientation(t *testing.T) {
	fix := newMonitorFixture(t)
	lost, found := walletPair(t, fix.reports)

	// Evaluating from the found side must still store the pair as
	// (lost, found).
	fix.monitor.evaluate(context.Background(), &found, true)

	stored, err := fix.matches.ListForReport(context.Background(), found.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, lost.ID, stored[0].LostReportID)
	assert.Equal(t, found.ID, stored[0].FoundReportID)
	assert.NotEmpty(t, stored[0].ID)
	assert.GreaterOrEqual(t, stored[0].Score, domain.DefaultMinScore)
}

func TestMonitor_NotifierFailureKeepsMatch(t *testing.T) {
	fix := newMonitorFixture(t)
	fix.notifier.err = errors.New("sink down")
	lost, _ := walletPair(t, fix.reports)

	require.NoError(t, fix.monitor.ProcessAllExisting(context.Background()))

	stored, err := fix.matches.ListForReport(context.Background(), lost.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1, "persistence never depends on delivery")
	assert.False(t, stored[0].Notified)
}

func TestMonitor_StartStopIdempotent(t *testing.T) {
	fix := newMonitorFixture(t)

	require.NoError(t, fix.monitor.Start(context.Background()))
	require.NoError(t, fix.monitor.Start(context.Background()))
	assert.True(t, fix.monitor.Status().IsMonitoring)

	require.NoError(t, fix.monitor.Stop())
	require.NoError(t, fix.monitor.Stop())
	assert.False(t, fix.monitor.Status().IsMonitoring)
}

func TestMonitor_StartRunsImmediateScan(t *testing.T) {
	fix := newMonitorFixture(t)
	lost, _ := walletPair(t, fix.reports)

	require.NoError(t, fix.monitor.Start(context.Background()))
	defer fix.monitor.Stop()

	// Start scans synchronously before subscribing to ticks.
	stored, err := fix.matches.ListForReport(context.Background(), lost.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, 2, fix.monitor.Status().ProcessedCount)
}

func TestMonitor_ScanSkipsProcessedReports(t *testing.T) {
	fix := newMonitorFixture(t)
	walletPair(t, fix.reports)

	require.NoError(t, fix.monitor.Start(context.Background()))
	require.NoError(t, fix.monitor.Stop())
	notified := fix.notifier.count()

	// Restarting re-scans the window, but processed reports are skipped.
	require.NoError(t, fix.monitor.Start(context.Background()))
	require.NoError(t, fix.monitor.Stop())

	assert.Equal(t, notified, fix.notifier.count())
}

func TestMonitor_ClearProcessedCache(t *testing.T) {
	fix := newMonitorFixture(t)
	walletPair(t, fix.reports)

	require.NoError(t, fix.monitor.ProcessAllExisting(context.Background()))
	require.Equal(t, 2, fix.monitor.Status().ProcessedCount)

	fix.monitor.ClearProcessedCache()

	assert.Equal(t, 0, fix.monitor.Status().ProcessedCount)
}

func TestMonitor_NoMatchesNoNotification(t *testing.T) {
	fix := newMonitorFixture(t)
	seedReport(t, fix.reports, domain.Report{
		ID: "lonely", Kind: domain.KindLost, Title: "one of a kind artifact",
		Category: "other", Location: "nowhere", EventDate: time.Now(), OwnerID: "user-a",
	})

	require.NoError(t, fix.monitor.ProcessAllExisting(context.Background()))

	assert.Equal(t, 0, fix.notifier.count())
	stored, err := fix.matches.ListForReport(context.Background(), "lonely")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
