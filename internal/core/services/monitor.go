package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
	"github.com/reunite-labs/reunite/internal/core/ports/driving"
	"github.com/reunite-labs/reunite/internal/logger"
)

// Ensure Monitor implements the interface.
var _ driving.MonitorService = (*Monitor)(nil)

// notifyBurst caps how many notifications may fire back to back before
// the rate limiter spaces them out.
const notifyBurst = 5

// Monitor watches for newly filed reports and turns strong pairings
// into persisted matches. On each tick it scans reports created since
// the previous scan that it has not evaluated yet, runs the real-time
// matcher for each, persists any pairing not already recorded, and
// notifies the report owner once per report. All monitor state is
// process-local; persisted matches are the durable source of truth
// across restarts.
type Monitor struct {
	reports  driven.ReportStore
	matches  driven.MatchStore
	notifier driven.Notifier
	matcher  driving.MatcherService

	interval time.Duration
	cfg      domain.MatchConfig
	limiter  *rate.Limiter

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	wg        sync.WaitGroup
	processed *processedSet
	lastScan  time.Time
}

// MonitorOption configures the monitor.
type MonitorOption func(*Monitor)

// WithTickInterval sets the scan interval.
func WithTickInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithMatchConfig sets the base matching configuration for scans.
func WithMatchConfig(cfg domain.MatchConfig) MonitorOption {
	return func(m *Monitor) {
		m.cfg = cfg
	}
}

// WithProcessedLimit bounds the processed-report cache.
func WithProcessedLimit(limit int) MonitorOption {
	return func(m *Monitor) {
		m.processed = newProcessedSet(limit)
	}
}

// NewMonitor creates an idle monitor.
func NewMonitor(
	reports driven.ReportStore,
	matches driven.MatchStore,
	notifier driven.Notifier,
	matcher driving.MatcherService,
	opts ...MonitorOption,
) *Monitor {
	m := &Monitor{
		reports:   reports,
		matches:   matches,
		notifier:  notifier,
		matcher:   matcher,
		interval:  domain.DefaultTickInterval,
		cfg:       domain.DefaultMatchConfig(),
		processed: newProcessedSet(0),
	}
	for _, opt := range opts {
		opt(m)
	}
	// One notification per second sustained keeps a burst of new
	// reports from flooding the sink.
	m.limiter = rate.NewLimiter(rate.Every(time.Second), notifyBurst)
	return m
}

// Start runs one immediate scan, then subscribes to periodic ticks.
// Calling Start while already monitoring is a safe no-op.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true
	m.stopCh = make(chan struct{})
	m.lastScan = time.Now().Add(-m.interval)
	stopCh := m.stopCh
	m.mu.Unlock()

	logger.Info("Monitor started (interval %s)", m.interval)
	m.scan(ctx)

	m.wg.Add(1)
	go m.run(ctx, stopCh)
	return nil
}

// Stop unsubscribes from ticks and waits for an in-flight scan to
// finish. No further scan is scheduled after Stop returns. Calling
// Stop while idle is a safe no-op.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	close(m.stopCh)
	m.mu.Unlock()

	m.wg.Wait()
	logger.Info("Monitor stopped")
	return nil
}

// Status reports the monitoring flag and processed-report count.
func (m *Monitor) Status() domain.MonitorStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.MonitorStatus{
		IsMonitoring:   m.running,
		ProcessedCount: m.processed.size(),
	}
}

// ClearProcessedCache forgets which reports have been evaluated.
func (m *Monitor) ClearProcessedCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed.clear()
}

// run is the tick loop.
func (m *Monitor) run(ctx context.Context, stopCh chan struct{}) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			m.scan(ctx)
		}
	}
}

// scan evaluates reports created since the previous scan window.
// Failures are isolated per report; one bad report never aborts the
// cycle, and every evaluated report lands in the processed cache so it
// is not re-scanned.
func (m *Monitor) scan(ctx context.Context) {
	m.mu.Lock()
	since := m.lastScan
	m.mu.Unlock()
	scanStart := time.Now()

	logger.Section("Monitor Scan")
	for _, kind := range []domain.ReportKind{domain.KindLost, domain.KindFound} {
		reports, err := m.reports.ListOpenReports(ctx, kind, domain.ReportFilters{CreatedAfter: since})
		if err != nil {
			logger.Error("Monitor: list %s reports: %v", kind, err)
			continue
		}
		for i := range reports {
			m.evaluate(ctx, &reports[i], false)
		}
	}

	m.mu.Lock()
	m.lastScan = scanStart
	m.mu.Unlock()
}

// ProcessAllExisting applies the scan logic once to every open report
// regardless of creation time. It bypasses the processed cache on
// purpose: backfill must reach reports an earlier incremental scan
// already touched.
func (m *Monitor) ProcessAllExisting(ctx context.Context) error {
	logger.Section("Monitor Backfill")
	for _, kind := range []domain.ReportKind{domain.KindLost, domain.KindFound} {
		reports, err := m.reports.ListOpenReports(ctx, kind, domain.ReportFilters{})
		if err != nil {
			logger.Error("Backfill: list %s reports: %v", kind, err)
			continue
		}
		for i := range reports {
			m.evaluate(ctx, &reports[i], true)
		}
	}
	return nil
}

// evaluate runs the matcher for one report, persists unseen pairings,
// and notifies the owner when new matches appeared. The report is
// marked processed regardless of outcome.
func (m *Monitor) evaluate(ctx context.Context, report *domain.Report, backfill bool) {
	m.mu.Lock()
	if !backfill && m.processed.has(report.ID) {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.processed.add(report.ID)
		m.mu.Unlock()
	}()

	cfg := m.cfg
	cfg.ExcludeOwnerID = report.OwnerID
	results, err := m.matcher.FindMatches(ctx, report.ID, cfg)
	if err != nil {
		logger.Error("Monitor: match %s: %v", report.ID, err)
		return
	}
	if len(results) == 0 {
		return
	}

	inserted := m.persistNew(ctx, report, results)
	if len(inserted) == 0 {
		return
	}

	m.notify(ctx, report, results, inserted)
}

// persistNew stores one Match per pairing not already recorded and
// returns the IDs of the inserted matches.
func (m *Monitor) persistNew(ctx context.Context, report *domain.Report, results []domain.MatchResult) []string {
	var inserted []string
	for _, res := range results {
		match := &domain.Match{
			ID:         uuid.NewString(),
			Score:      res.Score,
			Confidence: res.Confidence,
			Breakdown:  res.Breakdown,
			CreatedAt:  time.Now(),
		}
		if report.Kind == domain.KindLost {
			match.LostReportID = report.ID
			match.FoundReportID = res.Report.ID
		} else {
			match.LostReportID = res.Report.ID
			match.FoundReportID = report.ID
		}

		ok, err := m.matches.SaveIfAbsent(ctx, match)
		if err != nil {
			logger.Error("Monitor: save match %s/%s: %v", match.LostReportID, match.FoundReportID, err)
			continue
		}
		if ok {
			inserted = append(inserted, match.ID)
			logger.Info("New match %s: lost=%s found=%s score=%.3f (%s)",
				match.ID, match.LostReportID, match.FoundReportID, match.Score, match.Confidence)
		}
	}
	return inserted
}

// notify tells the report owner about the scan's matches, once per
// report with the full match list. Notification failures are logged
// and never fail the scan or the persisted matches.
func (m *Monitor) notify(ctx context.Context, report *domain.Report, results []domain.MatchResult, inserted []string) {
	if m.notifier == nil {
		return
	}
	if err := m.limiter.Wait(ctx); err != nil {
		logger.Warn("Monitor: notification rate wait: %v", err)
		return
	}
	if err := m.notifier.Notify(ctx, report, results); err != nil {
		logger.Warn("Monitor: notify for %s failed: %v", report.ID, err)
		return
	}
	for _, id := range inserted {
		if err := m.matches.MarkNotified(ctx, id); err != nil {
			logger.Warn("Monitor: mark notified %s: %v", id, err)
		}
	}
}
