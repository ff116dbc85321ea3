package driving

import (
	"context"

	"github.com/reunite-labs/reunite/internal/core/domain"
)

// MonitorService controls the background match monitor.
type MonitorService interface {
	// Start runs one immediate scan and subscribes to periodic ticks.
	// Calling Start while monitoring is a safe no-op.
	Start(ctx context.Context) error

	// Stop unsubscribes from ticks. No further scan is scheduled after
	// Stop returns; an in-flight scan is allowed to complete.
	// Calling Stop while idle is a safe no-op.
	Stop() error

	// Status reports the monitoring flag and processed-report count.
	Status() domain.MonitorStatus

	// ProcessAllExisting applies the scan logic once to every open
	// report regardless of creation time. Used for cold-start backfill;
	// it bypasses the processed cache deliberately.
	ProcessAllExisting(ctx context.Context) error

	// ClearProcessedCache forgets which reports have been evaluated.
	ClearProcessedCache()
}
