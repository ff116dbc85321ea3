// Package logging provides a notification sink that writes match
// notifications to the log. It stands in for a real delivery channel
// (email, push), which is outside the engine's scope.
package logging

import (
	"context"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
	"github.com/reunite-labs/reunite/internal/logger"
)

// Ensure Notifier implements the interface.
var _ driven.Notifier = (*Notifier)(nil)

// Notifier logs notifications instead of delivering them.
type Notifier struct{}

// New creates a logging notifier.
func New() *Notifier {
	return &Notifier{}
}

// Notify logs the match list for the report's owner.
func (n *Notifier) Notify(_ context.Context, report *domain.Report, matches []domain.MatchResult) error {
	logger.Info("Notify owner=%s report=%s (%s): %d match(es)",
		report.OwnerID, report.ID, report.Title, len(matches))
	for _, m := range matches {
		logger.Info("  %s %q score=%.3f confidence=%s",
			m.Report.ID, m.Report.Title, m.Score, m.Confidence)
	}
	return nil
}
