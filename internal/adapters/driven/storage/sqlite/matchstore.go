package sqlite

import (
	"context"
	"fmt"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
)

// matchStore implements driven.MatchStore.
type matchStore struct {
	store *Store
}

var _ driven.MatchStore = (*matchStore)(nil)

// SaveIfAbsent inserts the match unless one exists for the pair.
// The unique index on (lost_report_id, found_report_id) makes the
// check-and-insert atomic; ON CONFLICT DO NOTHING turns a losing race
// into a zero-row insert instead of an error.
func (s *matchStore) SaveIfAbsent(ctx context.Context, match *domain.Match) (bool, error) {
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO matches (id, lost_report_id, found_report_id, score,
			confidence, text_score, category_score, location_score,
			date_score, notified, contacted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (lost_report_id, found_report_id) DO NOTHING`,
		match.ID, match.LostReportID, match.FoundReportID, match.Score,
		string(match.Confidence), match.Breakdown.Text,
		match.Breakdown.Category, match.Breakdown.Location,
		match.Breakdown.Date, match.Notified, match.Contacted,
		match.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("saving match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("saving match: %w", err)
	}
	return affected > 0, nil
}

// ExistsForPair reports whether a match exists for the pair.
func (s *matchStore) ExistsForPair(ctx context.Context, lostID, foundID string) (bool, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM matches WHERE lost_report_id = ? AND found_report_id = ?",
		lostID, foundID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking pair: %w", err)
	}
	return count > 0, nil
}

// ListForReport returns all matches involving the report, newest first.
func (s *matchStore) ListForReport(ctx context.Context, reportID string) ([]domain.Match, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, lost_report_id, found_report_id, score, confidence,
			text_score, category_score, location_score, date_score,
			notified, contacted, created_at
		FROM matches
		WHERE lost_report_id = ? OR found_report_id = ?
		ORDER BY created_at DESC`, reportID, reportID)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var (
			match      domain.Match
			confidence string
		)
		err := rows.Scan(&match.ID, &match.LostReportID, &match.FoundReportID,
			&match.Score, &confidence, &match.Breakdown.Text,
			&match.Breakdown.Category, &match.Breakdown.Location,
			&match.Breakdown.Date, &match.Notified, &match.Contacted,
			&match.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		match.Confidence = domain.Confidence(confidence)
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}
	return matches, nil
}

// MarkNotified flips the notified flag on a match.
func (s *matchStore) MarkNotified(ctx context.Context, matchID string) error {
	return s.setFlag(ctx, "notified", matchID)
}

// MarkContacted flips the contacted flag on a match.
func (s *matchStore) MarkContacted(ctx context.Context, matchID string) error {
	return s.setFlag(ctx, "contacted", matchID)
}

func (s *matchStore) setFlag(ctx context.Context, column, matchID string) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE matches SET "+column+" = 1 WHERE id = ?", matchID)
	if err != nil {
		return fmt.Errorf("updating match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating match: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
