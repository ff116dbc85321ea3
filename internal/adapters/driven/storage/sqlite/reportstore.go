package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reunite-labs/reunite/internal/core/domain"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
)

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

const reportColumns = `id, kind, title, description, item_name, category,
	location, event_date, owner_id, created_at, resolved`

// SaveReport stores or updates a report.
func (s *reportStore) SaveReport(ctx context.Context, report *domain.Report) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reports (id, kind, title, description, item_name,
			category, location, event_date, owner_id, created_at, resolved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			item_name = excluded.item_name,
			category = excluded.category,
			location = excluded.location,
			event_date = excluded.event_date,
			resolved = excluded.resolved`,
		report.ID, string(report.Kind), report.Title, report.Description,
		report.ItemName, report.Category, report.Location,
		nullableTime(report.EventDate), report.OwnerID,
		report.CreatedAt, report.Resolved,
	)
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by ID.
func (s *reportStore) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+reportColumns+" FROM reports WHERE id = ?", id)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}
	return report, nil
}

// ListOpenReports returns unresolved reports of one kind.
func (s *reportStore) ListOpenReports(ctx context.Context, kind domain.ReportKind, filters domain.ReportFilters) ([]domain.Report, error) {
	query := "SELECT " + reportColumns + " FROM reports WHERE kind = ? AND resolved = 0"
	args := []any{string(kind)}

	if filters.Category != "" {
		query += " AND category = ?"
		args = append(args, filters.Category)
	}
	if filters.ExcludeOwnerID != "" {
		query += " AND owner_id != ?"
		args = append(args, filters.ExcludeOwnerID)
	}
	if !filters.CreatedAfter.IsZero() {
		query += " AND created_at > ?"
		args = append(args, filters.CreatedAfter)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

// MarkResolved flips a report's resolved flag.
func (s *reportStore) MarkResolved(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE reports SET resolved = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("resolving report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolving report: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanReport reads one report row.
func scanReport(row scanner) (*domain.Report, error) {
	var (
		report    domain.Report
		kind      string
		eventDate sql.NullTime
	)
	err := row.Scan(&report.ID, &kind, &report.Title, &report.Description,
		&report.ItemName, &report.Category, &report.Location, &eventDate,
		&report.OwnerID, &report.CreatedAt, &report.Resolved)
	if err != nil {
		return nil, err
	}
	report.Kind = domain.ReportKind(strings.ToLower(kind))
	if eventDate.Valid {
		report.EventDate = eventDate.Time
	}
	return &report, nil
}

// nullableTime maps the zero time to NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
