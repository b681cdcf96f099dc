// Package alertstore provides the PostgreSQL-backed repository for alerts.
// Alerts are written by the verification pipeline and resolved by external
// review tooling, never by this service.
package alertstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/certverify/internal/dbx"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// PostgresRepository implements alert storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add persists one alert.
func (r *PostgresRepository) Add(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (id, alert_type, severity, related_record_id, related_source_id, reason, created_at, resolved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.ExecContext(ctx, query,
		alert.ID, alert.Type, alert.Severity, alert.RelatedRecordID,
		alert.RelatedSourceID, alert.Reason, alert.CreatedAt, alert.Resolved)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SelectUnresolved returns the oldest unresolved alerts, up to limit.
func (r *PostgresRepository) SelectUnresolved(ctx context.Context, limit int) ([]models.Alert, error) {
	query := ` SELECT id, alert_type, severity, related_record_id, related_source_id, reason, created_at, resolved FROM alerts
		WHERE resolved=FALSE ORDER BY created_at LIMIT $1
		`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select alerts: %w", err)
	}
	defer rows.Close()

	var result []models.Alert
	for rows.Next() {
		var item models.Alert
		if err := rows.Scan(
			&item.ID, &item.Type, &item.Severity, &item.RelatedRecordID,
			&item.RelatedSourceID, &item.Reason, &item.CreatedAt, &item.Resolved,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountUnresolved returns the number of unresolved alerts.
func (r *PostgresRepository) CountUnresolved(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, ` SELECT count(*) FROM alerts WHERE resolved=FALSE `).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return n, nil
}
