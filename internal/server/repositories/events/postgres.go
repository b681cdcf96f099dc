// Package events provides the PostgreSQL-backed repository for verification
// events. The alert engine's history queries and the dashboard counters both
// read from it.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certverify/internal/dbx"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// PostgresRepository implements event storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add appends one verification outcome. Events are append-only.
func (r *PostgresRepository) Add(ctx context.Context, event *models.VerificationEvent) error {
	query := `
		INSERT INTO verification_events (id, source_id, verdict, matched_record_id, student_name, issuer, overall_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.SourceID, event.Verdict, event.MatchedRecordID,
		event.StudentName, event.Issuer, event.OverallScore, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// CountVerifiedMatches counts VERIFIED events against recordID since the
// given time, from uploads other than excludeSourceID.
func (r *PostgresRepository) CountVerifiedMatches(ctx context.Context, recordID, excludeSourceID string, since time.Time) (int, error) {
	query := ` SELECT count(*) FROM verification_events
		WHERE matched_record_id=$1 AND verdict=$2 AND source_id<>$3 AND created_at>=$4
		`
	var n int
	err := r.db.QueryRowContext(ctx, query, recordID, models.VerdictVerified, excludeSourceID, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count verified matches: %w", err)
	}
	return n, nil
}

// CountRejections counts REJECTED events for the issuer/name pair since the
// given time. The comparison is case-insensitive to match index semantics.
func (r *PostgresRepository) CountRejections(ctx context.Context, issuer, studentName string, since time.Time) (int, error) {
	query := ` SELECT count(*) FROM verification_events
		WHERE lower(issuer)=lower($1) AND lower(student_name)=lower($2) AND verdict=$3 AND created_at>=$4
		`
	var n int
	err := r.db.QueryRowContext(ctx, query, issuer, studentName, models.VerdictRejected, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count rejections: %w", err)
	}
	return n, nil
}

// CountByVerdict returns per-verdict event counts since the given time.
func (r *PostgresRepository) CountByVerdict(ctx context.Context, since time.Time) (map[models.Verdict]int, error) {
	query := ` SELECT verdict, count(*) FROM verification_events WHERE created_at>=$1 GROUP BY verdict `
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	defer rows.Close()

	result := make(map[models.Verdict]int)
	for rows.Next() {
		var verdict models.Verdict
		var n int
		if err := rows.Scan(&verdict, &n); err != nil {
			return nil, err
		}
		result[verdict] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
