// Package records provides the PostgreSQL-backed repository for verified
// record persistence. The in-memory record index is a view over this store.
package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/dbx"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// PostgresRepository implements record storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

// CreateOrUpdate upserts a record by record ID. A different record already
// holding the same (issuer, cert_number) key trips the unique index and is
// reported as common.ErrDuplicateCertNumber.
func (r *PostgresRepository) CreateOrUpdate(ctx context.Context, rec *models.VerifiedRecord) error {
	query := `
		INSERT INTO verified_records (record_id, student_name, roll_number, cert_number, issuer, issued_at, marks, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (record_id)
		DO UPDATE SET
			student_name = EXCLUDED.student_name,
			roll_number = EXCLUDED.roll_number,
			cert_number = EXCLUDED.cert_number,
			issuer = EXCLUDED.issuer,
			issued_at = EXCLUDED.issued_at,
			marks = EXCLUDED.marks,
			status = EXCLUDED.status;
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.RecordID, rec.StudentName, rec.RollNumber, rec.CertNumber, rec.Issuer,
		rec.IssuedAt, rec.Marks, rec.Status, rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrDuplicateCertNumber
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SelectAll returns every record. The index reload path is the only caller;
// the table is the system of record for index rebuilds.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]models.VerifiedRecord, error) {
	query := ` SELECT record_id, student_name, roll_number, cert_number, issuer, issued_at, marks, status, created_at FROM verified_records `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.VerifiedRecord
	for rows.Next() {
		var item models.VerifiedRecord
		if err := rows.Scan(
			&item.RecordID, &item.StudentName, &item.RollNumber, &item.CertNumber,
			&item.Issuer, &item.IssuedAt, &item.Marks, &item.Status, &item.CreatedAt,
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

// UpdateStatus transitions a record's lifecycle status. Returns
// common.ErrNotFound when no record has the given ID.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, recordID string, status models.RecordStatus) error {
	query := ` UPDATE verified_records SET status=$2 WHERE record_id=$1 `
	res, err := r.db.ExecContext(ctx, query, recordID, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
