package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func testRecord() *models.VerifiedRecord {
	return &models.VerifiedRecord{
		RecordID:    "rec-001",
		StudentName: "Jane Doe",
		RollNumber:  "21-CSE-017",
		CertNumber:  "CERT-2023-001",
		Issuer:      "University of Example",
		IssuedAt:    time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
		Marks:       "CGPA 9.2/10",
		Status:      models.RecordStatusActive,
		CreatedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

var upsertQ = regexp.MustCompile(`INSERT INTO verified_records .* ON CONFLICT \(record_id\) DO UPDATE SET .*;`)

func TestCreateOrUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rec := testRecord()
	mock.ExpectExec(upsertQ.String()).
		WithArgs(rec.RecordID, rec.StudentName, rec.RollNumber, rec.CertNumber, rec.Issuer,
			rec.IssuedAt, rec.Marks, rec.Status, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateOrUpdate(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateOrUpdate_DuplicateKey(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rec := testRecord()
	mock.ExpectExec(upsertQ.String()).
		WithArgs(rec.RecordID, rec.StudentName, rec.RollNumber, rec.CertNumber, rec.Issuer,
			rec.IssuedAt, rec.Marks, rec.Status, rec.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.CreateOrUpdate(context.Background(), rec)
	if !errors.Is(err, common.ErrDuplicateCertNumber) {
		t.Fatalf("want ErrDuplicateCertNumber, got %v", err)
	}
}

func TestCreateOrUpdate_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rec := testRecord()
	mock.ExpectExec(upsertQ.String()).
		WithArgs(rec.RecordID, rec.StudentName, rec.RollNumber, rec.CertNumber, rec.Issuer,
			rec.IssuedAt, rec.Marks, rec.Status, rec.CreatedAt).
		WillReturnError(errors.New("db is down"))

	if err := repo.CreateOrUpdate(context.Background(), rec); err == nil {
		t.Fatalf("want error, got nil")
	}
}

func TestSelectAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rec := testRecord()
	rows := sqlmock.NewRows([]string{
		"record_id", "student_name", "roll_number", "cert_number", "issuer", "issued_at", "marks", "status", "created_at",
	}).AddRow(rec.RecordID, rec.StudentName, rec.RollNumber, rec.CertNumber, rec.Issuer,
		rec.IssuedAt, rec.Marks, rec.Status, rec.CreatedAt)

	mock.ExpectQuery(`SELECT .* FROM verified_records`).WillReturnRows(rows)

	got, err := repo.SelectAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].RecordID != "rec-001" || got[0].Status != models.RecordStatusActive {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `UPDATE verified_records SET status=\$2 WHERE record_id=\$1`

	mock.ExpectExec(q).
		WithArgs("rec-001", models.RecordStatusRevoked).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), "rec-001", models.RecordStatusRevoked); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(q).
		WithArgs("rec-404", models.RecordStatusRevoked).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "rec-404", models.RecordStatusRevoked)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
