package alertstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

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

func TestAdd(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	alert := &models.Alert{
		ID:              "alert-1",
		Type:            models.AlertDuplicateCertNumber,
		Severity:        models.SeverityHigh,
		RelatedRecordID: "rec-001",
		RelatedSourceID: "upload-2",
		Reason:          "record verified from 2 sources within window",
		CreatedAt:       time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`INSERT INTO alerts .*`).
		WithArgs(alert.ID, alert.Type, alert.Severity, alert.RelatedRecordID,
			alert.RelatedSourceID, alert.Reason, alert.CreatedAt, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Add(context.Background(), alert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdd_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO alerts .*`).
		WillReturnError(errors.New("db is down"))

	if err := repo.Add(context.Background(), &models.Alert{ID: "alert-1"}); err == nil {
		t.Fatalf("want error, got nil")
	}
}

func TestSelectUnresolved(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "alert_type", "severity", "related_record_id", "related_source_id", "reason", "created_at", "resolved",
	}).
		AddRow("alert-1", models.AlertRevokedRecordHit, models.SeverityHigh, "rec-001", "upload-1", "revoked record presented", created, false).
		AddRow("alert-2", models.AlertHighRejectionRate, models.SeverityMedium, "", "upload-2", "6 rejections", created.Add(time.Minute), false)

	mock.ExpectQuery(`SELECT .* FROM alerts\s+WHERE resolved=FALSE ORDER BY created_at LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(rows)

	got, err := repo.SelectUnresolved(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 alerts, got %d", len(got))
	}
	if got[0].ID != "alert-1" || got[0].Type != models.AlertRevokedRecordHit {
		t.Fatalf("unexpected first alert: %+v", got[0])
	}
	if got[1].Resolved {
		t.Fatalf("unresolved query returned a resolved alert")
	}
}

func TestCountUnresolved(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM alerts WHERE resolved=FALSE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountUnresolved(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Fatalf("want 7, got %d", n)
	}
}
