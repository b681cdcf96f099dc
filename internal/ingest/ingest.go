// Package ingest loads institution-supplied record batches into the record
// index and the persistence store. Rows are validated and applied
// independently; one bad row never aborts the batch.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/certverify/internal/extract"
	"github.com/dmitrijs2005/certverify/internal/logging"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// Index is the write surface of the record index the loader needs.
type Index interface {
	LookupExact(certNumber, issuer string) (models.VerifiedRecord, bool)
	LookupByID(recordID string) (models.VerifiedRecord, bool)
	Upsert(rec models.VerifiedRecord) error
}

// Store receives accepted rows for persistence. The loader treats a nil
// Store as index-only mode.
type Store interface {
	Save(ctx context.Context, rec models.VerifiedRecord) error
}

type Loader struct {
	index Index
	store Store
	log   logging.Logger
	now   func() time.Time
}

func NewLoader(index Index, store Store, log logging.Logger) *Loader {
	return &Loader{index: index, store: store, log: log, now: time.Now}
}

// Ingest validates and applies every row of the batch. Rows are processed in
// order against the live index state, so an in-batch duplicate is caught the
// same way a pre-existing one is. Re-ingesting an identical batch yields the
// same Accepted count with NewRecords of zero.
func (l *Loader) Ingest(ctx context.Context, rows []models.IngestRow) models.IngestResult {
	var res models.IngestResult
	for _, row := range rows {
		isNew, err := l.applyRow(ctx, row)
		if err != nil {
			res.Rejected = append(res.Rejected, models.RejectedRow{Line: row.Line, Reason: err.Error()})
			continue
		}
		res.Accepted++
		if isNew {
			res.NewRecords++
		}
	}
	l.log.Info(ctx, "batch ingested",
		"rows", len(rows), "accepted", res.Accepted, "new", res.NewRecords, "rejected", len(res.Rejected))
	return res
}

func (l *Loader) applyRow(ctx context.Context, row models.IngestRow) (isNew bool, err error) {
	if err := validateRow(row); err != nil {
		return false, err
	}
	issuedAt, err := extract.ParseDate(row.IssuedAt)
	if err != nil {
		return false, fmt.Errorf("unparseable date")
	}

	existing, found := l.index.LookupExact(row.CertNumber, row.Issuer)

	recordID := strings.TrimSpace(row.RecordID)
	if recordID == "" {
		if found {
			recordID = existing.RecordID
		} else {
			recordID = uuid.NewString()
		}
	}
	if found && existing.RecordID != recordID {
		return false, fmt.Errorf("duplicate cert_number %q for issuer %q", row.CertNumber, row.Issuer)
	}

	prev, idExists := l.index.LookupByID(recordID)

	rec := models.VerifiedRecord{
		RecordID:    recordID,
		StudentName: strings.TrimSpace(row.StudentName),
		RollNumber:  strings.TrimSpace(row.RollNumber),
		CertNumber:  strings.TrimSpace(row.CertNumber),
		Issuer:      strings.TrimSpace(row.Issuer),
		IssuedAt:    issuedAt,
		Marks:       strings.TrimSpace(row.Marks),
		Status:      models.RecordStatusActive,
		CreatedAt:   l.now(),
	}
	if idExists {
		// Records are append-only: creation time and revocation survive a
		// re-ingest of the same row.
		rec.CreatedAt = prev.CreatedAt
		rec.Status = prev.Status
	}

	if l.store != nil {
		if err := l.store.Save(ctx, rec); err != nil {
			return false, fmt.Errorf("persist record: %w", err)
		}
	}
	if err := l.index.Upsert(rec); err != nil {
		return false, err
	}
	return !idExists, nil
}

func validateRow(row models.IngestRow) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"student_name", row.StudentName},
		{"roll_number", row.RollNumber},
		{"cert_number", row.CertNumber},
		{"issuer", row.Issuer},
		{"issued_at", row.IssuedAt},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
