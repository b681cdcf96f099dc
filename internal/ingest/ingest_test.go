package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/certverify/internal/index"
	"github.com/dmitrijs2005/certverify/internal/logging"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

type memStore struct {
	saved map[string]models.VerifiedRecord
	err   error
}

func newMemStore() *memStore {
	return &memStore{saved: make(map[string]models.VerifiedRecord)}
}

func (s *memStore) Save(ctx context.Context, rec models.VerifiedRecord) error {
	if s.err != nil {
		return s.err
	}
	s.saved[rec.RecordID] = rec
	return nil
}

func (s *memStore) LoadAll(ctx context.Context) ([]models.VerifiedRecord, error) {
	out := make([]models.VerifiedRecord, 0, len(s.saved))
	for _, rec := range s.saved {
		out = append(out, rec)
	}
	return out, nil
}

func batchRows() []models.IngestRow {
	return []models.IngestRow{
		{Line: 1, StudentName: "Jane Doe", RollNumber: "21-CSE-017", CertNumber: "CERT-2023-001", Issuer: "University of Example", IssuedAt: "2023-06-15"},
		{Line: 2, StudentName: "John Roe", RollNumber: "21-CSE-018", CertNumber: "CERT-2023-002", Issuer: "University of Example", IssuedAt: "15/06/2023"},
		{Line: 3, StudentName: "Mary Major", RollNumber: "21-CSE-019", CertNumber: "CERT-2023-003", Issuer: "University of Example", IssuedAt: "not a date"},
		{Line: 4, StudentName: "Amit Rao", RollNumber: "21-CSE-020", CertNumber: "CERT-2023-004", Issuer: "University of Example", IssuedAt: "15 June 2023"},
		{Line: 5, StudentName: "Li Wei", RollNumber: "21-CSE-021", CertNumber: "CERT-2023-005", Issuer: "University of Example", IssuedAt: "2023-06-15", Marks: "CGPA 9.2/10"},
	}
}

func TestIngest_RejectsRowsIndividually(t *testing.T) {
	ix := index.NewRecordIndex()
	store := newMemStore()
	l := NewLoader(ix, store, logging.Discard())

	res := l.Ingest(context.Background(), batchRows())

	assert.Equal(t, 4, res.Accepted)
	assert.Equal(t, 4, res.NewRecords)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 3, res.Rejected[0].Line)
	assert.Equal(t, "unparseable date", res.Rejected[0].Reason)

	// Every accepted row is queryable and persisted.
	for _, cert := range []string{"CERT-2023-001", "CERT-2023-002", "CERT-2023-004", "CERT-2023-005"} {
		_, ok := ix.LookupExact(cert, "University of Example")
		assert.True(t, ok, cert)
	}
	assert.Len(t, store.saved, 4)
}

func TestIngest_Idempotent(t *testing.T) {
	ix := index.NewRecordIndex()
	l := NewLoader(ix, newMemStore(), logging.Discard())

	first := l.Ingest(context.Background(), batchRows())
	second := l.Ingest(context.Background(), batchRows())

	assert.Equal(t, first.Accepted, second.Accepted)
	assert.Equal(t, 0, second.NewRecords)
	assert.Equal(t, 4, ix.Len())
}

func TestIngest_IdempotentAcrossRuns(t *testing.T) {
	store := newMemStore()
	ix := index.NewRecordIndex()
	first := NewLoader(ix, store, logging.Discard()).Ingest(context.Background(), batchRows())

	// A later run starts from a fresh in-memory index warmed from the store,
	// the way the one-shot ingest command does. The replayed batch must
	// adopt the existing record IDs instead of minting new ones and
	// colliding on (issuer, cert_number).
	ix2 := index.NewRecordIndex()
	require.NoError(t, ix2.ReloadFrom(context.Background(), store))
	second := NewLoader(ix2, store, logging.Discard()).Ingest(context.Background(), batchRows())

	assert.Equal(t, first.Accepted, second.Accepted)
	assert.Equal(t, 0, second.NewRecords)
	assert.Len(t, store.saved, 4)
}

func TestIngest_MissingFields(t *testing.T) {
	ix := index.NewRecordIndex()
	l := NewLoader(ix, nil, logging.Discard())

	res := l.Ingest(context.Background(), []models.IngestRow{
		{Line: 1, StudentName: "Jane Doe", IssuedAt: "2023-06-15"},
	})

	assert.Equal(t, 0, res.Accepted)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "missing required field(s): roll_number, cert_number, issuer", res.Rejected[0].Reason)
}

func TestIngest_DuplicateCertNumberWithinIssuer(t *testing.T) {
	ix := index.NewRecordIndex()
	l := NewLoader(ix, nil, logging.Discard())

	res := l.Ingest(context.Background(), []models.IngestRow{
		{Line: 1, RecordID: "rec-001", StudentName: "Jane Doe", RollNumber: "r1", CertNumber: "CERT-1", Issuer: "U", IssuedAt: "2023-06-15"},
		{Line: 2, RecordID: "rec-002", StudentName: "John Roe", RollNumber: "r2", CertNumber: "CERT-1", Issuer: "U", IssuedAt: "2023-06-15"},
	})

	assert.Equal(t, 1, res.Accepted)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 2, res.Rejected[0].Line)
	assert.Contains(t, res.Rejected[0].Reason, "duplicate cert_number")
	assert.Equal(t, 1, ix.Len())
}

func TestIngest_SameKeyAdoptsExistingRecordID(t *testing.T) {
	ix := index.NewRecordIndex()
	l := NewLoader(ix, nil, logging.Discard())

	row := models.IngestRow{Line: 1, StudentName: "Jane Doe", RollNumber: "r1", CertNumber: "CERT-1", Issuer: "U", IssuedAt: "2023-06-15"}
	l.Ingest(context.Background(), []models.IngestRow{row})
	before, _ := ix.LookupExact("CERT-1", "U")

	// The same row without an explicit record_id must update in place, not
	// mint a second record under a fresh ID.
	l.Ingest(context.Background(), []models.IngestRow{row})
	after, _ := ix.LookupExact("CERT-1", "U")

	assert.Equal(t, before.RecordID, after.RecordID)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, 1, ix.Len())
}

func TestIngest_ReingestKeepsRevokedStatus(t *testing.T) {
	ix := index.NewRecordIndex()
	l := NewLoader(ix, nil, logging.Discard())

	row := models.IngestRow{Line: 1, RecordID: "rec-001", StudentName: "Jane Doe", RollNumber: "r1", CertNumber: "CERT-1", Issuer: "U", IssuedAt: "2023-06-15"}
	l.Ingest(context.Background(), []models.IngestRow{row})
	require.NoError(t, ix.Revoke("rec-001"))

	l.Ingest(context.Background(), []models.IngestRow{row})

	got, ok := ix.LookupByID("rec-001")
	require.True(t, ok)
	assert.Equal(t, models.RecordStatusRevoked, got.Status)
}

func TestIngest_StoreFailureRejectsRow(t *testing.T) {
	ix := index.NewRecordIndex()
	store := newMemStore()
	store.err = errors.New("db down")
	l := NewLoader(ix, store, logging.Discard())

	res := l.Ingest(context.Background(), batchRows()[:1])

	assert.Equal(t, 0, res.Accepted)
	require.Len(t, res.Rejected, 1)
	assert.Contains(t, res.Rejected[0].Reason, "persist record")
	assert.Equal(t, 0, ix.Len())
}

func TestParseCSV(t *testing.T) {
	in := strings.TrimSpace(`
record_id,student_name,roll_number,cert_number,issuer,issued_at,marks
,Jane Doe,21-CSE-017,CERT-2023-001,University of Example,2023-06-15,
rec-002,John Roe,21-CSE-018,CERT-2023-002,University of Example,15/06/2023,CGPA 8.1/10
`)
	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Line)
	assert.Empty(t, rows[0].RecordID)
	assert.Equal(t, "Jane Doe", rows[0].StudentName)
	assert.Equal(t, "CERT-2023-001", rows[0].CertNumber)

	assert.Equal(t, 2, rows[1].Line)
	assert.Equal(t, "rec-002", rows[1].RecordID)
	assert.Equal(t, "CGPA 8.1/10", rows[1].Marks)
}

func TestParseCSV_HeaderValidation(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("student_name,roll_number\nJane,21"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cert_number")

	_, err = ParseCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty batch")
}

func TestParseCSV_ShortRowStillParses(t *testing.T) {
	in := "student_name,roll_number,cert_number,issuer,issued_at\nJane Doe,21-CSE-017\n"
	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].CertNumber)
}
