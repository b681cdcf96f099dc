package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/certverify/internal/aiscore"
	"github.com/dmitrijs2005/certverify/internal/alerts"
	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/dbx"
	"github.com/dmitrijs2005/certverify/internal/index"
	"github.com/dmitrijs2005/certverify/internal/logging"
	"github.com/dmitrijs2005/certverify/internal/match"
	"github.com/dmitrijs2005/certverify/internal/ocr"
	"github.com/dmitrijs2005/certverify/internal/server/models"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/alertstore"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/events"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/records"
)

type fakeExtractor struct {
	result ocr.Result
	err    error
}

func (f *fakeExtractor) ExtractRawText(ctx context.Context, imageBytes []byte) (ocr.Result, error) {
	return f.result, f.err
}

type fakeRecordsRepo struct {
	records   []models.VerifiedRecord
	statusErr error
	updated   map[string]models.RecordStatus
}

func (f *fakeRecordsRepo) CreateOrUpdate(ctx context.Context, rec *models.VerifiedRecord) error {
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeRecordsRepo) SelectAll(ctx context.Context) ([]models.VerifiedRecord, error) {
	return f.records, nil
}

func (f *fakeRecordsRepo) UpdateStatus(ctx context.Context, recordID string, status models.RecordStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	if f.updated == nil {
		f.updated = make(map[string]models.RecordStatus)
	}
	f.updated[recordID] = status
	return nil
}

type fakeEventsRepo struct {
	added           []models.VerificationEvent
	verifiedMatches int
	rejections      int
	addErr          error
}

func (f *fakeEventsRepo) Add(ctx context.Context, event *models.VerificationEvent) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, *event)
	return nil
}

func (f *fakeEventsRepo) CountVerifiedMatches(ctx context.Context, recordID, excludeSourceID string, since time.Time) (int, error) {
	return f.verifiedMatches, nil
}

func (f *fakeEventsRepo) CountRejections(ctx context.Context, issuer, studentName string, since time.Time) (int, error) {
	return f.rejections, nil
}

func (f *fakeEventsRepo) CountByVerdict(ctx context.Context, since time.Time) (map[models.Verdict]int, error) {
	out := make(map[models.Verdict]int)
	for _, e := range f.added {
		out[e.Verdict]++
	}
	return out, nil
}

type fakeAlertsRepo struct {
	added []models.Alert
}

func (f *fakeAlertsRepo) Add(ctx context.Context, alert *models.Alert) error {
	f.added = append(f.added, *alert)
	return nil
}

func (f *fakeAlertsRepo) SelectUnresolved(ctx context.Context, limit int) ([]models.Alert, error) {
	return f.added, nil
}

func (f *fakeAlertsRepo) CountUnresolved(ctx context.Context) (int, error) {
	return len(f.added), nil
}

type fakeRepoManager struct {
	recordsRepo *fakeRecordsRepo
	eventsRepo  *fakeEventsRepo
	alertsRepo  *fakeAlertsRepo
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Records(db dbx.DBTX) records.Repository             { return f.recordsRepo }
func (f *fakeRepoManager) Events(db dbx.DBTX) events.Repository               { return f.eventsRepo }
func (f *fakeRepoManager) Alerts(db dbx.DBTX) alertstore.Repository           { return f.alertsRepo }

const scanText = `University of Example
This is to certify that JANE DOE has been awarded the degree
Roll No: 21-CSE-017
Cert No: CERT-2O23-OO1
Issued on 30/06/2023`

func indexedRecord() models.VerifiedRecord {
	return models.VerifiedRecord{
		RecordID:    "rec-001",
		StudentName: "Jane Doe",
		RollNumber:  "21-CSE-017",
		CertNumber:  "CERT-2023-001",
		Issuer:      "University of Example",
		IssuedAt:    time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
		Status:      models.RecordStatusActive,
	}
}

type verificationFixture struct {
	svc *VerificationService
	rm  *fakeRepoManager
	ix  *index.RecordIndex
}

func newVerificationFixture(t *testing.T, extractor ocr.Extractor) *verificationFixture {
	t.Helper()
	rm := &fakeRepoManager{
		recordsRepo: &fakeRecordsRepo{records: []models.VerifiedRecord{indexedRecord()}},
		eventsRepo:  &fakeEventsRepo{},
		alertsRepo:  &fakeAlertsRepo{},
	}
	ix := index.NewRecordIndex()
	require.NoError(t, ix.ReloadFrom(context.Background(), recordLoader{repo: rm.recordsRepo}))

	// No real database behind the fakes; run the transactional body directly.
	origTx := runInTx
	runInTx = func(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(context.Context, dbx.DBTX) error) error {
		return fn(ctx, nil)
	}
	t.Cleanup(func() { runInTx = origTx })

	matcher := match.New(ix, match.DefaultConfig())
	engine := alerts.NewEngine(rm.eventsRepo, alerts.DefaultConfig(), logging.Discard())
	svc := NewVerificationService(nil, rm, ix, matcher, extractor, engine, aiscore.NoOp{}, logging.Discard())
	return &verificationFixture{svc: svc, rm: rm, ix: ix}
}

func TestVerify_HappyPath(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{result: ocr.Result{Text: scanText}})

	result, raised, err := fx.svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.NoError(t, err)

	// The OCR-damaged cert number normalizes back to the indexed one.
	assert.Equal(t, models.VerdictVerified, result.Verdict)
	assert.Equal(t, "rec-001", result.MatchedRecordID)
	assert.GreaterOrEqual(t, result.OverallScore, 0.90)
	assert.Empty(t, raised)

	require.Len(t, fx.rm.eventsRepo.added, 1)
	event := fx.rm.eventsRepo.added[0]
	assert.Equal(t, "upload-1", event.SourceID)
	assert.Equal(t, models.VerdictVerified, event.Verdict)
	assert.Equal(t, "rec-001", event.MatchedRecordID)
	assert.Equal(t, "jane doe", event.StudentName)
}

func TestVerifyText_SkipsOCR(t *testing.T) {
	// A nil extractor proves the OCR step is never touched on this path.
	fx := newVerificationFixture(t, nil)

	result, _, err := fx.svc.VerifyText(context.Background(), "upload-1", scanText)
	require.NoError(t, err)

	assert.Equal(t, models.VerdictVerified, result.Verdict)
	assert.Equal(t, "rec-001", result.MatchedRecordID)
	require.Len(t, fx.rm.eventsRepo.added, 1)
}

func TestVerify_ColdIndexIsUnavailable(t *testing.T) {
	rm := &fakeRepoManager{
		recordsRepo: &fakeRecordsRepo{},
		eventsRepo:  &fakeEventsRepo{},
		alertsRepo:  &fakeAlertsRepo{},
	}
	ix := index.NewRecordIndex()

	origTx := runInTx
	runInTx = func(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(context.Context, dbx.DBTX) error) error {
		return fn(ctx, nil)
	}
	t.Cleanup(func() { runInTx = origTx })

	matcher := match.New(ix, match.DefaultConfig())
	engine := alerts.NewEngine(rm.eventsRepo, alerts.DefaultConfig(), logging.Discard())
	extractor := &fakeExtractor{result: ocr.Result{Text: scanText}}
	svc := NewVerificationService(nil, rm, ix, matcher, extractor, engine, aiscore.NoOp{}, logging.Discard())

	// Until a reload succeeds the service cannot tell a missing record from
	// an unloaded store view, so both entry points refuse to classify.
	_, _, err := svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.ErrorIs(t, err, common.ErrIndexUnavailable)
	_, _, err = svc.VerifyText(context.Background(), "upload-1", scanText)
	require.ErrorIs(t, err, common.ErrIndexUnavailable)
	assert.Empty(t, rm.eventsRepo.added)

	// A successful reload, even of an empty store, makes verdicts
	// authoritative again.
	_, err = svc.ReloadIndex(context.Background())
	require.NoError(t, err)

	result, _, err := svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, models.VerdictRejected, result.Verdict)
	require.Len(t, rm.eventsRepo.added, 1)
}

func TestVerify_UnreadableImageIsRejectedNotError(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{
		err: fmt.Errorf("%w: no text recognized", common.ErrExtractionFailed),
	})

	result, _, err := fx.svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, models.VerdictRejected, result.Verdict)
	assert.Empty(t, result.MatchedRecordID)
	assert.Contains(t, result.Reasons, match.ReasonUnreadableInput)

	// The rejection is still recorded for rate rules.
	require.Len(t, fx.rm.eventsRepo.added, 1)
	assert.Equal(t, models.VerdictRejected, fx.rm.eventsRepo.added[0].Verdict)
}

func TestVerify_NoFieldsRecoverable(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{result: ocr.Result{Text: "lorem ipsum dolor"}})

	result, _, err := fx.svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, models.VerdictRejected, result.Verdict)
	assert.Contains(t, result.Reasons, "no fields recoverable from text")
}

func TestVerify_OtherOCRErrorPropagates(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{err: errors.New("tesseract misconfigured")})

	_, _, err := fx.svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.Error(t, err)
	assert.Empty(t, fx.rm.eventsRepo.added)
}

func TestVerify_DuplicateAlertRaisedAndPersisted(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{result: ocr.Result{Text: scanText}})
	fx.rm.eventsRepo.verifiedMatches = 1

	result, raised, err := fx.svc.Verify(context.Background(), "upload-2", []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, models.VerdictVerified, result.Verdict)
	require.Len(t, raised, 1)
	assert.Equal(t, models.AlertDuplicateCertNumber, raised[0].Type)
	require.Len(t, fx.rm.alertsRepo.added, 1)
}

func TestVerify_RevokedRecordFlaggedWithAlert(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{result: ocr.Result{Text: scanText}})
	require.NoError(t, fx.ix.Revoke("rec-001"))

	result, raised, err := fx.svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, models.VerdictFlagged, result.Verdict)
	require.Len(t, raised, 1)
	assert.Equal(t, models.AlertRevokedRecordHit, raised[0].Type)
}

func TestVerify_GeneratesSourceIDWhenMissing(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{result: ocr.Result{Text: scanText}})

	_, _, err := fx.svc.Verify(context.Background(), "", []byte("img"))
	require.NoError(t, err)

	require.Len(t, fx.rm.eventsRepo.added, 1)
	assert.NotEmpty(t, fx.rm.eventsRepo.added[0].SourceID)
}

func TestVerify_EventStoreFailureDoesNotChangeVerdict(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{result: ocr.Result{Text: scanText}})
	fx.rm.eventsRepo.addErr = errors.New("db down")

	result, _, err := fx.svc.Verify(context.Background(), "upload-1", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, models.VerdictVerified, result.Verdict)
}

func TestRevokeRecord(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{})

	require.NoError(t, fx.svc.RevokeRecord(context.Background(), "rec-001"))

	assert.Equal(t, models.RecordStatusRevoked, fx.rm.recordsRepo.updated["rec-001"])
	got, ok := fx.ix.LookupByID("rec-001")
	require.True(t, ok)
	assert.Equal(t, models.RecordStatusRevoked, got.Status)
}

func TestRevokeRecord_NotFound(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{})
	fx.rm.recordsRepo.statusErr = common.ErrNotFound

	err := fx.svc.RevokeRecord(context.Background(), "rec-404")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestReloadIndex(t *testing.T) {
	fx := newVerificationFixture(t, &fakeExtractor{})
	fx.rm.recordsRepo.records = []models.VerifiedRecord{
		indexedRecord(),
		{RecordID: "rec-002", StudentName: "John Roe", RollNumber: "r2", CertNumber: "CERT-2", Issuer: "U", IssuedAt: time.Now()},
	}

	n, err := fx.svc.ReloadIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, fx.ix.Len())
}
