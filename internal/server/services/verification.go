package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/certverify/internal/aiscore"
	"github.com/dmitrijs2005/certverify/internal/alerts"
	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/dbx"
	"github.com/dmitrijs2005/certverify/internal/extract"
	"github.com/dmitrijs2005/certverify/internal/index"
	"github.com/dmitrijs2005/certverify/internal/logging"
	"github.com/dmitrijs2005/certverify/internal/match"
	"github.com/dmitrijs2005/certverify/internal/normalize"
	"github.com/dmitrijs2005/certverify/internal/ocr"
	"github.com/dmitrijs2005/certverify/internal/server/models"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/repomanager"
)

// runInTx is a seam for testing transactional writes.
var runInTx = dbx.WithTx

// VerificationService runs the full pipeline for one uploaded certificate:
// OCR, normalization, field extraction, matching, event recording, and alert
// inspection. The verdict is computed before any alert work; alerts are a
// side channel and never change it.
type VerificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	index       *index.RecordIndex
	matcher     *match.Matcher
	extractor   ocr.Extractor
	alertEngine *alerts.Engine
	scorer      aiscore.Scorer
	log         logging.Logger
	now         func() time.Time
}

func NewVerificationService(db *sql.DB, rm repomanager.RepositoryManager, ix *index.RecordIndex,
	matcher *match.Matcher, extractor ocr.Extractor, alertEngine *alerts.Engine,
	scorer aiscore.Scorer, log logging.Logger) *VerificationService {
	return &VerificationService{
		db:          db,
		repomanager: rm,
		index:       ix,
		matcher:     matcher,
		extractor:   extractor,
		alertEngine: alertEngine,
		scorer:      scorer,
		log:         log,
		now:         time.Now,
	}
}

// Verify classifies one certificate image. OCR and extraction failures
// surface as REJECTED results with reasons, not errors; only systemic
// failures (for example, the index being unavailable) return an error.
func (s *VerificationService) Verify(ctx context.Context, sourceID string, imageBytes []byte) (models.MatchResult, []models.Alert, error) {
	if !s.index.Ready() {
		return models.MatchResult{}, nil, fmt.Errorf("%w: record index not loaded", common.ErrIndexUnavailable)
	}
	if sourceID == "" {
		sourceID = uuid.NewString()
	}
	log := s.log.With("source_id", sourceID)

	cand := models.ExtractedCandidate{SourceID: sourceID}
	var result models.MatchResult

	ocrRes, err := s.extractor.ExtractRawText(ctx, imageBytes)
	switch {
	case errors.Is(err, common.ErrExtractionFailed):
		log.Info(ctx, "image unreadable", "error", err)
		result = rejectedResult(match.ReasonUnreadableInput)
	case err != nil:
		return models.MatchResult{}, nil, fmt.Errorf("ocr: %w", err)
	default:
		result = s.classify(ctx, log, &cand, ocrRes.Text, ocrRes.TokenConfidence)
	}

	result, raised := s.complete(ctx, log, cand, result)
	return result, raised, nil
}

// VerifyText runs the pipeline on text that was already extracted upstream,
// skipping the OCR step. No per-token confidences are available on this
// path, so extraction confidence rests on the pattern scores alone.
func (s *VerificationService) VerifyText(ctx context.Context, sourceID, rawText string) (models.MatchResult, []models.Alert, error) {
	if !s.index.Ready() {
		return models.MatchResult{}, nil, fmt.Errorf("%w: record index not loaded", common.ErrIndexUnavailable)
	}
	if sourceID == "" {
		sourceID = uuid.NewString()
	}
	log := s.log.With("source_id", sourceID)

	cand := models.ExtractedCandidate{SourceID: sourceID}
	result := s.classify(ctx, log, &cand, rawText, nil)

	result, raised := s.complete(ctx, log, cand, result)
	return result, raised, nil
}

func (s *VerificationService) classify(ctx context.Context, log logging.Logger,
	cand *models.ExtractedCandidate, rawText string, tokenConf map[string]float64) models.MatchResult {
	cand.RawText = rawText
	normalized := normalize.Normalize(rawText)
	fields, err := extract.Extract(normalized, tokenConf)
	if errors.Is(err, common.ErrExtractionIncomplete) {
		log.Info(ctx, "no fields recoverable")
		return rejectedResult("no fields recoverable from text")
	}
	cand.Fields = fields
	return s.matcher.Match(ctx, *cand)
}

func (s *VerificationService) complete(ctx context.Context, log logging.Logger,
	cand models.ExtractedCandidate, result models.MatchResult) (models.MatchResult, []models.Alert) {
	s.attachAdvisoryScore(ctx, cand, &result)
	raised := s.alertEngine.Inspect(ctx, cand, result)
	s.persistOutcome(ctx, log, cand, result, raised)

	log.Info(ctx, "verification complete",
		"verdict", result.Verdict, "score", result.OverallScore,
		"matched_record_id", result.MatchedRecordID, "alerts", len(raised))
	return result, raised
}

// RevokeRecord transitions a record to revoked in both the store and the
// live index. The record keeps resolving; it just can never verify again.
func (s *VerificationService) RevokeRecord(ctx context.Context, recordID string) error {
	repo := s.repomanager.Records(s.db)
	if err := repo.UpdateStatus(ctx, recordID, models.RecordStatusRevoked); err != nil {
		return err
	}
	if err := s.index.Revoke(recordID); err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	s.log.Info(ctx, "record revoked", "record_id", recordID)
	return nil
}

// ReloadIndex rebuilds the in-memory index from the record store.
func (s *VerificationService) ReloadIndex(ctx context.Context) (int, error) {
	repo := s.repomanager.Records(s.db)
	if err := s.index.ReloadFrom(ctx, recordLoader{repo: repo}); err != nil {
		return 0, err
	}
	n := s.index.Len()
	s.log.Info(ctx, "index reloaded", "records", n)
	return n, nil
}

// recordLoader adapts the records repository to the index reload contract.
type recordLoader struct {
	repo interface {
		SelectAll(ctx context.Context) ([]models.VerifiedRecord, error)
	}
}

func (l recordLoader) LoadAll(ctx context.Context) ([]models.VerifiedRecord, error) {
	return l.repo.SelectAll(ctx)
}

func (s *VerificationService) attachAdvisoryScore(ctx context.Context, cand models.ExtractedCandidate, result *models.MatchResult) {
	p, ok, err := s.scorer.Score(ctx, cand, *result)
	if err != nil {
		s.log.Warn(ctx, "authenticity scorer failed", "error", err)
		return
	}
	if ok {
		result.Reasons = append(result.Reasons, fmt.Sprintf("advisory authenticity score %.2f", p))
	}
}

// persistOutcome writes the event and its alerts in one transaction, so the
// history the alert rules query never sees a half-written request. A store
// failure is logged and the verdict stands; history-based rules degrade
// until the store recovers.
func (s *VerificationService) persistOutcome(ctx context.Context, log logging.Logger,
	cand models.ExtractedCandidate, result models.MatchResult, raised []models.Alert) {
	event := &models.VerificationEvent{
		ID:              uuid.NewString(),
		SourceID:        cand.SourceID,
		Verdict:         result.Verdict,
		MatchedRecordID: result.MatchedRecordID,
		OverallScore:    result.OverallScore,
		CreatedAt:       s.now(),
	}
	if fv, ok := cand.Fields.Get(models.FieldStudentName); ok {
		event.StudentName = fv.Value
	}
	if fv, ok := cand.Fields.Get(models.FieldIssuer); ok {
		event.Issuer = fv.Value
	}

	err := runInTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Events(tx).Add(ctx, event); err != nil {
			return fmt.Errorf("record event: %w", err)
		}
		alertRepo := s.repomanager.Alerts(tx)
		for i := range raised {
			if err := alertRepo.Add(ctx, &raised[i]); err != nil {
				return fmt.Errorf("persist %s alert: %w", raised[i].Type, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error(ctx, "failed to persist verification outcome", "error", err)
	}
}

func rejectedResult(reason string) models.MatchResult {
	return models.MatchResult{
		Verdict:     models.VerdictRejected,
		FieldScores: map[models.Field]float64{},
		Reasons:     []string{reason},
	}
}
