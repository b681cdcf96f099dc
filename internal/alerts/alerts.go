// Package alerts inspects verification outcomes for suspicious patterns and
// raises side-channel alerts. Alerts never change a verdict; they feed the
// review queue.
package alerts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/certverify/internal/logging"
	"github.com/dmitrijs2005/certverify/internal/match"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// History supplies the recent-event counts the rules need. The verification
// event repository implements it.
type History interface {
	// CountVerifiedMatches counts VERIFIED events against recordID since the
	// given time, excluding events from sourceID itself.
	CountVerifiedMatches(ctx context.Context, recordID, excludeSourceID string, since time.Time) (int, error)

	// CountRejections counts REJECTED events for the issuer/name pair since
	// the given time.
	CountRejections(ctx context.Context, issuer, studentName string, since time.Time) (int, error)
}

// Config carries the tunable parameters of the rule set.
type Config struct {
	// Window is how far back history rules look.
	Window time.Duration
	// RejectionLimit is the REJECTED count per issuer/name pair above which
	// HIGH_REJECTION_RATE fires.
	RejectionLimit int
	// LowConfidenceFloor is the cert_number extraction confidence below
	// which a verified exact-identifier hit is still worth a second look.
	LowConfidenceFloor float64
}

func DefaultConfig() Config {
	return Config{
		Window:             24 * time.Hour,
		RejectionLimit:     5,
		LowConfidenceFloor: 0.85,
	}
}

type Engine struct {
	history History
	cfg     Config
	log     logging.Logger
	now     func() time.Time
}

func NewEngine(history History, cfg Config, log logging.Logger) *Engine {
	return &Engine{history: history, cfg: cfg, log: log, now: time.Now}
}

// Inspect evaluates every rule against the candidate and its result. A
// history query failure skips that rule with a warning; rule evaluation must
// never fail the verification request.
func (e *Engine) Inspect(ctx context.Context, cand models.ExtractedCandidate, result models.MatchResult) []models.Alert {
	var out []models.Alert
	since := e.now().Add(-e.cfg.Window)

	if a := e.checkRevokedHit(result, cand.SourceID); a != nil {
		out = append(out, *a)
	}
	if a := e.checkDuplicate(ctx, result, cand.SourceID, since); a != nil {
		out = append(out, *a)
	}
	if a := e.checkRejectionRate(ctx, cand, result, since); a != nil {
		out = append(out, *a)
	}
	if a := e.checkLowConfidenceExactID(cand, result); a != nil {
		out = append(out, *a)
	}
	return out
}

// checkRevokedHit fires when the matcher flagged the candidate because the
// matched record is revoked.
func (e *Engine) checkRevokedHit(result models.MatchResult, sourceID string) *models.Alert {
	if result.Verdict != models.VerdictFlagged || !hasReason(result, match.ReasonRecordRevoked) {
		return nil
	}
	return e.newAlert(models.AlertRevokedRecordHit, models.SeverityHigh, result.MatchedRecordID, sourceID,
		fmt.Sprintf("candidate matched revoked record %s", result.MatchedRecordID))
}

// checkDuplicate fires when a different upload already VERIFIED-matched the
// same record inside the window. Two sources presenting the same certificate
// is the classic shared-forgery pattern.
func (e *Engine) checkDuplicate(ctx context.Context, result models.MatchResult, sourceID string, since time.Time) *models.Alert {
	if result.Verdict != models.VerdictVerified || result.MatchedRecordID == "" {
		return nil
	}
	n, err := e.history.CountVerifiedMatches(ctx, result.MatchedRecordID, sourceID, since)
	if err != nil {
		e.log.Warn(ctx, "duplicate rule skipped, history unavailable", "error", err)
		return nil
	}
	if n == 0 {
		return nil
	}
	return e.newAlert(models.AlertDuplicateCertNumber, models.SeverityHigh, result.MatchedRecordID, sourceID,
		fmt.Sprintf("record %s already verified by %d other upload(s) within %s",
			result.MatchedRecordID, n, e.cfg.Window))
}

// checkRejectionRate fires when the issuer/name pair has accumulated more
// than the configured number of rejections inside the window, this request
// included.
func (e *Engine) checkRejectionRate(ctx context.Context, cand models.ExtractedCandidate, result models.MatchResult, since time.Time) *models.Alert {
	if result.Verdict != models.VerdictRejected {
		return nil
	}
	nameFV, nameOK := cand.Fields.Get(models.FieldStudentName)
	issFV, issOK := cand.Fields.Get(models.FieldIssuer)
	if !nameOK || !issOK {
		return nil
	}
	n, err := e.history.CountRejections(ctx, issFV.Value, nameFV.Value, since)
	if err != nil {
		e.log.Warn(ctx, "rejection-rate rule skipped, history unavailable", "error", err)
		return nil
	}
	if n+1 <= e.cfg.RejectionLimit {
		return nil
	}
	return e.newAlert(models.AlertHighRejectionRate, models.SeverityMedium, "", cand.SourceID,
		fmt.Sprintf("%d rejections for %q / %q within %s", n+1, nameFV.Value, issFV.Value, e.cfg.Window))
}

// checkLowConfidenceExactID fires when the verdict rests on an exact
// identifier hit whose cert_number extraction confidence was shaky. The
// verdict stands; a reviewer should eyeball the scan.
func (e *Engine) checkLowConfidenceExactID(cand models.ExtractedCandidate, result models.MatchResult) *models.Alert {
	if result.Verdict != models.VerdictVerified || !hasReason(result, match.ReasonExactIdentifierHit) {
		return nil
	}
	fv, ok := cand.Fields.Get(models.FieldCertNumber)
	if !ok || fv.Confidence >= e.cfg.LowConfidenceFloor {
		return nil
	}
	return e.newAlert(models.AlertLowConfidenceExactID, models.SeverityLow, result.MatchedRecordID, cand.SourceID,
		fmt.Sprintf("exact identifier hit with cert_number confidence %.2f", fv.Confidence))
}

func (e *Engine) newAlert(t models.AlertType, sev models.AlertSeverity, recordID, sourceID, reason string) *models.Alert {
	return &models.Alert{
		ID:              uuid.NewString(),
		Type:            t,
		Severity:        sev,
		RelatedRecordID: recordID,
		RelatedSourceID: sourceID,
		Reason:          reason,
		CreatedAt:       e.now(),
	}
}

func hasReason(result models.MatchResult, marker string) bool {
	for _, r := range result.Reasons {
		if strings.HasPrefix(r, marker) {
			return true
		}
	}
	return false
}
