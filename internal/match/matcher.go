// Package match implements the core verification algorithm: given an
// extracted candidate, find the best-matching verified record, score it per
// field, and classify the outcome.
//
// The design privileges the strongest identifier, the issuer-scoped
// certificate number, and only degrades to fuzzy name search when that
// identifier is unreliable. OCR noise is common in alphabetic names, but a
// numeric identifier extracted with reasonable confidence is highly
// discriminating.
package match

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certverify/internal/extract"
	"github.com/dmitrijs2005/certverify/internal/normalize"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// Reason markers the alert engine keys on. They are always the exact prefix
// of the corresponding entry in MatchResult.Reasons.
const (
	ReasonExactIdentifierHit = "cert_number and issuer matched exactly"
	ReasonRecordRevoked      = "record revoked"
	ReasonUnreadableInput    = "unreadable input"
)

// Field weights. The issuer-scoped certificate number carries the fixed
// high base weight; name, roll number and date share the remainder. When
// marks are comparable they take half of the date weight.
const (
	weightIdentifier = 0.50
	weightName       = 0.25
	weightRoll       = 0.15
	weightDate       = 0.10
	weightDateSplit  = 0.05
	weightMarks      = 0.05
)

// Config carries the tunable thresholds of the matcher. The defaults are
// engineering choices, not calibrated constants; deployments adjust them
// through the server configuration.
type Config struct {
	// VerifiedThreshold is the minimum overall score for a VERIFIED verdict.
	VerifiedThreshold float64
	// FlaggedThreshold is the minimum overall score to flag for human
	// review; anything below is REJECTED.
	FlaggedThreshold float64
	// ExactConfidence is the minimum extraction confidence required on both
	// cert_number and issuer before the exact-lookup path is trusted.
	ExactConfidence float64
	// TopK bounds the fuzzy name-lookup candidate list.
	TopK int
}

func DefaultConfig() Config {
	return Config{
		VerifiedThreshold: 0.90,
		FlaggedThreshold:  0.60,
		ExactConfidence:   0.75,
		TopK:              10,
	}
}

// Index is the read surface of the record index the matcher needs.
type Index interface {
	LookupExact(certNumber, issuer string) (models.VerifiedRecord, bool)
	LookupByName(name, issuer string, k int) []models.VerifiedRecord
}

type Matcher struct {
	index Index
	cfg   Config
}

func New(index Index, cfg Config) *Matcher {
	return &Matcher{index: index, cfg: cfg}
}

// Match finds the best verified record for the candidate and classifies the
// outcome. It never fails: an unmatched candidate is a REJECTED result with
// reasons, not an error.
func (m *Matcher) Match(ctx context.Context, cand models.ExtractedCandidate) models.MatchResult {
	var preamble []string

	certFV, certOK := cand.Fields.Get(models.FieldCertNumber)
	issFV, issOK := cand.Fields.Get(models.FieldIssuer)

	// Step 1: trusted identifier, exact lookup.
	if certOK && issOK &&
		certFV.Confidence >= m.cfg.ExactConfidence &&
		issFV.Confidence >= m.cfg.ExactConfidence {
		if rec, ok := m.index.LookupExact(certFV.Value, issFV.Value); ok {
			cmp := m.evaluate(cand, rec, true)
			return m.classify(rec, cmp, preamble)
		}
		preamble = append(preamble,
			fmt.Sprintf("exact lookup miss: cert_number %q issuer %q", certFV.Value, issFV.Value))
	}

	// Step 2: fall back to fuzzy name search over top-K candidates.
	nameFV, nameOK := cand.Fields.Get(models.FieldStudentName)
	if !nameOK {
		return rejected(append(preamble, "no trusted identifier and no student_name extracted"))
	}

	issuerScope := ""
	if issOK && issFV.Confidence >= m.cfg.ExactConfidence {
		issuerScope = issFV.Value
	}
	candidates := m.index.LookupByName(nameFV.Value, issuerScope, m.cfg.TopK)
	if len(candidates) == 0 {
		return rejected(append(preamble,
			fmt.Sprintf("no candidate records found for student_name %q", nameFV.Value)))
	}

	// Candidates arrive in deterministic order, so on equal overall scores
	// the first one wins and results stay reproducible.
	best := candidates[0]
	bestCmp := m.evaluate(cand, best, false)
	for _, rec := range candidates[1:] {
		cmp := m.evaluate(cand, rec, false)
		if cmp.overall > bestCmp.overall {
			best, bestCmp = rec, cmp
		}
	}
	preamble = append(preamble,
		fmt.Sprintf("fuzzy name lookup: %d candidate(s), best record %s", len(candidates), best.RecordID))
	return m.classify(best, bestCmp, preamble)
}

type comparison struct {
	scores    map[models.Field]float64
	overall   float64
	certEqual bool
	reasons   []string
}

// evaluate scores every comparable field of the candidate against the
// record and records a reason for each comparison.
func (m *Matcher) evaluate(cand models.ExtractedCandidate, rec models.VerifiedRecord, exactHit bool) comparison {
	cmp := comparison{scores: make(map[models.Field]float64, 5)}

	// Identifier component.
	switch {
	case exactHit:
		cmp.certEqual = true
		cmp.scores[models.FieldCertNumber] = 1
		cmp.reasons = append(cmp.reasons, ReasonExactIdentifierHit)
	default:
		fv, ok := cand.Fields.Get(models.FieldCertNumber)
		switch {
		case !ok:
			cmp.scores[models.FieldCertNumber] = 0
			cmp.reasons = append(cmp.reasons, "cert_number not extracted")
		case normalize.Key(fv.Value) == normalize.Key(rec.CertNumber):
			cmp.certEqual = true
			cmp.scores[models.FieldCertNumber] = 1
			cmp.reasons = append(cmp.reasons, fmt.Sprintf("cert_number matches record %s", rec.RecordID))
		default:
			cmp.scores[models.FieldCertNumber] = 0
			cmp.reasons = append(cmp.reasons,
				fmt.Sprintf("cert_number mismatch: %q vs %q", fv.Value, rec.CertNumber))
		}
	}

	// Student name: normalized edit-distance similarity.
	if fv, ok := cand.Fields.Get(models.FieldStudentName); ok {
		sim := Similarity(normalize.Key(fv.Value), normalize.Key(rec.StudentName))
		cmp.scores[models.FieldStudentName] = sim
		cmp.reasons = append(cmp.reasons,
			fmt.Sprintf("student_name similarity %.2f: %q vs %q", sim, fv.Value, rec.StudentName))
	} else {
		cmp.scores[models.FieldStudentName] = 0
		cmp.reasons = append(cmp.reasons, "student_name not extracted")
	}

	// Roll number: exact token match only.
	if fv, ok := cand.Fields.Get(models.FieldRollNumber); ok {
		if normalize.Key(fv.Value) == normalize.Key(rec.RollNumber) {
			cmp.scores[models.FieldRollNumber] = 1
			cmp.reasons = append(cmp.reasons, "roll_number exact match")
		} else {
			cmp.scores[models.FieldRollNumber] = 0
			cmp.reasons = append(cmp.reasons,
				fmt.Sprintf("roll_number mismatch: %q vs %q", fv.Value, rec.RollNumber))
		}
	} else {
		cmp.scores[models.FieldRollNumber] = 0
		cmp.reasons = append(cmp.reasons, "roll_number not extracted")
	}

	// Issue date: exact day, no tolerance.
	if fv, ok := cand.Fields.Get(models.FieldIssuedAt); ok {
		if d, err := extract.ParseDate(fv.Value); err == nil && sameDay(d, rec.IssuedAt) {
			cmp.scores[models.FieldIssuedAt] = 1
			cmp.reasons = append(cmp.reasons,
				fmt.Sprintf("issued_at matches (%s)", rec.IssuedAt.Format("2006-01-02")))
		} else {
			cmp.scores[models.FieldIssuedAt] = 0
			cmp.reasons = append(cmp.reasons,
				fmt.Sprintf("issued_at mismatch: %q vs %s", fv.Value, rec.IssuedAt.Format("2006-01-02")))
		}
	} else {
		cmp.scores[models.FieldIssuedAt] = 0
		cmp.reasons = append(cmp.reasons, "issued_at not extracted")
	}

	// Marks participate only when both sides carry them, at half of the
	// date weight.
	marksFV, marksOK := cand.Fields.Get(models.FieldMarks)
	compareMarks := marksOK && rec.Marks != ""
	if compareMarks {
		sim := Similarity(normalize.Key(marksFV.Value), normalize.Key(rec.Marks))
		cmp.scores[models.FieldMarks] = sim
		cmp.reasons = append(cmp.reasons,
			fmt.Sprintf("marks similarity %.2f: %q vs %q", sim, marksFV.Value, rec.Marks))
	}

	dateWeight := weightDate
	marksWeight := 0.0
	if compareMarks {
		dateWeight = weightDateSplit
		marksWeight = weightMarks
	}
	cmp.overall = weightIdentifier*cmp.scores[models.FieldCertNumber] +
		weightName*cmp.scores[models.FieldStudentName] +
		weightRoll*cmp.scores[models.FieldRollNumber] +
		dateWeight*cmp.scores[models.FieldIssuedAt] +
		marksWeight*cmp.scores[models.FieldMarks]
	return cmp
}

// classify turns a scored comparison into the final result. A revoked
// record forces FLAGGED regardless of score; VERIFIED additionally requires
// the certificate number itself to have matched exactly.
func (m *Matcher) classify(rec models.VerifiedRecord, cmp comparison, preamble []string) models.MatchResult {
	reasons := append(preamble, cmp.reasons...)

	var verdict models.Verdict
	switch {
	case rec.Status == models.RecordStatusRevoked:
		verdict = models.VerdictFlagged
		reasons = append(reasons, ReasonRecordRevoked)
	case cmp.overall >= m.cfg.VerifiedThreshold && cmp.certEqual:
		verdict = models.VerdictVerified
		reasons = append(reasons, fmt.Sprintf("overall score %.2f >= %.2f: VERIFIED", cmp.overall, m.cfg.VerifiedThreshold))
	case cmp.overall >= m.cfg.VerifiedThreshold:
		verdict = models.VerdictFlagged
		reasons = append(reasons, "certificate number did not match exactly; flagged for review")
	case cmp.overall >= m.cfg.FlaggedThreshold:
		verdict = models.VerdictFlagged
		reasons = append(reasons, fmt.Sprintf("overall score %.2f in [%.2f, %.2f): flagged for review",
			cmp.overall, m.cfg.FlaggedThreshold, m.cfg.VerifiedThreshold))
	default:
		verdict = models.VerdictRejected
		reasons = append(reasons, fmt.Sprintf("overall score %.2f < %.2f: REJECTED", cmp.overall, m.cfg.FlaggedThreshold))
	}

	result := models.MatchResult{
		Verdict:      verdict,
		FieldScores:  cmp.scores,
		OverallScore: cmp.overall,
		Reasons:      reasons,
	}
	// matched_record_id is non-null iff the score reached the VERIFIED or
	// FLAGGED threshold (the revoked case is always at least flagged).
	if verdict != models.VerdictRejected {
		result.MatchedRecordID = rec.RecordID
	}
	return result
}

func rejected(reasons []string) models.MatchResult {
	return models.MatchResult{
		Verdict:     models.VerdictRejected,
		FieldScores: map[models.Field]float64{},
		Reasons:     append(reasons, "no candidate record: REJECTED"),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
