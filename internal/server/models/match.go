package models

// Verdict classifies a candidate against the record store. The literals are
// part of the wire contract and must not be renamed.
type Verdict string

const (
	VerdictVerified Verdict = "VERIFIED"
	VerdictRejected Verdict = "REJECTED"
	VerdictFlagged  Verdict = "FLAGGED"
)

// MatchResult is the output of the matcher.
//
// MatchedRecordID is non-empty iff OverallScore met the VERIFIED or FLAGGED
// threshold; REJECTED results carry an empty record ID.
type MatchResult struct {
	Verdict         Verdict
	MatchedRecordID string
	FieldScores     map[Field]float64
	OverallScore    float64
	Reasons         []string
}
