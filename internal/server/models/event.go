package models

import "time"

// VerificationEvent records the outcome of one verification request. The
// alert engine queries recent events to detect duplicate hits and rejection
// bursts; the stats service aggregates them for the dashboard.
type VerificationEvent struct {
	ID              string
	SourceID        string
	Verdict         Verdict
	MatchedRecordID string
	StudentName     string
	Issuer          string
	OverallScore    float64
	CreatedAt       time.Time
}
