package models

import "time"

// AlertType enumerates the fraud-pattern signals the alert engine raises.
type AlertType string

const (
	AlertDuplicateCertNumber  AlertType = "DUPLICATE_CERT_NUMBER"
	AlertRevokedRecordHit     AlertType = "REVOKED_RECORD_HIT"
	AlertHighRejectionRate    AlertType = "HIGH_REJECTION_RATE"
	AlertLowConfidenceExactID AlertType = "LOW_CONFIDENCE_EXACT_ID"
)

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// Alert is a side-channel signal raised on suspicious patterns. It never
// blocks or changes a verdict. Resolved flips only through explicit external
// action.
type Alert struct {
	ID              string
	Type            AlertType
	Severity        AlertSeverity
	RelatedRecordID string
	RelatedSourceID string
	Reason          string
	CreatedAt       time.Time
	Resolved        bool
}
