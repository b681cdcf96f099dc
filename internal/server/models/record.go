// Package models holds the data structures shared between the verification
// engine, repositories and services.
package models

import "time"

// RecordStatus is the lifecycle state of a verified record. Records are
// append-only: the only permitted mutation is active → revoked.
type RecordStatus string

const (
	RecordStatusActive  RecordStatus = "active"
	RecordStatusRevoked RecordStatus = "revoked"
)

// VerifiedRecord is issuer-asserted ground truth for one certificate.
// CertNumber is unique within an issuer.
type VerifiedRecord struct {
	RecordID    string
	StudentName string
	RollNumber  string
	CertNumber  string
	Issuer      string
	IssuedAt    time.Time
	Marks       string // optional, empty when the issuer did not supply it
	Status      RecordStatus
	CreatedAt   time.Time
}
